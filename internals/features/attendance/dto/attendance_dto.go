package dto

import (
	"time"

	"github.com/google/uuid"

	"codetrain_backend/internals/features/attendance/model"
)

type CreateSessionRequest struct {
	Gen   string    `json:"gen" validate:"required,max=30"`
	Date  time.Time `json:"date" validate:"required"`
	Topic string    `json:"topic" validate:"omitempty,max=200"`
}

func (r *CreateSessionRequest) ToModel(createdBy uuid.UUID) *model.AttendanceSessionModel {
	return &model.AttendanceSessionModel{
		AttendanceSessionGen:       r.Gen,
		AttendanceSessionDate:      r.Date,
		AttendanceSessionTopic:     r.Topic,
		AttendanceSessionCreatedBy: createdBy,
	}
}

type MarkRecordRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=present absent late excused"`
	Note      string    `json:"note" validate:"omitempty,max=255"`
}

type MarkRecordsRequest struct {
	Records []MarkRecordRequest `json:"records" validate:"required,min=1,dive"`
}

type SessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	Gen       string    `json:"gen"`
	Date      time.Time `json:"date"`
	Topic     string    `json:"topic"`
	CreatedBy uuid.UUID `json:"created_by"`
}

func ToSessionResponse(m *model.AttendanceSessionModel) SessionResponse {
	return SessionResponse{
		SessionID: m.AttendanceSessionID,
		Gen:       m.AttendanceSessionGen,
		Date:      m.AttendanceSessionDate,
		Topic:     m.AttendanceSessionTopic,
		CreatedBy: m.AttendanceSessionCreatedBy,
	}
}

func ToSessionResponseList(ms []model.AttendanceSessionModel) []SessionResponse {
	out := make([]SessionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToSessionResponse(&ms[i]))
	}
	return out
}

type RecordResponse struct {
	RecordID  uuid.UUID `json:"record_id"`
	SessionID uuid.UUID `json:"session_id"`
	StudentID uuid.UUID `json:"student_id"`
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
}

func ToRecordResponse(m *model.AttendanceRecordModel) RecordResponse {
	return RecordResponse{
		RecordID:  m.AttendanceRecordID,
		SessionID: m.AttendanceRecordSessionID,
		StudentID: m.AttendanceRecordStudentID,
		Status:    m.AttendanceRecordStatus,
		Note:      m.AttendanceRecordNote,
	}
}

func ToRecordResponseList(ms []model.AttendanceRecordModel) []RecordResponse {
	out := make([]RecordResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToRecordResponse(&ms[i]))
	}
	return out
}

// HistoryRow joins a student's record with its session for the "my
// attendance" view.
type HistoryRow struct {
	SessionID uuid.UUID `json:"session_id"`
	Date      time.Time `json:"date"`
	Topic     string    `json:"topic"`
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
}
