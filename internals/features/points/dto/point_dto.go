package dto

import (
	"time"

	"github.com/google/uuid"

	"codetrain_backend/internals/features/points/model"
)

// ================== REQUEST ==================
type AwardPointsRequest struct {
	StudentID       uuid.UUID `json:"student_id" validate:"required"`
	Points          int       `json:"points" validate:"required,gt=0"`
	Reason          string    `json:"reason" validate:"required,max=160"`
	ActivityID      string    `json:"activity_id" validate:"required,max=160"`
	AssignmentTitle string    `json:"assignment_title" validate:"omitempty,max=200"`
}

type ManualAwardRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Points    int       `json:"points" validate:"required,gt=0"`
	Reason    string    `json:"reason" validate:"required,max=160"`
}

type RevokePointsRequest struct {
	StudentID  uuid.UUID `json:"student_id" validate:"required"`
	ActivityID string    `json:"activity_id" validate:"required,max=160"`
}

// ================== RESPONSE ==================
type AwardPointsResponse struct {
	TotalPoints int    `json:"total_points"`
	ActivityID  string `json:"activity_id"`
}

type PointEntryResponse struct {
	PointEntryID              uuid.UUID `json:"point_entry_id"`
	PointEntryStudentID       uuid.UUID `json:"point_entry_student_id"`
	PointEntryPoints          int       `json:"point_entry_points"`
	PointEntryReason          string    `json:"point_entry_reason"`
	PointEntryActivityID      string    `json:"point_entry_activity_id"`
	PointEntryAssignmentTitle string    `json:"point_entry_assignment_title"`
	PointEntryAwardedAt       string    `json:"point_entry_awarded_at"`
}

type StudentLedgerResponse struct {
	StudentID   uuid.UUID            `json:"student_id"`
	TotalPoints int                  `json:"total_points"`
	Entries     []PointEntryResponse `json:"entries"`
}

type LeaderboardRow struct {
	UserID      uuid.UUID `json:"user_id"`
	UserName    string    `json:"user_name"`
	UserGen     string    `json:"user_gen"`
	TotalPoints int       `json:"total_points"`
}

// ================ CONVERSION =================
func ToPointEntryResponse(m *model.PointEntryModel) *PointEntryResponse {
	return &PointEntryResponse{
		PointEntryID:              m.PointEntryID,
		PointEntryStudentID:       m.PointEntryStudentID,
		PointEntryPoints:          m.PointEntryPoints,
		PointEntryReason:          m.PointEntryReason,
		PointEntryActivityID:      m.PointEntryActivityID,
		PointEntryAssignmentTitle: m.PointEntryAssignmentTitle,
		PointEntryAwardedAt:       m.PointEntryAwardedAt.Format(time.RFC3339),
	}
}

func ToPointEntryResponseList(models []model.PointEntryModel) []PointEntryResponse {
	result := make([]PointEntryResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToPointEntryResponse(&models[i]))
	}
	return result
}
