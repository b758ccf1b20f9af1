package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceSessionModel struct {
	AttendanceSessionID        uuid.UUID `gorm:"type:uuid;primaryKey;column:attendance_session_id" json:"attendance_session_id"`
	AttendanceSessionGen       string    `gorm:"type:varchar(30);not null;index;column:attendance_session_gen" json:"attendance_session_gen"`
	AttendanceSessionDate      time.Time `gorm:"not null;index;column:attendance_session_date" json:"attendance_session_date"`
	AttendanceSessionTopic     string    `gorm:"type:varchar(200);column:attendance_session_topic" json:"attendance_session_topic"`
	AttendanceSessionCreatedBy uuid.UUID `gorm:"type:uuid;not null;column:attendance_session_created_by" json:"attendance_session_created_by"`

	AttendanceSessionCreatedAt time.Time      `gorm:"autoCreateTime;column:attendance_session_created_at" json:"attendance_session_created_at"`
	AttendanceSessionUpdatedAt time.Time      `gorm:"autoUpdateTime;column:attendance_session_updated_at" json:"attendance_session_updated_at"`
	AttendanceSessionDeletedAt gorm.DeletedAt `gorm:"column:attendance_session_deleted_at;index" json:"attendance_session_deleted_at,omitempty"`
}

func (AttendanceSessionModel) TableName() string {
	return "attendance_sessions"
}

func (m *AttendanceSessionModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceSessionID == uuid.Nil {
		m.AttendanceSessionID = uuid.New()
	}
	return nil
}

// One row per (session, student); staff re-marking upserts in place.
type AttendanceRecordModel struct {
	AttendanceRecordID        uuid.UUID `gorm:"type:uuid;primaryKey;column:attendance_record_id" json:"attendance_record_id"`
	AttendanceRecordSessionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_records_session_student;column:attendance_record_session_id" json:"attendance_record_session_id"`
	AttendanceRecordStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_records_session_student;column:attendance_record_student_id" json:"attendance_record_student_id"`

	// present | absent | late | excused
	AttendanceRecordStatus string `gorm:"type:varchar(10);not null;column:attendance_record_status" json:"attendance_record_status"`
	AttendanceRecordNote   string `gorm:"type:varchar(255);column:attendance_record_note" json:"attendance_record_note"`

	AttendanceRecordCreatedAt time.Time `gorm:"autoCreateTime;column:attendance_record_created_at" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt time.Time `gorm:"autoUpdateTime;column:attendance_record_updated_at" json:"attendance_record_updated_at"`
}

func (AttendanceRecordModel) TableName() string {
	return "attendance_records"
}

func (m *AttendanceRecordModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceRecordID == uuid.Nil {
		m.AttendanceRecordID = uuid.New()
	}
	return nil
}
