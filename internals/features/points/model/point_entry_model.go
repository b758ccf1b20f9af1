package model

import (
	"time"

	"github.com/google/uuid"
)

// One row per point award, owned by a student. The (student, activity) pair
// is unique; manual admin awards bypass dedup via a random activity suffix.
// Rows are hard-deleted on revoke, there is no soft-delete state.
type PointEntryModel struct {
	PointEntryID              uuid.UUID `gorm:"type:uuid;primaryKey;column:point_entry_id" json:"point_entry_id"`
	PointEntryStudentID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_point_entries_student_activity;column:point_entry_student_id" json:"point_entry_student_id"`
	PointEntryPoints          int       `gorm:"not null;column:point_entry_points" json:"point_entry_points"`
	PointEntryReason          string    `gorm:"type:varchar(160);not null;column:point_entry_reason" json:"point_entry_reason"`
	PointEntryActivityID      string    `gorm:"type:varchar(160);not null;uniqueIndex:idx_point_entries_student_activity;column:point_entry_activity_id" json:"point_entry_activity_id"`
	PointEntryAssignmentTitle string    `gorm:"type:varchar(200);column:point_entry_assignment_title" json:"point_entry_assignment_title"`
	PointEntryAwardedAt       time.Time `gorm:"autoCreateTime;column:point_entry_awarded_at" json:"point_entry_awarded_at"`
}

func (PointEntryModel) TableName() string {
	return "point_entries"
}
