package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RoadmapSubjectModel struct {
	RoadmapSubjectID       uuid.UUID `gorm:"type:uuid;primaryKey;column:roadmap_subject_id" json:"roadmap_subject_id"`
	RoadmapSubjectTitle    string    `gorm:"type:varchar(120);not null;column:roadmap_subject_title" json:"roadmap_subject_title"`
	RoadmapSubjectPosition int       `gorm:"not null;default:0;column:roadmap_subject_position" json:"roadmap_subject_position"`
	RoadmapSubjectGen      string    `gorm:"type:varchar(30);not null;index;column:roadmap_subject_gen" json:"roadmap_subject_gen"`

	RoadmapSubjectCreatedAt time.Time      `gorm:"autoCreateTime;column:roadmap_subject_created_at" json:"roadmap_subject_created_at"`
	RoadmapSubjectUpdatedAt time.Time      `gorm:"autoUpdateTime;column:roadmap_subject_updated_at" json:"roadmap_subject_updated_at"`
	RoadmapSubjectDeletedAt gorm.DeletedAt `gorm:"column:roadmap_subject_deleted_at;index" json:"roadmap_subject_deleted_at,omitempty"`
}

func (RoadmapSubjectModel) TableName() string {
	return "roadmap_subjects"
}

func (m *RoadmapSubjectModel) BeforeCreate(tx *gorm.DB) error {
	if m.RoadmapSubjectID == uuid.Nil {
		m.RoadmapSubjectID = uuid.New()
	}
	return nil
}

type RoadmapWeekModel struct {
	RoadmapWeekID        uuid.UUID `gorm:"type:uuid;primaryKey;column:roadmap_week_id" json:"roadmap_week_id"`
	RoadmapWeekSubjectID uuid.UUID `gorm:"type:uuid;not null;index;column:roadmap_week_subject_id" json:"roadmap_week_subject_id"`
	RoadmapWeekTitle     string    `gorm:"type:varchar(120);not null;column:roadmap_week_title" json:"roadmap_week_title"`
	RoadmapWeekPosition  int       `gorm:"not null;default:0;column:roadmap_week_position" json:"roadmap_week_position"`

	// JSON array of topic strings.
	RoadmapWeekTopics datatypes.JSON `gorm:"column:roadmap_week_topics" json:"roadmap_week_topics"`

	RoadmapWeekCreatedAt time.Time      `gorm:"autoCreateTime;column:roadmap_week_created_at" json:"roadmap_week_created_at"`
	RoadmapWeekUpdatedAt time.Time      `gorm:"autoUpdateTime;column:roadmap_week_updated_at" json:"roadmap_week_updated_at"`
	RoadmapWeekDeletedAt gorm.DeletedAt `gorm:"column:roadmap_week_deleted_at;index" json:"roadmap_week_deleted_at,omitempty"`
}

func (RoadmapWeekModel) TableName() string {
	return "roadmap_weeks"
}

func (m *RoadmapWeekModel) BeforeCreate(tx *gorm.DB) error {
	if m.RoadmapWeekID == uuid.Nil {
		m.RoadmapWeekID = uuid.New()
	}
	return nil
}

// WeekCompletionModel marks a week as taught for one cohort. One row per
// (gen, week).
type WeekCompletionModel struct {
	WeekCompletionID        uuid.UUID `gorm:"type:uuid;primaryKey;column:week_completion_id" json:"week_completion_id"`
	WeekCompletionGen       string    `gorm:"type:varchar(30);not null;uniqueIndex:idx_week_completions_gen_week;column:week_completion_gen" json:"week_completion_gen"`
	WeekCompletionWeekID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_week_completions_gen_week;column:week_completion_week_id" json:"week_completion_week_id"`
	WeekCompletionCompleted bool      `gorm:"not null;default:false;column:week_completion_completed" json:"week_completion_completed"`
	WeekCompletionMarkedBy  uuid.UUID `gorm:"type:uuid;not null;column:week_completion_marked_by" json:"week_completion_marked_by"`

	WeekCompletionCreatedAt time.Time `gorm:"autoCreateTime;column:week_completion_created_at" json:"week_completion_created_at"`
	WeekCompletionUpdatedAt time.Time `gorm:"autoUpdateTime;column:week_completion_updated_at" json:"week_completion_updated_at"`
}

func (WeekCompletionModel) TableName() string {
	return "week_completions"
}

func (m *WeekCompletionModel) BeforeCreate(tx *gorm.DB) error {
	if m.WeekCompletionID == uuid.Nil {
		m.WeekCompletionID = uuid.New()
	}
	return nil
}
