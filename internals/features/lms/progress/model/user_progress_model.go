// file: internals/features/lms/progress/model/user_progress_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =============================================================================
   MODEL: user_progress
   Derived/cached oleh Aggregator — 1 row per (user, formation).
============================================================================= */
type UserProgressModel struct {
	UserProgressID          uuid.UUID `gorm:"column:user_progress_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_progress_id"`
	UserProgressUserID      uuid.UUID `gorm:"column:user_progress_user_id;type:uuid;not null;uniqueIndex:uq_user_progress_user_formation,priority:1" json:"user_progress_user_id"`
	UserProgressFormationID uuid.UUID `gorm:"column:user_progress_formation_id;type:uuid;not null;uniqueIndex:uq_user_progress_user_formation,priority:2" json:"user_progress_formation_id"`

	UserProgressCompletedModules int     `gorm:"column:user_progress_completed_modules;not null;default:0" json:"user_progress_completed_modules"`
	UserProgressTotalModules     int     `gorm:"column:user_progress_total_modules;not null;default:0" json:"user_progress_total_modules"`
	UserProgressPercent          float64 `gorm:"column:user_progress_percent;type:numeric(6,3);not null;default:0" json:"user_progress_percent"`

	UserProgressCreatedAt time.Time `gorm:"column:user_progress_created_at;not null;autoCreateTime" json:"user_progress_created_at"`
	UserProgressUpdatedAt time.Time `gorm:"column:user_progress_updated_at;not null;autoUpdateTime" json:"user_progress_updated_at"`
}

func (UserProgressModel) TableName() string { return "user_progress" }

func (m *UserProgressModel) IsComplete() bool { return m.UserProgressPercent >= 100 }
