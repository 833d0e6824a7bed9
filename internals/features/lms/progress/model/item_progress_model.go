// file: internals/features/lms/progress/model/item_progress_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

/* =============================================================================
   ENUM-like: ItemProgress Status
   ('not_started','in_progress','completed','passed','failed')
============================================================================= */
type ItemProgressStatus string

const (
	ItemProgressNotStarted ItemProgressStatus = "not_started"
	ItemProgressInProgress ItemProgressStatus = "in_progress"
	ItemProgressCompleted  ItemProgressStatus = "completed"
	ItemProgressPassed     ItemProgressStatus = "passed"
	ItemProgressFailed     ItemProgressStatus = "failed"
)

func (s ItemProgressStatus) String() string { return string(s) }
func (s ItemProgressStatus) Valid() bool {
	switch s {
	case ItemProgressNotStarted, ItemProgressInProgress, ItemProgressCompleted, ItemProgressPassed, ItemProgressFailed:
		return true
	default:
		return false
	}
}

// CountsAsCompleted: status yang dihitung Aggregator sebagai selesai.
func (s ItemProgressStatus) CountsAsCompleted() bool {
	return s == ItemProgressCompleted || s == ItemProgressPassed
}

func (s *ItemProgressStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = ItemProgressStatus(v)
	case []byte:
		*s = ItemProgressStatus(string(v))
	default:
		return fmt.Errorf("unsupported type for ItemProgressStatus: %T", value)
	}
	if !s.Valid() {
		return fmt.Errorf("invalid ItemProgressStatus: %q", *s)
	}
	return nil
}
func (s ItemProgressStatus) Value() (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("invalid ItemProgressStatus: %q", s)
	}
	return string(s), nil
}

/* =============================================================================
   MODEL: item_progress
   1 row per (user, module) — dibuat lazy saat event pertama, tidak pernah
   dihapus pada operasi normal.
============================================================================= */
type ItemProgressModel struct {
	ItemProgressID          uuid.UUID `gorm:"column:item_progress_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"item_progress_id"`
	ItemProgressUserID      uuid.UUID `gorm:"column:item_progress_user_id;type:uuid;not null;uniqueIndex:uq_item_progress_user_module,priority:1;index:idx_item_progress_user_formation,priority:1" json:"item_progress_user_id"`
	ItemProgressModuleID    uuid.UUID `gorm:"column:item_progress_module_id;type:uuid;not null;uniqueIndex:uq_item_progress_user_module,priority:2" json:"item_progress_module_id"`
	ItemProgressFormationID uuid.UUID `gorm:"column:item_progress_formation_id;type:uuid;not null;index:idx_item_progress_user_formation,priority:2" json:"item_progress_formation_id"`

	ItemProgressStatus ItemProgressStatus `gorm:"column:item_progress_status;type:varchar(16);not null;default:'not_started'" json:"item_progress_status"`
	ItemProgressScore  *float64           `gorm:"column:item_progress_score;type:numeric(6,3)" json:"item_progress_score,omitempty"`
	ItemProgressPassed *bool              `gorm:"column:item_progress_passed" json:"item_progress_passed,omitempty"`

	ItemProgressTimeSpentSec int        `gorm:"column:item_progress_time_spent_sec;not null;default:0" json:"item_progress_time_spent_sec"`
	ItemProgressStartedAt    *time.Time `gorm:"column:item_progress_started_at;type:timestamptz" json:"item_progress_started_at,omitempty"`
	ItemProgressCompletedAt  *time.Time `gorm:"column:item_progress_completed_at;type:timestamptz" json:"item_progress_completed_at,omitempty"`
	ItemProgressLastEventAt  time.Time  `gorm:"column:item_progress_last_event_at;type:timestamptz;not null;default:now()" json:"item_progress_last_event_at"`

	ItemProgressCreatedAt time.Time `gorm:"column:item_progress_created_at;not null;autoCreateTime" json:"item_progress_created_at"`
	ItemProgressUpdatedAt time.Time `gorm:"column:item_progress_updated_at;not null;autoUpdateTime" json:"item_progress_updated_at"`
}

func (ItemProgressModel) TableName() string { return "item_progress" }
