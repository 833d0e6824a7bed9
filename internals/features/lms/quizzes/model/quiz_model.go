// file: internals/features/lms/quizzes/model/quiz_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   MODEL: quizzes
   Konfigurasi read-only untuk engine ini — 1 quiz per module.
============================================================================= */
type QuizModel struct {
	QuizID          uuid.UUID `gorm:"column:quiz_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_id"`
	QuizModuleID    uuid.UUID `gorm:"column:quiz_module_id;type:uuid;not null;uniqueIndex:uq_quiz_module" json:"quiz_module_id"`
	QuizFormationID uuid.UUID `gorm:"column:quiz_formation_id;type:uuid;not null;index:idx_quiz_formation" json:"quiz_formation_id"`

	QuizTitle        string  `gorm:"column:quiz_title;type:varchar(180);not null" json:"quiz_title"`
	QuizPassingScore float64 `gorm:"column:quiz_passing_score;type:numeric(6,3);not null;default:70" json:"quiz_passing_score"`

	// Menit; NULL = tanpa batas waktu
	QuizTimeLimitMin *int `gorm:"column:quiz_time_limit_min" json:"quiz_time_limit_min,omitempty"`

	QuizAllowRetries       bool `gorm:"column:quiz_allow_retries;not null;default:true" json:"quiz_allow_retries"`
	QuizShowCorrectAnswers bool `gorm:"column:quiz_show_correct_answers;not null;default:false" json:"quiz_show_correct_answers"`

	QuizCreatedAt time.Time      `gorm:"column:quiz_created_at;not null;autoCreateTime" json:"quiz_created_at"`
	QuizUpdatedAt time.Time      `gorm:"column:quiz_updated_at;not null;autoUpdateTime" json:"quiz_updated_at"`
	QuizDeletedAt gorm.DeletedAt `gorm:"column:quiz_deleted_at;index" json:"quiz_deleted_at,omitempty"`
}

func (QuizModel) TableName() string { return "quizzes" }

// TimeLimit mengembalikan durasi batas waktu; (0,false) kalau tidak ada limit.
func (m *QuizModel) TimeLimit() (time.Duration, bool) {
	if m.QuizTimeLimitMin == nil || *m.QuizTimeLimitMin <= 0 {
		return 0, false
	}
	return time.Duration(*m.QuizTimeLimitMin) * time.Minute, true
}
