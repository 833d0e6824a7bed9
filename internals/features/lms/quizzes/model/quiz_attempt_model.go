// file: internals/features/lms/quizzes/model/quiz_attempt_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =============================================================================
   MODEL: quiz_attempts (append-only audit per attempt ter-grade)
   - unique session_id: double-submit session yang sama jadi conflict, bukan
     attempt ganda.
   - attempt_number diisi DI DALAM transaksi submit (session row di-lock) dan
     dijaga unique (user, module, number) — bukan count-then-insert bebas race.
============================================================================= */
type QuizAttemptModel struct {
	QuizAttemptID        uuid.UUID `gorm:"column:quiz_attempt_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_attempt_id"`
	QuizAttemptUserID    uuid.UUID `gorm:"column:quiz_attempt_user_id;type:uuid;not null;uniqueIndex:uq_quiz_attempt_user_module_number,priority:1" json:"quiz_attempt_user_id"`
	QuizAttemptModuleID  uuid.UUID `gorm:"column:quiz_attempt_module_id;type:uuid;not null;uniqueIndex:uq_quiz_attempt_user_module_number,priority:2" json:"quiz_attempt_module_id"`
	QuizAttemptSessionID uuid.UUID `gorm:"column:quiz_attempt_session_id;type:uuid;not null;uniqueIndex:uq_quiz_attempt_session" json:"quiz_attempt_session_id"`

	QuizAttemptScore    float64 `gorm:"column:quiz_attempt_score;type:numeric(6,3);not null;default:0" json:"quiz_attempt_score"`
	QuizAttemptMaxScore float64 `gorm:"column:quiz_attempt_max_score;type:numeric(7,2);not null;default:0" json:"quiz_attempt_max_score"`

	// 'passed' | 'failed'
	QuizAttemptStatus string `gorm:"column:quiz_attempt_status;type:varchar(16);not null" json:"quiz_attempt_status"`

	// Berurutan per (user, module)
	QuizAttemptNumber int `gorm:"column:quiz_attempt_number;not null;default:1;uniqueIndex:uq_quiz_attempt_user_module_number,priority:3" json:"quiz_attempt_number"`

	QuizAttemptCreatedAt time.Time `gorm:"column:quiz_attempt_created_at;not null;autoCreateTime" json:"quiz_attempt_created_at"`
}

func (QuizAttemptModel) TableName() string { return "quiz_attempts" }
