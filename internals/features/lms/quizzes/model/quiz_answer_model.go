// file: internals/features/lms/quizzes/model/quiz_answer_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =============================================================================
   MODEL: quiz_answers
   Dibuat/di-replace saat submit — 1 row per (session, question).
============================================================================= */
type QuizAnswerModel struct {
	QuizAnswerID         uuid.UUID `gorm:"column:quiz_answer_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_answer_id"`
	QuizAnswerSessionID  uuid.UUID `gorm:"column:quiz_answer_session_id;type:uuid;not null;uniqueIndex:uq_quiz_answer_session_question,priority:1" json:"quiz_answer_session_id"`
	QuizAnswerQuestionID uuid.UUID `gorm:"column:quiz_answer_question_id;type:uuid;not null;uniqueIndex:uq_quiz_answer_session_question,priority:2" json:"quiz_answer_question_id"`
	QuizAnswerUserID     uuid.UUID `gorm:"column:quiz_answer_user_id;type:uuid;not null;index:idx_quiz_answer_user" json:"quiz_answer_user_id"`

	QuizAnswerAnswer       string  `gorm:"column:quiz_answer_answer;type:text;not null" json:"quiz_answer_answer"`
	QuizAnswerIsCorrect    bool    `gorm:"column:quiz_answer_is_correct;not null;default:false" json:"quiz_answer_is_correct"`
	QuizAnswerPointsEarned float64 `gorm:"column:quiz_answer_points_earned;type:numeric(6,2);not null;default:0" json:"quiz_answer_points_earned"`

	QuizAnswerCreatedAt time.Time `gorm:"column:quiz_answer_created_at;not null;autoCreateTime" json:"quiz_answer_created_at"`
}

func (QuizAnswerModel) TableName() string { return "quiz_answers" }
