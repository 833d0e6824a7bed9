// file: internals/features/lms/quizzes/dto/quiz_session_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"kursusku_backend/internals/features/lms/quizzes/service"
)

/* ==========================================================================================
   RESPONSE — START
   Soal dikirim TANPA kunci jawaban & pembahasan: grading secret tidak boleh
   bocor saat start.
========================================================================================== */

type QuizSummary struct {
	QuizID       uuid.UUID `json:"quiz_id"`
	Title        string    `json:"title"`
	PassingScore float64   `json:"passing_score"`
	TimeLimitMin *int      `json:"time_limit_min,omitempty"`
	AllowRetries bool      `json:"allow_retries"`
}

type QuestionPublic struct {
	QuestionID uuid.UUID `json:"question_id"`
	Question   string    `json:"question"`
	Type       string    `json:"type"`
	Options    []string  `json:"options,omitempty"`
	Points     float64   `json:"points"`
	Order      int       `json:"order"`
}

type StartQuizResponse struct {
	SessionID        uuid.UUID        `json:"session_id"`
	StartedAt        time.Time        `json:"started_at"`
	TimeRemainingSec *int             `json:"time_remaining_sec,omitempty"`
	Resumed          bool             `json:"resumed"`
	Quiz             QuizSummary      `json:"quiz"`
	Questions        []QuestionPublic `json:"questions"`
}

func NewStartQuizResponse(res *service.StartResult) StartQuizResponse {
	out := StartQuizResponse{
		SessionID:        res.Session.QuizSessionID,
		StartedAt:        res.Session.QuizSessionStartedAt,
		TimeRemainingSec: res.TimeRemainingSec,
		Resumed:          res.Resumed,
		Quiz: QuizSummary{
			QuizID:       res.Quiz.QuizID,
			Title:        res.Quiz.QuizTitle,
			PassingScore: res.Quiz.QuizPassingScore,
			TimeLimitMin: res.Quiz.QuizTimeLimitMin,
			AllowRetries: res.Quiz.QuizAllowRetries,
		},
		Questions: make([]QuestionPublic, 0, len(res.Questions)),
	}
	for _, q := range res.Questions {
		out.Questions = append(out.Questions, QuestionPublic{
			QuestionID: q.QuizQuestionID,
			Question:   q.QuizQuestionText,
			Type:       q.QuizQuestionType.String(),
			Options:    q.QuizQuestionOptions,
			Points:     q.QuizQuestionPoints,
			Order:      q.QuizQuestionOrder,
		})
	}
	return out
}

/* ==========================================================================================
   REQUEST — SUBMIT
========================================================================================== */

type SubmitQuizRequest struct {
	// key = quiz_question_id
	Answers map[uuid.UUID]string `json:"answers" validate:"required,min=1"`
}

func (r *SubmitQuizRequest) ToInput(sessionID, userID uuid.UUID) *service.SubmitInput {
	return &service.SubmitInput{
		SessionID: sessionID,
		UserID:    userID,
		Answers:   r.Answers,
	}
}
