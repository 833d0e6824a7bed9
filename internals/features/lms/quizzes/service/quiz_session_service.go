// file: internals/features/lms/quizzes/service/quiz_session_service.go
package service

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	enrModel "kursusku_backend/internals/features/lms/enrollments/model"
	qmodel "kursusku_backend/internals/features/lms/quizzes/model"
	helper "kursusku_backend/internals/helpers"
)

/* =========================================================
   STORE (diimplementasikan repository GORM; fake di test)
   Konvensi: lookup yang tidak ketemu mengembalikan (nil, nil).
========================================================= */

type Store interface {
	QuizByID(ctx context.Context, quizID uuid.UUID) (*qmodel.QuizModel, error)
	QuestionsByQuiz(ctx context.Context, quizID uuid.UUID) ([]qmodel.QuizQuestionModel, error)
	EnrollmentByUserFormation(ctx context.Context, userID, formationID uuid.UUID) (*enrModel.EnrollmentModel, error)

	ActiveSession(ctx context.Context, userID, quizID uuid.UUID) (*qmodel.QuizSessionModel, error)
	// SessionByIDForUpdate me-lock row session (FOR UPDATE) — panggil di dalam Transaction.
	SessionByIDForUpdate(ctx context.Context, sessionID uuid.UUID) (*qmodel.QuizSessionModel, error)
	CreateSession(ctx context.Context, row *qmodel.QuizSessionModel) error
	UpdateSession(ctx context.Context, row *qmodel.QuizSessionModel) error

	ReplaceAnswers(ctx context.Context, sessionID uuid.UUID, rows []qmodel.QuizAnswerModel) error
	CountAttempts(ctx context.Context, userID, moduleID uuid.UUID) (int64, error)
	InsertAttempt(ctx context.Context, row *qmodel.QuizAttemptModel) error

	Transaction(ctx context.Context, fn func(Store) error) error
}

// ProgressRecorder: jembatan ke Progress Store + Aggregator setelah grading.
type ProgressRecorder interface {
	RecordQuizResult(ctx context.Context, userID, formationID, moduleID uuid.UUID, score float64, passed bool) error
}

/* =========================================================
   SERVICE
========================================================= */

type QuizSessionService struct {
	Store    Store
	Progress ProgressRecorder
	Now      func() time.Time
}

func NewQuizSessionService(store Store, progress ProgressRecorder) *QuizSessionService {
	return &QuizSessionService{Store: store, Progress: progress, Now: time.Now}
}

/* =========================================================
   START
========================================================= */

type StartResult struct {
	Session   *qmodel.QuizSessionModel
	Quiz      *qmodel.QuizModel
	Questions []qmodel.QuizQuestionModel
	// nil kalau quiz tanpa batas waktu
	TimeRemainingSec *int
	Resumed          bool
}

// Start:
// - wajib enrollment aktif di formation quiz (403)
// - session in_progress yang belum expired di-resume apa adanya (idempoten)
// - yang expired ditandai timeout, lalu buat session baru
// - partial unique index jadi penjamin terakhir: race 23505 → re-read pemenang
func (s *QuizSessionService) Start(ctx context.Context, quizID, userID uuid.UUID) (*StartResult, error) {
	quiz, err := s.Store.QuizByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Quiz tidak ditemukan")
	}

	enrollment, err := s.Store.EnrollmentByUserFormation(ctx, userID, quiz.QuizFormationID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil || !enrollment.IsActive() {
		return nil, fiber.NewError(fiber.StatusForbidden, "Belum terdaftar di formation quiz ini")
	}

	// allow_retries=false ditegakkan di server: sekali ada attempt ter-grade,
	// start berikutnya ditolak.
	if !quiz.QuizAllowRetries {
		n, err := s.Store.CountAttempts(ctx, userID, quiz.QuizModuleID)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, fiber.NewError(fiber.StatusConflict, "Quiz ini tidak mengizinkan retry")
		}
	}

	now := s.Now()
	var session *qmodel.QuizSessionModel

	err = s.Store.Transaction(ctx, func(tx Store) error {
		existing, err := tx.ActiveSession(ctx, userID, quizID)
		if err != nil {
			return err
		}
		if existing != nil {
			if !existing.IsExpired(now) {
				session = existing // resume session yang sama
				return nil
			}
			// stale: tutup dulu, lanjut buat baru
			existing.MarkTimeout(now)
			if err := tx.UpdateSession(ctx, existing); err != nil {
				return err
			}
		}

		fresh := &qmodel.QuizSessionModel{
			QuizSessionUserID:       userID,
			QuizSessionQuizID:       quizID,
			QuizSessionModuleID:     quiz.QuizModuleID,
			QuizSessionFormationID:  quiz.QuizFormationID,
			QuizSessionStartedAt:    now,
			QuizSessionStatus:       qmodel.QuizSessionInProgress,
			QuizSessionTimeLimitMin: quiz.QuizTimeLimitMin,
		}
		if err := tx.CreateSession(ctx, fresh); err != nil {
			if helper.IsDuplicateKey(err) {
				// request paralel menang — pakai session miliknya
				winner, rerr := tx.ActiveSession(ctx, userID, quizID)
				if rerr != nil {
					return rerr
				}
				if winner == nil {
					return fiber.NewError(fiber.StatusConflict, "Session quiz sedang dibuat, coba lagi")
				}
				session = winner
				return nil
			}
			return err
		}
		session = fresh
		return nil
	})
	if err != nil {
		return nil, err
	}

	questions, err := s.Store.QuestionsByQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	resumed := !session.QuizSessionStartedAt.Equal(now)
	return &StartResult{
		Session:          session,
		Quiz:             quiz,
		Questions:        questions,
		TimeRemainingSec: session.TimeRemainingSec(now),
		Resumed:          resumed,
	}, nil
}

/* =========================================================
   SUBMIT
========================================================= */

type SubmitInput struct {
	SessionID uuid.UUID
	UserID    uuid.UUID
	// key = quiz_question_id, value = jawaban mentah klien
	// (index untuk choice, teks bebas untuk open_ended)
	Answers map[uuid.UUID]string
}

type QuestionResult struct {
	QuestionID    uuid.UUID `json:"question_id"`
	Question      string    `json:"question"`
	UserAnswer    string    `json:"user_answer"`
	IsCorrect     bool      `json:"is_correct"`
	Points        float64   `json:"points"`
	PointsEarned  float64   `json:"points_earned"`
	CorrectAnswer *string   `json:"correct_answer,omitempty"`
	Explanation   *string   `json:"explanation,omitempty"`
}

type SubmitResult struct {
	SessionID     uuid.UUID        `json:"session_id"`
	Score         float64          `json:"score"`
	Passed        bool             `json:"passed"`
	EarnedPoints  float64          `json:"earned_points"`
	TotalPoints   float64          `json:"total_points"`
	AttemptNumber int              `json:"attempt_number"`
	Results       []QuestionResult `json:"results"`
}

// Submit menilai session milik user:
// - bukan pemilik → 403; sudah ditutup → 409
// - lewat deadline → session ditandai TIMEOUT (di-commit) dan submit ditolak,
//   tidak pernah dinilai
// - grading + replace answers + close session + append attempt dalam SATU
//   transaksi dengan row session di-lock
// - setelah commit: ItemProgress ditulis PASSED/FAILED dan Aggregator jalan
//   (best-effort, kegagalan di tahap ini tidak membatalkan hasil grading)
func (s *QuizSessionService) Submit(ctx context.Context, in *SubmitInput) (*SubmitResult, error) {
	if in == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "input kosong")
	}

	now := s.Now()
	var (
		result            *SubmitResult
		lateErr           error
		formation, module uuid.UUID
	)

	err := s.Store.Transaction(ctx, func(tx Store) error {
		session, err := tx.SessionByIDForUpdate(ctx, in.SessionID)
		if err != nil {
			return err
		}
		if session == nil {
			return fiber.NewError(fiber.StatusNotFound, "Session tidak ditemukan")
		}
		if session.QuizSessionUserID != in.UserID {
			return fiber.NewError(fiber.StatusForbidden, "Session bukan milik user ini")
		}
		if !session.IsOpen() {
			return fiber.NewError(fiber.StatusConflict, "Session sudah ditutup")
		}
		if session.IsExpired(now) {
			// tandai timeout dan COMMIT; penolakan dikirim setelah transaksi
			session.MarkTimeout(now)
			if err := tx.UpdateSession(ctx, session); err != nil {
				return err
			}
			lateErr = fiber.NewError(fiber.StatusConflict, "Waktu quiz sudah habis")
			return nil
		}

		quiz, err := tx.QuizByID(ctx, session.QuizSessionQuizID)
		if err != nil {
			return err
		}
		if quiz == nil {
			return fiber.NewError(fiber.StatusNotFound, "Quiz tidak ditemukan")
		}
		questions, err := tx.QuestionsByQuiz(ctx, session.QuizSessionQuizID)
		if err != nil {
			return err
		}

		// Grade per soal
		var (
			earned, total float64
			answerRows    []qmodel.QuizAnswerModel
			results       []QuestionResult
		)
		for i := range questions {
			q := &questions[i]
			raw := strings.TrimSpace(in.Answers[q.QuizQuestionID])
			correct := gradeAnswer(q, raw)

			pts := 0.0
			if correct {
				pts = q.QuizQuestionPoints
			}
			earned += pts
			total += q.QuizQuestionPoints

			answerRows = append(answerRows, qmodel.QuizAnswerModel{
				QuizAnswerSessionID:    session.QuizSessionID,
				QuizAnswerQuestionID:   q.QuizQuestionID,
				QuizAnswerUserID:       in.UserID,
				QuizAnswerAnswer:       raw,
				QuizAnswerIsCorrect:    correct,
				QuizAnswerPointsEarned: pts,
			})

			qr := QuestionResult{
				QuestionID:   q.QuizQuestionID,
				Question:     q.QuizQuestionText,
				UserAnswer:   raw,
				IsCorrect:    correct,
				Points:       q.QuizQuestionPoints,
				PointsEarned: pts,
			}
			// kunci & pembahasan hanya dibuka kalau quiz mengizinkan
			if quiz.QuizShowCorrectAnswers {
				key := correctAnswerDisplay(q)
				qr.CorrectAnswer = &key
				qr.Explanation = q.QuizQuestionExplanation
			}
			results = append(results, qr)
		}

		score := 0.0
		if total > 0 {
			score = earned / total * 100
		}
		passed := score >= quiz.QuizPassingScore

		if err := tx.ReplaceAnswers(ctx, session.QuizSessionID, answerRows); err != nil {
			return err
		}

		session.MarkCompleted(score, passed, now)
		if err := tx.UpdateSession(ctx, session); err != nil {
			return err
		}

		// attempt_number: hitung DI DALAM transaksi; unique (user,module,number)
		// + unique session_id menutup race double-submit
		prior, err := tx.CountAttempts(ctx, in.UserID, session.QuizSessionModuleID)
		if err != nil {
			return err
		}
		status := "failed"
		if passed {
			status = "passed"
		}
		attempt := &qmodel.QuizAttemptModel{
			QuizAttemptUserID:    in.UserID,
			QuizAttemptModuleID:  session.QuizSessionModuleID,
			QuizAttemptSessionID: session.QuizSessionID,
			QuizAttemptScore:     score,
			QuizAttemptMaxScore:  total,
			QuizAttemptStatus:    status,
			QuizAttemptNumber:    int(prior) + 1,
		}
		if err := tx.InsertAttempt(ctx, attempt); err != nil {
			if helper.IsDuplicateKey(err) {
				return fiber.NewError(fiber.StatusConflict, "Attempt untuk session ini sudah tercatat")
			}
			return err
		}

		formation = session.QuizSessionFormationID
		module = session.QuizSessionModuleID
		result = &SubmitResult{
			SessionID:     session.QuizSessionID,
			Score:         score,
			Passed:        passed,
			EarnedPoints:  earned,
			TotalPoints:   total,
			AttemptNumber: attempt.QuizAttemptNumber,
			Results:       results,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if lateErr != nil {
		return nil, lateErr
	}

	// Setelah transaksi grading commit: tulis ItemProgress + Aggregator.
	// Best-effort: session sudah COMPLETED, gagal di sini tidak boleh membuat
	// learner kehilangan hasilnya — recompute berikutnya memperbaiki sendiri.
	if err := s.Progress.RecordQuizResult(ctx, in.UserID, formation, module, result.Score, result.Passed); err != nil {
		log.Printf("[QuizSessionService] record hasil quiz gagal (diabaikan). session_id=%s err=%v", result.SessionID, err)
	}

	log.Printf("[QuizSessionService] submit selesai. session_id=%s score=%.1f passed=%t attempt=%d",
		result.SessionID, result.Score, result.Passed, result.AttemptNumber)
	return result, nil
}

/* =========================================================
   GRADING
========================================================= */

// gradeAnswer menilai satu jawaban sesuai tipe soal:
// - multiple_choice / true_false: kesamaan numerik index
// - open_ended: string equality trim + case-insensitive terhadap satu jawaban
//   kanonikal (sengaja sederhana; jangan "diperbaiki" tanpa keputusan produk)
func gradeAnswer(q *qmodel.QuizQuestionModel, raw string) bool {
	if raw == "" {
		return false
	}
	switch {
	case q.IsChoice():
		want, ok := q.CorrectChoice()
		if !ok {
			return false
		}
		got, err := strconv.Atoi(raw)
		if err != nil {
			return false
		}
		return got == want
	case q.IsOpenEnded():
		want, ok := q.CorrectText()
		if !ok {
			return false
		}
		return strings.EqualFold(strings.TrimSpace(raw), strings.TrimSpace(want))
	default:
		return false
	}
}

// correctAnswerDisplay: representasi kunci untuk response (kalau diizinkan).
func correctAnswerDisplay(q *qmodel.QuizQuestionModel) string {
	if idx, ok := q.CorrectChoice(); ok {
		if idx >= 0 && idx < len(q.QuizQuestionOptions) {
			return q.QuizQuestionOptions[idx]
		}
		return strconv.Itoa(idx)
	}
	if txt, ok := q.CorrectText(); ok {
		return txt
	}
	return ""
}
