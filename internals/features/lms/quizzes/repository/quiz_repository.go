// file: internals/features/lms/quizzes/repository/quiz_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	enrModel "kursusku_backend/internals/features/lms/enrollments/model"
	qmodel "kursusku_backend/internals/features/lms/quizzes/model"
	"kursusku_backend/internals/features/lms/quizzes/service"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

var _ service.Store = (*QuizRepository)(nil)

func (r *QuizRepository) QuizByID(ctx context.Context, quizID uuid.UUID) (*qmodel.QuizModel, error) {
	var quiz qmodel.QuizModel
	err := r.DB.WithContext(ctx).First(&quiz, "quiz_id = ?", quizID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) QuestionsByQuiz(ctx context.Context, quizID uuid.UUID) ([]qmodel.QuizQuestionModel, error) {
	var out []qmodel.QuizQuestionModel
	err := r.DB.WithContext(ctx).
		Where("quiz_question_quiz_id = ?", quizID).
		Order("quiz_question_order ASC").
		Find(&out).Error
	return out, err
}

func (r *QuizRepository) EnrollmentByUserFormation(ctx context.Context, userID, formationID uuid.UUID) (*enrModel.EnrollmentModel, error) {
	var e enrModel.EnrollmentModel
	err := r.DB.WithContext(ctx).
		First(&e, "enrollment_user_id = ? AND enrollment_formation_id = ?", userID, formationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *QuizRepository) ActiveSession(ctx context.Context, userID, quizID uuid.UUID) (*qmodel.QuizSessionModel, error) {
	var s qmodel.QuizSessionModel
	err := r.DB.WithContext(ctx).
		Where("quiz_session_user_id = ? AND quiz_session_quiz_id = ? AND quiz_session_status = ?",
			userID, quizID, qmodel.QuizSessionInProgress).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SessionByIDForUpdate: row lock supaya double-submit session yang sama
// terserialisasi di DB, bukan di aplikasi.
func (r *QuizRepository) SessionByIDForUpdate(ctx context.Context, sessionID uuid.UUID) (*qmodel.QuizSessionModel, error) {
	var s qmodel.QuizSessionModel
	err := r.DB.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&s, "quiz_session_id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *QuizRepository) CreateSession(ctx context.Context, row *qmodel.QuizSessionModel) error {
	return r.DB.WithContext(ctx).Create(row).Error
}

func (r *QuizRepository) UpdateSession(ctx context.Context, row *qmodel.QuizSessionModel) error {
	return r.DB.WithContext(ctx).Save(row).Error
}

// ReplaceAnswers: hapus jawaban lama session lalu insert batch baru (1 tx caller).
func (r *QuizRepository) ReplaceAnswers(ctx context.Context, sessionID uuid.UUID, rows []qmodel.QuizAnswerModel) error {
	if err := r.DB.WithContext(ctx).
		Where("quiz_answer_session_id = ?", sessionID).
		Delete(&qmodel.QuizAnswerModel{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Create(&rows).Error
}

func (r *QuizRepository) CountAttempts(ctx context.Context, userID, moduleID uuid.UUID) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&qmodel.QuizAttemptModel{}).
		Where("quiz_attempt_user_id = ? AND quiz_attempt_module_id = ?", userID, moduleID).
		Count(&n).Error
	return n, err
}

func (r *QuizRepository) InsertAttempt(ctx context.Context, row *qmodel.QuizAttemptModel) error {
	return r.DB.WithContext(ctx).Create(row).Error
}

func (r *QuizRepository) Transaction(ctx context.Context, fn func(service.Store) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&QuizRepository{DB: tx})
	})
}
