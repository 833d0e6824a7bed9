// file: internals/features/lms/quizzes/model/quiz_session_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

/* =============================================================================
   ENUM-like: Session Status ('in_progress','completed','timeout')
============================================================================= */
type QuizSessionStatus string

const (
	QuizSessionInProgress QuizSessionStatus = "in_progress"
	QuizSessionCompleted  QuizSessionStatus = "completed"
	QuizSessionTimeout    QuizSessionStatus = "timeout"
)

func (s QuizSessionStatus) String() string { return string(s) }
func (s QuizSessionStatus) Valid() bool {
	switch s {
	case QuizSessionInProgress, QuizSessionCompleted, QuizSessionTimeout:
		return true
	default:
		return false
	}
}

func (s *QuizSessionStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = QuizSessionStatus(v)
	case []byte:
		*s = QuizSessionStatus(string(v))
	default:
		return fmt.Errorf("unsupported type for QuizSessionStatus: %T", value)
	}
	if !s.Valid() {
		return fmt.Errorf("invalid QuizSessionStatus: %q", *s)
	}
	return nil
}
func (s QuizSessionStatus) Value() (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("invalid QuizSessionStatus: %q", s)
	}
	return string(s), nil
}

/* =============================================================================
   MODEL: quiz_sessions
   Partial unique index menjamin max 1 session in_progress per (user, quiz);
   check-then-create dibungkus transaksi, race 23505 di-resolve dengan re-read.
============================================================================= */
type QuizSessionModel struct {
	QuizSessionID          uuid.UUID `gorm:"column:quiz_session_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_session_id"`
	QuizSessionUserID      uuid.UUID `gorm:"column:quiz_session_user_id;type:uuid;not null;index:uq_quiz_session_active,unique,priority:1,where:quiz_session_status = 'in_progress'" json:"quiz_session_user_id"`
	QuizSessionQuizID      uuid.UUID `gorm:"column:quiz_session_quiz_id;type:uuid;not null;index:uq_quiz_session_active,unique,priority:2,where:quiz_session_status = 'in_progress'" json:"quiz_session_quiz_id"`
	QuizSessionModuleID    uuid.UUID `gorm:"column:quiz_session_module_id;type:uuid;not null" json:"quiz_session_module_id"`
	QuizSessionFormationID uuid.UUID `gorm:"column:quiz_session_formation_id;type:uuid;not null" json:"quiz_session_formation_id"`

	QuizSessionStartedAt   time.Time  `gorm:"column:quiz_session_started_at;type:timestamptz;not null;default:now()" json:"quiz_session_started_at"`
	QuizSessionCompletedAt *time.Time `gorm:"column:quiz_session_completed_at;type:timestamptz" json:"quiz_session_completed_at,omitempty"`

	QuizSessionStatus QuizSessionStatus `gorm:"column:quiz_session_status;type:varchar(16);not null;default:'in_progress'" json:"quiz_session_status"`
	QuizSessionScore  *float64          `gorm:"column:quiz_session_score;type:numeric(6,3)" json:"quiz_session_score,omitempty"`
	QuizSessionPassed *bool             `gorm:"column:quiz_session_passed" json:"quiz_session_passed,omitempty"`

	// Di-copy dari quiz saat start supaya perubahan konfigurasi tidak
	// menggeser deadline session yang sudah berjalan.
	QuizSessionTimeLimitMin *int `gorm:"column:quiz_session_time_limit_min" json:"quiz_session_time_limit_min,omitempty"`

	QuizSessionCreatedAt time.Time `gorm:"column:quiz_session_created_at;not null;autoCreateTime" json:"quiz_session_created_at"`
	QuizSessionUpdatedAt time.Time `gorm:"column:quiz_session_updated_at;not null;autoUpdateTime" json:"quiz_session_updated_at"`
}

func (QuizSessionModel) TableName() string { return "quiz_sessions" }

/* ===================================================================
   Helper methods
=================================================================== */

func (m *QuizSessionModel) IsOpen() bool { return m.QuizSessionStatus == QuizSessionInProgress }

// ExpiresAt: nil kalau session tanpa batas waktu.
func (m *QuizSessionModel) ExpiresAt() *time.Time {
	if m.QuizSessionTimeLimitMin == nil || *m.QuizSessionTimeLimitMin <= 0 {
		return nil
	}
	t := m.QuizSessionStartedAt.Add(time.Duration(*m.QuizSessionTimeLimitMin) * time.Minute)
	return &t
}

func (m *QuizSessionModel) IsExpired(now time.Time) bool {
	exp := m.ExpiresAt()
	return exp != nil && now.After(*exp)
}

// TimeRemainingSec: sisa waktu dalam detik; nil kalau tanpa limit.
func (m *QuizSessionModel) TimeRemainingSec(now time.Time) *int {
	exp := m.ExpiresAt()
	if exp == nil {
		return nil
	}
	rem := int(exp.Sub(now).Seconds())
	if rem < 0 {
		rem = 0
	}
	return &rem
}

func (m *QuizSessionModel) MarkTimeout(now time.Time) {
	m.QuizSessionStatus = QuizSessionTimeout
	m.QuizSessionCompletedAt = &now
}

func (m *QuizSessionModel) MarkCompleted(score float64, passed bool, now time.Time) {
	m.QuizSessionStatus = QuizSessionCompleted
	m.QuizSessionScore = &score
	m.QuizSessionPassed = &passed
	m.QuizSessionCompletedAt = &now
}
