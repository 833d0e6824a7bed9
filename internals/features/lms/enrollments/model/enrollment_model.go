// file: internals/features/lms/enrollments/model/enrollment_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

/* =============================================================================
   ENUM-like: Enrollment Status ('active','suspended')
============================================================================= */
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentSuspended EnrollmentStatus = "suspended"
)

func (s EnrollmentStatus) String() string { return string(s) }
func (s EnrollmentStatus) Valid() bool {
	return s == EnrollmentActive || s == EnrollmentSuspended
}

func (s *EnrollmentStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = EnrollmentStatus(v)
	case []byte:
		*s = EnrollmentStatus(string(v))
	default:
		return fmt.Errorf("unsupported type for EnrollmentStatus: %T", value)
	}
	if !s.Valid() {
		return fmt.Errorf("invalid EnrollmentStatus: %q", *s)
	}
	return nil
}
func (s EnrollmentStatus) Value() (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("invalid EnrollmentStatus: %q", s)
	}
	return string(s), nil
}

/* =============================================================================
   MODEL: formation_enrollments
   Dibuat saat sign-up formation (di luar engine ini). Engine hanya membaca,
   kecuali kolom progress_percent yang di-overwrite oleh Aggregator
   (denormalized read path untuk dashboard).
============================================================================= */
type EnrollmentModel struct {
	EnrollmentID          uuid.UUID `gorm:"column:enrollment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"enrollment_id"`
	EnrollmentUserID      uuid.UUID `gorm:"column:enrollment_user_id;type:uuid;not null;uniqueIndex:uq_enrollment_user_formation,priority:1" json:"enrollment_user_id"`
	EnrollmentFormationID uuid.UUID `gorm:"column:enrollment_formation_id;type:uuid;not null;uniqueIndex:uq_enrollment_user_formation,priority:2" json:"enrollment_formation_id"`

	EnrollmentEnrolledAt time.Time        `gorm:"column:enrollment_enrolled_at;type:timestamptz;not null;default:now()" json:"enrollment_enrolled_at"`
	EnrollmentStatus     EnrollmentStatus `gorm:"column:enrollment_status;type:varchar(16);not null;default:'active'" json:"enrollment_status"`

	// Cache Aggregator
	EnrollmentProgressPercent float64 `gorm:"column:enrollment_progress_percent;type:numeric(6,3);not null;default:0" json:"enrollment_progress_percent"`

	EnrollmentCreatedAt time.Time `gorm:"column:enrollment_created_at;not null;autoCreateTime" json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time `gorm:"column:enrollment_updated_at;not null;autoUpdateTime" json:"enrollment_updated_at"`
}

func (EnrollmentModel) TableName() string { return "formation_enrollments" }

func (m *EnrollmentModel) IsActive() bool { return m.EnrollmentStatus == EnrollmentActive }
