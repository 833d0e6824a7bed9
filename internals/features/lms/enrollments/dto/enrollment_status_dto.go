// file: internals/features/lms/enrollments/dto/enrollment_status_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

/* ==========================================================================================
   RESPONSE — ENROLLMENT STATUS (read model untuk dashboard formation)
========================================================================================== */

type ProgressSummary struct {
	CompletedModules int     `json:"completed_modules"`
	TotalModules     int     `json:"total_modules"`
	ProgressPercent  float64 `json:"progress_percent"`
}

type ModuleStatus struct {
	ModuleID  uuid.UUID `json:"module_id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	Order     int       `json:"order"`
	Status    string    `json:"status"`
	Completed bool      `json:"completed"`
}

type CertificateSummary struct {
	CertificateNumber string    `json:"certificate_number"`
	IssuedAt          time.Time `json:"issued_at"`
}

type EnrollmentStatusResponse struct {
	Enrolled       bool                `json:"enrolled"`
	Status         string              `json:"status,omitempty"`
	EnrolledAt     *time.Time          `json:"enrolled_at,omitempty"`
	Progress       *ProgressSummary    `json:"progress,omitempty"`
	ModuleStatuses []ModuleStatus      `json:"module_statuses,omitempty"`
	Certificate    *CertificateSummary `json:"certificate,omitempty"`
}
