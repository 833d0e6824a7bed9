// file: internals/features/lms/guard/dto/guard_dto.go
package dto

import (
	"github.com/google/uuid"
)

/* ==========================================================================================
   REQUEST — EVALUASI AKSES MODULE
========================================================================================== */

type GuardCheckRequest struct {
	ModuleID uuid.UUID `json:"module_id" validate:"required"`
}
