// file: internals/features/lms/progress/dto/progress_event_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	pmodel "kursusku_backend/internals/features/lms/progress/model"
	"kursusku_backend/internals/features/lms/progress/service"
)

/* ==========================================================================================
   REQUEST — SUBMIT EVENT
========================================================================================== */

type SubmitEventData struct {
	TimeSpentSec int      `json:"time_spent_sec" validate:"omitempty,min=0"`
	Progress     *float64 `json:"progress" validate:"omitempty,min=0,max=100"`
	Score        *float64 `json:"score" validate:"omitempty,min=0,max=100"`
}

type SubmitEventRequest struct {
	FormationID uuid.UUID `json:"formation_id" validate:"required"`
	ModuleID    uuid.UUID `json:"module_id" validate:"required"`
	Event       string    `json:"event" validate:"required,oneof=start progress complete passed failed"`

	Data *SubmitEventData `json:"data" validate:"omitempty"`
}

func (r *SubmitEventRequest) ToInput(userID uuid.UUID) *service.SubmitEventInput {
	in := &service.SubmitEventInput{
		UserID:      userID,
		FormationID: r.FormationID,
		ModuleID:    r.ModuleID,
		Event:       pmodel.ProgressEventType(r.Event),
	}
	if r.Data != nil {
		in.TimeSpentSec = r.Data.TimeSpentSec
		in.Progress = r.Data.Progress
		in.Score = r.Data.Score
	}
	return in
}

/* ==========================================================================================
   RESPONSE — ITEM PROGRESS
========================================================================================== */

type ItemProgressResponse struct {
	ModuleID     uuid.UUID  `json:"module_id"`
	FormationID  uuid.UUID  `json:"formation_id"`
	Status       string     `json:"status"`
	Score        *float64   `json:"score,omitempty"`
	Passed       *bool      `json:"passed,omitempty"`
	TimeSpentSec int        `json:"time_spent_sec"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	LastEventAt  *time.Time `json:"last_event_at,omitempty"`
}

func NewItemProgressResponse(m *pmodel.ItemProgressModel) ItemProgressResponse {
	last := m.ItemProgressLastEventAt
	return ItemProgressResponse{
		ModuleID:     m.ItemProgressModuleID,
		FormationID:  m.ItemProgressFormationID,
		Status:       m.ItemProgressStatus.String(),
		Score:        m.ItemProgressScore,
		Passed:       m.ItemProgressPassed,
		TimeSpentSec: m.ItemProgressTimeSpentSec,
		StartedAt:    m.ItemProgressStartedAt,
		CompletedAt:  m.ItemProgressCompletedAt,
		LastEventAt:  &last,
	}
}

// NewEmptyItemProgressResponse: belum ada event sama sekali utk module ini.
func NewEmptyItemProgressResponse(moduleID uuid.UUID) ItemProgressResponse {
	return ItemProgressResponse{
		ModuleID: moduleID,
		Status:   pmodel.ItemProgressNotStarted.String(),
	}
}
