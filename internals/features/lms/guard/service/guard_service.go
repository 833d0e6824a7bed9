// file: internals/features/lms/guard/service/guard_service.go
package service

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	catalogModel "kursusku_backend/internals/features/lms/catalog/model"
	enrModel "kursusku_backend/internals/features/lms/enrollments/model"
	pmodel "kursusku_backend/internals/features/lms/progress/model"
)

/* =========================================================
   STORE (read-only — Guard tidak pernah menulis)
   Konvensi: lookup yang tidak ketemu mengembalikan (nil, nil).
========================================================= */

type Store interface {
	ModuleByID(ctx context.Context, moduleID uuid.UUID) (*catalogModel.FormationModuleModel, error)
	EnrollmentByUserFormation(ctx context.Context, userID, formationID uuid.UUID) (*enrModel.EnrollmentModel, error)
	ReleasePolicyByModule(ctx context.Context, moduleID uuid.UUID) (*catalogModel.ModuleReleasePolicyModel, error)
	PrerequisitesByModule(ctx context.Context, moduleID uuid.UUID) ([]catalogModel.ModulePrerequisiteModel, error)
	ItemProgressByUserModule(ctx context.Context, userID, moduleID uuid.UUID) (*pmodel.ItemProgressModel, error)
}

/* =========================================================
   DECISION
========================================================= */

type ReasonCode string

const (
	ReasonNotEnrolled   ReasonCode = "not_enrolled"
	ReasonLockedByDrip  ReasonCode = "locked_by_drip"
	ReasonLockedByPrereq ReasonCode = "locked_by_prereq"
)

// UnmetPrereq: satu rule prasyarat yang belum terpenuhi, lengkap dengan
// keadaan progress saat ini supaya UI bisa menjelaskan ke learner.
type UnmetPrereq struct {
	RequiresModuleID uuid.UUID `json:"requires_module_id"`
	Requirement      string    `json:"requirement"`
	MinScore         *float64  `json:"min_score,omitempty"`
	CurrentStatus    string    `json:"current_status"`
	CurrentScore     *float64  `json:"current_score,omitempty"`
}

type Reason struct {
	Code        ReasonCode    `json:"code"`
	AvailableAt *time.Time    `json:"available_at,omitempty"`
	Unmet       []UnmetPrereq `json:"unmet,omitempty"`
}

type Decision struct {
	Allowed bool     `json:"allowed"`
	Reasons []Reason `json:"reasons"`
}

func allow() *Decision { return &Decision{Allowed: true, Reasons: []Reason{}} }
func deny(r Reason) *Decision {
	return &Decision{Allowed: false, Reasons: []Reason{r}}
}

/* =========================================================
   SERVICE
========================================================= */

type GuardService struct {
	Store Store
	Now   func() time.Time
}

func NewGuardService(store Store) *GuardService {
	return &GuardService{Store: store, Now: time.Now}
}

// Evaluate menjalankan tiga predicate berurutan dan berhenti di kategori
// pertama yang memblokir (enrollment → drip → prerequisites). Di dalam
// kategori prerequisites SEMUA rule yang belum terpenuhi dikumpulkan supaya
// learner melihat daftar lengkap. Murni baca — tidak ada mutasi.
func (s *GuardService) Evaluate(ctx context.Context, userID, moduleID uuid.UUID) (*Decision, error) {
	module, err := s.Store.ModuleByID(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Module tidak ditemukan")
	}

	// 1) Enrollment — short-circuit, check lain tidak dijalankan
	enrollment, err := s.Store.EnrollmentByUserFormation(ctx, userID, module.FormationModuleFormationID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil || !enrollment.IsActive() {
		return deny(Reason{Code: ReasonNotEnrolled}), nil
	}

	// 2) Release policy (drip) — "belum tersedia" menang atas prasyarat
	policy, err := s.Store.ReleasePolicyByModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	if policy != nil {
		if availableAt := policy.AvailableAt(enrollment.EnrollmentEnrolledAt); availableAt != nil && s.Now().Before(*availableAt) {
			return deny(Reason{Code: ReasonLockedByDrip, AvailableAt: availableAt}), nil
		}
	}

	// 3) Prerequisites — kumpulkan SEMUA yang belum terpenuhi
	prereqs, err := s.Store.PrerequisitesByModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	var unmet []UnmetPrereq
	for _, p := range prereqs {
		row, err := s.Store.ItemProgressByUserModule(ctx, userID, p.ModulePrereqRequiresModuleID)
		if err != nil {
			return nil, err
		}
		if prereqSatisfied(&p, row) {
			continue
		}
		u := UnmetPrereq{
			RequiresModuleID: p.ModulePrereqRequiresModuleID,
			Requirement:      p.ModulePrereqRequirement.String(),
			MinScore:         p.ModulePrereqMinScore,
			CurrentStatus:    pmodel.ItemProgressNotStarted.String(),
		}
		if row != nil {
			u.CurrentStatus = row.ItemProgressStatus.String()
			u.CurrentScore = row.ItemProgressScore
		}
		unmet = append(unmet, u)
	}
	if len(unmet) > 0 {
		return deny(Reason{Code: ReasonLockedByPrereq, Unmet: unmet}), nil
	}

	return allow(), nil
}

func prereqSatisfied(p *catalogModel.ModulePrerequisiteModel, row *pmodel.ItemProgressModel) bool {
	if row == nil {
		return false
	}
	switch p.ModulePrereqRequirement {
	case catalogModel.PrereqRequirementCompleted:
		return row.ItemProgressStatus.CountsAsCompleted()
	case catalogModel.PrereqRequirementPassed:
		return row.ItemProgressStatus == pmodel.ItemProgressPassed
	case catalogModel.PrereqRequirementMinScore:
		return row.ItemProgressScore != nil && *row.ItemProgressScore >= p.MinScoreOrDefault()
	default:
		return false
	}
}
