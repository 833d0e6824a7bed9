// file: internals/features/lms/catalog/model/module_prerequisite_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

/* =============================================================================
   ENUM-like: Prerequisite Requirement ('completed','passed','min_score')
============================================================================= */
type PrereqRequirement string

const (
	PrereqRequirementCompleted PrereqRequirement = "completed"
	PrereqRequirementPassed    PrereqRequirement = "passed"
	PrereqRequirementMinScore  PrereqRequirement = "min_score"
)

func (r PrereqRequirement) String() string { return string(r) }
func (r PrereqRequirement) Valid() bool {
	switch r {
	case PrereqRequirementCompleted, PrereqRequirementPassed, PrereqRequirementMinScore:
		return true
	default:
		return false
	}
}

func (r *PrereqRequirement) Scan(value any) error {
	if value == nil {
		*r = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*r = PrereqRequirement(v)
	case []byte:
		*r = PrereqRequirement(string(v))
	default:
		return fmt.Errorf("unsupported type for PrereqRequirement: %T", value)
	}
	if !r.Valid() {
		return fmt.Errorf("invalid PrereqRequirement: %q", *r)
	}
	return nil
}
func (r PrereqRequirement) Value() (driver.Value, error) {
	if r == "" {
		return nil, nil
	}
	if !r.Valid() {
		return nil, fmt.Errorf("invalid PrereqRequirement: %q", r)
	}
	return string(r), nil
}

/* =============================================================================
   MODEL: module_prerequisites
   Edge langsung module→module (tidak ada graph berantai di level data;
   kedalaman transitive muncul sendiri karena tiap module dicek edge-nya).
============================================================================= */
type ModulePrerequisiteModel struct {
	ModulePrereqID          uuid.UUID `gorm:"column:module_prereq_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"module_prereq_id"`
	ModulePrereqFormationID uuid.UUID `gorm:"column:module_prereq_formation_id;type:uuid;not null" json:"module_prereq_formation_id"`

	// Target yang dijaga + module yang disyaratkan
	ModulePrereqModuleID         uuid.UUID `gorm:"column:module_prereq_module_id;type:uuid;not null;index:idx_mprereq_module" json:"module_prereq_module_id"`
	ModulePrereqRequiresModuleID uuid.UUID `gorm:"column:module_prereq_requires_module_id;type:uuid;not null" json:"module_prereq_requires_module_id"`

	ModulePrereqRequirement PrereqRequirement `gorm:"column:module_prereq_requirement;type:varchar(16);not null" json:"module_prereq_requirement"`
	ModulePrereqMinScore    *float64          `gorm:"column:module_prereq_min_score;type:numeric(6,3)" json:"module_prereq_min_score,omitempty"`

	ModulePrereqCreatedAt time.Time `gorm:"column:module_prereq_created_at;not null;autoCreateTime" json:"module_prereq_created_at"`
}

func (ModulePrerequisiteModel) TableName() string { return "module_prerequisites" }

// MinScoreOrDefault: min_score NULL dibaca 0 (sesuai kontrak requirement)
func (m *ModulePrerequisiteModel) MinScoreOrDefault() float64 {
	if m.ModulePrereqMinScore != nil {
		return *m.ModulePrereqMinScore
	}
	return 0
}
