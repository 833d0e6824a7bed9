// file: internals/features/lms/catalog/model/module_release_policy_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =============================================================================
   MODEL: module_release_policies
   Drip/release rule per module: release_at absolut dan/atau delay_minutes
   relatif terhadap enrolled_at. Keduanya opsional.
============================================================================= */
type ModuleReleasePolicyModel struct {
	ModuleReleaseID       uuid.UUID `gorm:"column:module_release_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"module_release_id"`
	ModuleReleaseModuleID uuid.UUID `gorm:"column:module_release_module_id;type:uuid;not null;uniqueIndex:uq_mrelease_module" json:"module_release_module_id"`

	ModuleReleaseAt           *time.Time `gorm:"column:module_release_at;type:timestamptz" json:"module_release_at,omitempty"`
	ModuleReleaseDelayMinutes *int       `gorm:"column:module_release_delay_minutes" json:"module_release_delay_minutes,omitempty"`

	ModuleReleaseCreatedAt time.Time `gorm:"column:module_release_created_at;not null;autoCreateTime" json:"module_release_created_at"`
}

func (ModuleReleasePolicyModel) TableName() string { return "module_release_policies" }

// AvailableAt menghitung max(release_at, enrolled_at + delay_minutes).
// Term yang tidak dikonfigurasi diabaikan; nil artinya module langsung tersedia.
func (m *ModuleReleasePolicyModel) AvailableAt(enrolledAt time.Time) *time.Time {
	var at *time.Time
	if m.ModuleReleaseAt != nil {
		t := *m.ModuleReleaseAt
		at = &t
	}
	if m.ModuleReleaseDelayMinutes != nil {
		t := enrolledAt.Add(time.Duration(*m.ModuleReleaseDelayMinutes) * time.Minute)
		if at == nil || t.After(*at) {
			at = &t
		}
	}
	return at
}
