// file: internals/features/lms/catalog/model/formation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   MODEL: formations
   Katalog read-only untuk engine ini; CRUD-nya dikelola layanan lain.
============================================================================= */
type FormationModel struct {
	FormationID          uuid.UUID `gorm:"column:formation_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"formation_id"`
	FormationTitle       string    `gorm:"column:formation_title;type:varchar(180);not null" json:"formation_title"`
	FormationSlug        string    `gorm:"column:formation_slug;type:varchar(120);uniqueIndex;not null" json:"formation_slug"`
	FormationDescription *string   `gorm:"column:formation_description;type:text" json:"formation_description,omitempty"`

	// Sertifikat bisa dimatikan per formation (issuer akan no-op)
	FormationCertificateEnabled bool `gorm:"column:formation_certificate_enabled;not null;default:true" json:"formation_certificate_enabled"`

	FormationCreatedAt time.Time      `gorm:"column:formation_created_at;not null;autoCreateTime" json:"formation_created_at"`
	FormationUpdatedAt time.Time      `gorm:"column:formation_updated_at;not null;autoUpdateTime" json:"formation_updated_at"`
	FormationDeletedAt gorm.DeletedAt `gorm:"column:formation_deleted_at;index" json:"formation_deleted_at,omitempty"`
}

func (FormationModel) TableName() string { return "formations" }
