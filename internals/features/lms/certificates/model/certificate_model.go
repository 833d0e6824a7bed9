// file: internals/features/lms/certificates/model/certificate_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =============================================================================
   MODEL: certificates
   Max 1 per (user, formation) + nomor unik global. Dibuat sekali oleh issuer,
   setelah itu tidak dimutasi oleh engine ini (is_valid disediakan untuk
   invalidasi eksternal di masa depan).
============================================================================= */
type CertificateModel struct {
	CertificateID          uuid.UUID `gorm:"column:certificate_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"certificate_id"`
	CertificateUserID      uuid.UUID `gorm:"column:certificate_user_id;type:uuid;not null;uniqueIndex:uq_certificate_user_formation,priority:1" json:"certificate_user_id"`
	CertificateFormationID uuid.UUID `gorm:"column:certificate_formation_id;type:uuid;not null;uniqueIndex:uq_certificate_user_formation,priority:2" json:"certificate_formation_id"`

	CertificateNumber   string    `gorm:"column:certificate_number;type:varchar(64);uniqueIndex:uq_certificate_number;not null" json:"certificate_number"`
	CertificateIssuedAt time.Time `gorm:"column:certificate_issued_at;type:timestamptz;not null" json:"certificate_issued_at"`
	CertificateIsValid  bool      `gorm:"column:certificate_is_valid;not null;default:true" json:"certificate_is_valid"`

	CertificateCreatedAt time.Time `gorm:"column:certificate_created_at;not null;autoCreateTime" json:"certificate_created_at"`
	CertificateUpdatedAt time.Time `gorm:"column:certificate_updated_at;not null;autoUpdateTime" json:"certificate_updated_at"`
}

func (CertificateModel) TableName() string { return "certificates" }
