// file: internals/features/lms/certificates/repository/certificate_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	cmodel "kursusku_backend/internals/features/lms/certificates/model"
)

type CertificateRepository struct {
	DB *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{DB: db}
}

func (r *CertificateRepository) FormationCertificateEnabled(ctx context.Context, formationID uuid.UUID) (bool, error) {
	var enabled bool
	err := r.DB.WithContext(ctx).
		Raw(`SELECT formation_certificate_enabled FROM formations
		     WHERE formation_id = ? AND formation_deleted_at IS NULL`, formationID).
		Scan(&enabled).Error
	if err != nil {
		return false, err
	}
	return enabled, nil
}

func (r *CertificateRepository) CertificateByUserFormation(ctx context.Context, userID, formationID uuid.UUID) (*cmodel.CertificateModel, error) {
	var cert cmodel.CertificateModel
	err := r.DB.WithContext(ctx).
		First(&cert, "certificate_user_id = ? AND certificate_formation_id = ?", userID, formationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *CertificateRepository) CertificateByNumber(ctx context.Context, number string) (*cmodel.CertificateModel, error) {
	var cert cmodel.CertificateModel
	err := r.DB.WithContext(ctx).
		First(&cert, "certificate_number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *CertificateRepository) CertificatesByUser(ctx context.Context, userID uuid.UUID) ([]cmodel.CertificateModel, error) {
	var certs []cmodel.CertificateModel
	err := r.DB.WithContext(ctx).
		Where("certificate_user_id = ?", userID).
		Order("certificate_issued_at DESC").
		Find(&certs).Error
	return certs, err
}

func (r *CertificateRepository) InsertCertificate(ctx context.Context, cert *cmodel.CertificateModel) error {
	return r.DB.WithContext(ctx).Create(cert).Error
}
