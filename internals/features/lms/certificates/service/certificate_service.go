// file: internals/features/lms/certificates/service/certificate_service.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	cmodel "kursusku_backend/internals/features/lms/certificates/model"
	helper "kursusku_backend/internals/helpers"
)

/* =========================================================
   STORE (diimplementasikan repository GORM; fake di test)
   Konvensi: lookup yang tidak ketemu mengembalikan (nil, nil).
========================================================= */

type Store interface {
	FormationCertificateEnabled(ctx context.Context, formationID uuid.UUID) (bool, error)
	CertificateByUserFormation(ctx context.Context, userID, formationID uuid.UUID) (*cmodel.CertificateModel, error)
	CertificateByNumber(ctx context.Context, number string) (*cmodel.CertificateModel, error)
	CertificatesByUser(ctx context.Context, userID uuid.UUID) ([]cmodel.CertificateModel, error)
	InsertCertificate(ctx context.Context, cert *cmodel.CertificateModel) error
}

/* =========================================================
   SERVICE
========================================================= */

type CertificateService struct {
	Store Store
	Now   func() time.Time
}

func NewCertificateService(store Store) *CertificateService {
	return &CertificateService{Store: store, Now: time.Now}
}

// Issue menerbitkan sertifikat untuk (user, formation) secara idempoten:
// - no-op kalau sudah ada, atau formation mematikan sertifikat
// - race "baru saja 100%" dari dua request jatuh ke unique constraint,
//   23505 diperlakukan sebagai sudah-terbit (bukan error).
func (s *CertificateService) Issue(ctx context.Context, userID, formationID uuid.UUID) error {
	enabled, err := s.Store.FormationCertificateEnabled(ctx, formationID)
	if err != nil {
		return err
	}
	if !enabled {
		log.Printf("[CertificateService] skip issue: sertifikat nonaktif. formation_id=%s", formationID)
		return nil
	}

	existing, err := s.Store.CertificateByUserFormation(ctx, userID, formationID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	now := s.Now()
	cert := &cmodel.CertificateModel{
		CertificateUserID:      userID,
		CertificateFormationID: formationID,
		CertificateNumber:      generateNumber(now),
		CertificateIssuedAt:    now,
		CertificateIsValid:     true,
	}

	if err := s.Store.InsertCertificate(ctx, cert); err != nil {
		if helper.IsDuplicateKey(err) {
			// request lain menang; hasil akhirnya sama
			log.Printf("[CertificateService] duplicate issue diabaikan. user_id=%s formation_id=%s", userID, formationID)
			return nil
		}
		return err
	}

	log.Printf("[CertificateService] certificate issued. user_id=%s formation_id=%s number=%s", userID, formationID, cert.CertificateNumber)
	return nil
}

// ListByUser: semua sertifikat milik user.
func (s *CertificateService) ListByUser(ctx context.Context, userID uuid.UUID) ([]cmodel.CertificateModel, error) {
	return s.Store.CertificatesByUser(ctx, userID)
}

// VerifyNumber: lookup publik untuk validasi nomor sertifikat.
func (s *CertificateService) VerifyNumber(ctx context.Context, number string) (*cmodel.CertificateModel, error) {
	cert, err := s.Store.CertificateByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if cert == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Sertifikat tidak ditemukan")
	}
	return cert, nil
}

// generateNumber: timestamp + suffix acak; keunikan final dijaga constraint DB.
func generateNumber(now time.Time) string {
	b := make([]byte, 3)
	_, _ = rand.Read(b)
	return fmt.Sprintf("CERT-%d-%s", now.UnixMilli(), hex.EncodeToString(b))
}
