// file: internals/features/lms/certificates/dto/certificate_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	cmodel "kursusku_backend/internals/features/lms/certificates/model"
)

type CertificateResponse struct {
	CertificateNumber string    `json:"certificate_number"`
	FormationID       uuid.UUID `json:"formation_id"`
	IssuedAt          time.Time `json:"issued_at"`
	IsValid           bool      `json:"is_valid"`
}

func NewCertificateResponse(m *cmodel.CertificateModel) CertificateResponse {
	return CertificateResponse{
		CertificateNumber: m.CertificateNumber,
		FormationID:       m.CertificateFormationID,
		IssuedAt:          m.CertificateIssuedAt,
		IsValid:           m.CertificateIsValid,
	}
}

func NewCertificateListResponse(rows []cmodel.CertificateModel) []CertificateResponse {
	out := make([]CertificateResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewCertificateResponse(&rows[i]))
	}
	return out
}
