// file: internals/features/lms/certificates/controller/certificate_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	cdto "kursusku_backend/internals/features/lms/certificates/dto"
	"kursusku_backend/internals/features/lms/certificates/service"
	helper "kursusku_backend/internals/helpers"
)

type CertificateController struct {
	Service *service.CertificateService
}

func NewCertificateController(svc *service.CertificateService) *CertificateController {
	return &CertificateController{Service: svc}
}

// GET /certificates — semua sertifikat milik user login
func (ctl *CertificateController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	rows, err := ctl.Service.ListByUser(c.UserContext(), userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Daftar sertifikat", cdto.NewCertificateListResponse(rows))
}

// GET /certificates/verify/:number — verifikasi publik nomor sertifikat
func (ctl *CertificateController) Verify(c *fiber.Ctx) error {
	number := strings.TrimSpace(c.Params("number"))
	if number == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Nomor sertifikat wajib")
	}

	cert, err := ctl.Service.VerifyNumber(c.UserContext(), number)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Sertifikat ditemukan", cdto.NewCertificateResponse(cert))
}
