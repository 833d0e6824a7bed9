// file: internals/features/lms/certificates/route/user_route.go
package route

import (
	certCtl "kursusku_backend/internals/features/lms/certificates/controller"
	certRepo "kursusku_backend/internals/features/lms/certificates/repository"
	certSvc "kursusku_backend/internals/features/lms/certificates/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CertificateUserRoutes(r fiber.Router, db *gorm.DB) {
	svc := certSvc.NewCertificateService(certRepo.NewCertificateRepository(db))
	ctl := certCtl.NewCertificateController(svc)

	r.Get("/certificates", ctl.ListMine)
}

// Verifikasi nomor sertifikat terbuka untuk siapa saja (tanpa login).
func CertificatePublicRoutes(r fiber.Router, db *gorm.DB) {
	svc := certSvc.NewCertificateService(certRepo.NewCertificateRepository(db))
	ctl := certCtl.NewCertificateController(svc)

	r.Get("/certificates/verify/:number", ctl.Verify)
}
