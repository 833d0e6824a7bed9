// file: internals/features/lms/progress/route/user_route.go
package route

import (
	progressCtl "kursusku_backend/internals/features/lms/progress/controller"
	progressRepo "kursusku_backend/internals/features/lms/progress/repository"
	progressSvc "kursusku_backend/internals/features/lms/progress/service"

	certRepo "kursusku_backend/internals/features/lms/certificates/repository"
	certSvc "kursusku_backend/internals/features/lms/certificates/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ProgressUserRoutes(r fiber.Router, db *gorm.DB) {
	issuer := certSvc.NewCertificateService(certRepo.NewCertificateRepository(db))
	svc := progressSvc.NewProgressService(progressRepo.NewProgressRepository(db), issuer)
	ctl := progressCtl.NewProgressController(svc)

	r.Post("/learning/events", ctl.SubmitEvent)
	r.Get("/modules/:id/progress", ctl.GetModuleProgress)
}
