// file: internals/features/lms/guard/route/user_route.go
package route

import (
	guardCtl "kursusku_backend/internals/features/lms/guard/controller"
	guardRepo "kursusku_backend/internals/features/lms/guard/repository"
	guardSvc "kursusku_backend/internals/features/lms/guard/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GuardUserRoutes(r fiber.Router, db *gorm.DB) {
	svc := guardSvc.NewGuardService(guardRepo.NewGuardRepository(db))
	ctl := guardCtl.NewGuardController(svc)

	r.Post("/learning/guard", ctl.Check)
}
