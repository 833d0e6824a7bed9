// file: internals/features/lms/enrollments/route/user_route.go
package route

import (
	enrollCtl "kursusku_backend/internals/features/lms/enrollments/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func EnrollmentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := enrollCtl.NewEnrollmentStatusController(db)

	r.Get("/formations/:id/enrollment-status", ctl.GetStatus)
}
