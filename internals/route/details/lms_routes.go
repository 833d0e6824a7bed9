// file: internals/route/details/lms_routes.go
package details

import (
	certRoute "kursusku_backend/internals/features/lms/certificates/route"
	enrollRoute "kursusku_backend/internals/features/lms/enrollments/route"
	guardRoute "kursusku_backend/internals/features/lms/guard/route"
	progressRoute "kursusku_backend/internals/features/lms/progress/route"
	quizRoute "kursusku_backend/internals/features/lms/quizzes/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Semua endpoint user (wajib JWT) ada di sini.
func LmsUserRoutes(r fiber.Router, db *gorm.DB) {
	progressRoute.ProgressUserRoutes(r, db)
	guardRoute.GuardUserRoutes(r, db)
	quizRoute.QuizUserRoutes(r, db)
	certRoute.CertificateUserRoutes(r, db)
	enrollRoute.EnrollmentUserRoutes(r, db)
}

// Endpoint publik (tanpa JWT): verifikasi sertifikat.
func LmsPublicRoutes(r fiber.Router, db *gorm.DB) {
	certRoute.CertificatePublicRoutes(r, db)
}
