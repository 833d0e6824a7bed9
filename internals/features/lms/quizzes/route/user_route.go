// file: internals/features/lms/quizzes/route/user_route.go
package route

import (
	quizCtl "kursusku_backend/internals/features/lms/quizzes/controller"
	quizRepo "kursusku_backend/internals/features/lms/quizzes/repository"
	quizSvc "kursusku_backend/internals/features/lms/quizzes/service"

	certRepo "kursusku_backend/internals/features/lms/certificates/repository"
	certSvc "kursusku_backend/internals/features/lms/certificates/service"
	progressRepo "kursusku_backend/internals/features/lms/progress/repository"
	progressSvc "kursusku_backend/internals/features/lms/progress/service"

	"kursusku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func QuizUserRoutes(r fiber.Router, db *gorm.DB) {
	issuer := certSvc.NewCertificateService(certRepo.NewCertificateRepository(db))
	progress := progressSvc.NewProgressService(progressRepo.NewProgressRepository(db), issuer)
	svc := quizSvc.NewQuizSessionService(quizRepo.NewQuizRepository(db), progress)
	ctl := quizCtl.NewQuizSessionUserController(svc)

	r.Post("/quizzes/:id/start", ctl.Start)

	// Submit dibatasi rate limiter terpisah (lebih ketat dari limiter global)
	r.Post("/quiz-sessions/:id/submit", middlewares.QuizSubmitRateLimiter(), ctl.Submit)
}
