// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	authMiddleware "kursusku_backend/internals/middlewares/auth"
	routeDetails "kursusku_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (USER) → wajib JWT
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	private := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting LMS routes...")
	routeDetails.LmsPublicRoutes(public, db)
	routeDetails.LmsUserRoutes(private, db)
}
