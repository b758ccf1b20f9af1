package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"codetrain_backend/internals/middlewares/logger"
)

// SetupMiddlewares registers the base middleware chain for the whole app.
func SetupMiddlewares(app *fiber.App) {
	log.Println("[INFO] Registering base middlewares...")
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
