// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"gurubank_backend/internals/configs"
)

// CorsMiddleware membuat middleware CORS; origin diambil dari CORS_ALLOW_ORIGINS
func CorsMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(configs.CORSAllowOrigins, ", "),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
