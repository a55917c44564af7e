package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gurubank_backend/internals/features/matches/controller"
)

// MatchRoutes memasang endpoint matching + pelacakan dokumen di /api
func MatchRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMatchController(db)

	matches := api.Group("/matches")
	matches.Post("/", ctrl.CreateOrUpdateMatch)     // upsert per request_id
	matches.Post("/:id/docs", ctrl.UpdateDocuments) // validasi :id di controller
}
