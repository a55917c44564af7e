package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gurubank_backend/internals/features/requests/controller"
	"gurubank_backend/internals/middlewares"
)

// RequestRoutes memasang CRUD permohonan edukasi + endpoint status di /api
func RequestRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewRequestController(db)

	requests := api.Group("/requests")
	requests.Get("/", ctrl.ListRequests)
	requests.Post("/", ctrl.CreateRequest)

	// form pengajuan eksternal (tanpa login) → limiter lebih ketat
	requests.Post("/apply", middlewares.ApplyRateLimiter(), ctrl.ApplyRequest)

	requests.Put("/:id", ctrl.UpdateRequest)       // validasi :id di controller
	requests.Delete("/:id", ctrl.DeleteRequest)    // cascade hapus match miliknya
	requests.Put("/:id/status", ctrl.UpdateStatus) // lifecycle maju saja
}
