package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gurubank_backend/internals/features/groups/controller"
)

// GroupRoutes memasang CRUD group pengajar di bawah /api
func GroupRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGroupController(db)

	groups := api.Group("/groups")
	groups.Get("/", ctrl.ListGroups)
	groups.Post("/", ctrl.CreateGroup)
	groups.Put("/:id", ctrl.UpdateGroup)    // validasi :id di controller
	groups.Delete("/:id", ctrl.DeleteGroup) // tidak cascade ke matches
}
