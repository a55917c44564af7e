// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupRoute "gurubank_backend/internals/features/groups/route"
	matchRoute "gurubank_backend/internals/features/matches/route"
	reportRoute "gurubank_backend/internals/features/reports/route"
	requestRoute "gurubank_backend/internals/features/requests/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Setting up GroupRoutes...")
	groupRoute.GroupRoutes(api, db)

	log.Println("[INFO] Setting up RequestRoutes...")
	requestRoute.RequestRoutes(api, db)

	log.Println("[INFO] Setting up MatchRoutes...")
	matchRoute.MatchRoutes(api, db)

	log.Println("[INFO] Setting up ReportRoutes...")
	reportRoute.ReportRoutes(api, db)
}
