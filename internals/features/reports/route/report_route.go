package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gurubank_backend/internals/features/reports/controller"
	"gurubank_backend/internals/middlewares"
)

// ReportRoutes memasang endpoint statistik dashboard + export CSV di /api
func ReportRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(db)

	reports := api.Group("/reports")
	reports.Get("/stats", ctrl.GetStats)

	// path export dibiarkan /api/export (kompatibel dengan dashboard lama)
	api.Get("/export", middlewares.ExportRateLimiter(), ctrl.ExportCSV)
}
