package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gurubank_backend/internals/constants"
	"gurubank_backend/internals/features/reports/dto"
	"gurubank_backend/internals/features/reports/service"
	requestService "gurubank_backend/internals/features/requests/service"
	helper "gurubank_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// 🟢 GET /api/reports/stats
// Kartu statistik dashboard: hitungan per status + edukasi bulan ini.
func (ctrl *ReportController) GetStats(c *fiber.Ctx) error {
	rows, err := requestService.FetchAllRows(ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] Gagal memuat data statistik: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat statistik")
	}

	now := time.Now()
	stats := dto.StatsResponse{
		Pending:   service.CountByStatus(rows, constants.StatusPending),
		Matched:   service.CountByStatus(rows, constants.StatusMatched),
		Completed: service.CountByStatus(rows, constants.StatusCompleted),
		ThisMonth: service.CountThisMonth(rows, now),
		Total:     len(rows),
	}

	return helper.JsonOK(c, "Statistik berhasil dimuat", stats)
}

// 🟢 GET /api/export
// CSV laporan lengkap (view yang sama dengan daftar permohonan), BOM di
// depan supaya langsung kebuka rapi di spreadsheet.
func (ctrl *ReportController) ExportCSV(c *fiber.Ctx) error {
	rows, err := requestService.FetchAllRows(ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] Gagal memuat data export: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data export")
	}

	service.SortByTargetDateDesc(rows)

	csvBytes, err := service.BuildCSV(rows)
	if err != nil {
		log.Printf("[ERROR] Gagal membentuk CSV: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membentuk file export")
	}

	filename := fmt.Sprintf("education_report_%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(csvBytes)
}
