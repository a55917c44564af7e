package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gurubank_backend/internals/configs"
	"gurubank_backend/internals/features/matches/dto"
	"gurubank_backend/internals/features/matches/model"
	"gurubank_backend/internals/features/matches/service"
	helper "gurubank_backend/internals/helpers"
)

type MatchController struct {
	DB       *gorm.DB
	Matching *service.MatchingService
}

func NewMatchController(db *gorm.DB) *MatchController {
	return &MatchController{
		DB:       db,
		Matching: service.NewMatchingService(db, configs.MatchAdminStatusPolicy),
	}
}

// 🟢 POST /api/matches
// Upsert: request yang sudah punya match di-overwrite group-nya (rematch),
// flag dokumen tetap. Status request jadi "matched" di transaksi yang sama.
func (ctrl *MatchController) CreateOrUpdateMatch(c *fiber.Ctx) error {
	var req dto.CreateMatchRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser gagal: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationErrorFrom(c, err)
	}

	match, err := ctrl.Matching.Match(req.RequestID, req.GroupID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Permohonan tidak ditemukan")
		case errors.Is(err, service.ErrGroupNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Group tidak ditemukan")
		case errors.Is(err, service.ErrRequestCompleted):
			return helper.JsonError(c, fiber.StatusConflict, "Permohonan sudah selesai, tidak bisa dimatch ulang")
		case errors.Is(err, service.ErrMatchConflict):
			return helper.JsonError(c, fiber.StatusConflict, "Match sedang diproses, silakan coba lagi")
		}
		log.Printf("[ERROR] Gagal matching request=%d group=%d: %v", req.RequestID, req.GroupID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan match")
	}

	return helper.JsonOK(c, "Match berhasil disimpan", dto.ToMatchResponse(match))
}

// 🟡 POST /api/matches/:id/docs
// Set keempat flag dokumen + catatan; tidak menyentuh group/admin_status.
func (ctrl *MatchController) UpdateDocuments(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Match ID tidak valid")
	}

	var req dto.UpdateDocumentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	var match model.MatchModel
	if err := ctrl.DB.First(&match, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Match tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat match")
	}

	updates := map[string]interface{}{
		"doc_agreement":    req.DocAgreement,
		"doc_estimate":     req.DocEstimate,
		"doc_plan":         req.DocPlan,
		"doc_sex_offender": req.DocSexOffender,
		"doc_etc":          req.DocEtc,
	}
	if err := ctrl.DB.Model(&match).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan dokumen match %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan status dokumen")
	}

	if err := ctrl.DB.First(&match, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data match terbaru")
	}

	return helper.JsonUpdated(c, "Status dokumen berhasil disimpan", dto.ToMatchResponse(&match))
}
