package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gurubank_backend/internals/constants"
	matchModel "gurubank_backend/internals/features/matches/model"
	reportService "gurubank_backend/internals/features/reports/service"
	"gurubank_backend/internals/features/requests/dto"
	"gurubank_backend/internals/features/requests/model"
	requestService "gurubank_backend/internals/features/requests/service"
	helper "gurubank_backend/internals/helpers"
)

type RequestController struct {
	DB *gorm.DB
}

func NewRequestController(db *gorm.DB) *RequestController {
	return &RequestController{DB: db}
}

// kolom sort yang boleh dipakai dari query string
var requestSortWhitelist = map[string]string{
	"target_date": "requests.target_date",
	"created_at":  "requests.created_at",
}

// 🟢 GET /api/requests
// Baris dashboard: request + match + group (flattened), plus is_overdue &
// doc_count hasil hitungan Reporting Engine. per_page=all didukung karena
// dashboard memuat semuanya sekaligus.
func (ctrl *RequestController) ListRequests(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "target_date", "desc", helper.AdminOpts)

	orderCol, err := p.SafeOrderClause(requestSortWhitelist, "target_date")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter sort tidak valid")
	}

	var total int64
	if err := ctrl.DB.Model(&model.RequestModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] Gagal menghitung requests: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung permohonan")
	}

	q := requestService.ListRowsQuery(ctrl.DB).
		Order(orderCol + " NULLS LAST").
		Order("requests.created_at DESC")
	if !p.All {
		q = q.Limit(p.Limit()).Offset(p.Offset())
	}

	var rows []dto.RequestListRow
	if err := q.Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] Gagal memuat daftar permohonan: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar permohonan")
	}

	reportService.Enrich(rows, time.Now())

	pagination := helper.BuildPagination(total, p)
	return helper.JsonList(c, "Daftar permohonan berhasil dimuat", rows, &pagination)
}

// 🟢 POST /api/requests  (form internal)
func (ctrl *RequestController) CreateRequest(c *fiber.Ctx) error {
	var req dto.CreateRequestRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser gagal: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	return ctrl.createFrom(c, &req)
}

// 🟢 POST /api/requests/apply  (form pengajuan eksternal, tanpa login)
// Masuk ke jalur pembuatan yang sama; kontak penanggung jawab dilipat ke note.
func (ctrl *RequestController) ApplyRequest(c *fiber.Ctx) error {
	var req dto.ApplyRequestRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser gagal: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationErrorFrom(c, err)
	}
	return ctrl.createFrom(c, req.ToCreateRequest())
}

func (ctrl *RequestController) createFrom(c *fiber.Ctx, req *dto.CreateRequestRequest) error {
	req.Normalize()
	if err := helper.ValidateStruct(*req); err != nil {
		return helper.JsonValidationErrorFrom(c, err)
	}

	newRequest := req.ToModel()
	newRequest.Status = constants.StatusPending
	if err := ctrl.DB.Create(newRequest).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan permohonan: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan permohonan")
	}

	return helper.JsonCreated(c, "Permohonan berhasil didaftarkan", dto.ToRequestResponse(newRequest))
}

// 🟡 PUT /api/requests/:id
// Semua field boleh diedit kecuali id, created_at, dan status.
func (ctrl *RequestController) UpdateRequest(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request ID tidak valid")
	}

	var request model.RequestModel
	if err := ctrl.DB.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Permohonan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat permohonan")
	}

	var req dto.UpdateRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationErrorFrom(c, err)
	}

	updates := map[string]interface{}{}
	if req.InstitutionName != nil {
		name := strings.TrimSpace(*req.InstitutionName)
		if name == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Nama institusi tidak boleh kosong")
		}
		updates["institution_name"] = name
	}
	if req.EducationType != nil {
		updates["education_type"] = *req.EducationType
	}
	if req.TargetDate != nil {
		if strings.TrimSpace(*req.TargetDate) == "" {
			updates["target_date"] = gorm.Expr("NULL")
		} else {
			updates["target_date"] = *req.TargetDate
		}
	}
	if req.TargetAudience != nil {
		updates["target_audience"] = strings.TrimSpace(*req.TargetAudience)
	}
	if req.StudentCount != nil {
		updates["student_count"] = *req.StudentCount
	}
	if req.EduTime != nil {
		updates["edu_time"] = strings.TrimSpace(*req.EduTime)
	}
	if req.TotalHours != nil {
		updates["total_hours"] = *req.TotalHours
	}
	if req.ClassCount != nil {
		updates["class_count"] = *req.ClassCount
	}
	if req.Budget != nil {
		updates["budget"] = *req.Budget
	}
	if req.Note != nil {
		updates["note"] = *req.Note
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diupdate")
	}

	if err := ctrl.DB.Model(&request).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Gagal memperbarui permohonan %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui permohonan")
	}

	if err := ctrl.DB.First(&request, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data permohonan terbaru")
	}

	return helper.JsonUpdated(c, "Permohonan berhasil diperbarui", dto.ToRequestResponse(&request))
}

// 🔴 DELETE /api/requests/:id
// Match miliknya ikut terhapus dalam satu transaksi (komposisi: umur match
// ⊆ umur request).
func (ctrl *RequestController) DeleteRequest(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request ID tidak valid")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("request_id = ?", id).
			Delete(&matchModel.MatchModel{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&model.RequestModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Permohonan tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal menghapus permohonan %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus permohonan")
	}

	return helper.JsonDeleted(c, "Permohonan berhasil dihapus", fiber.Map{"id": id})
}

// 🟡 PUT /api/requests/:id/status
// Lifecycle maju saja; status sama = no-op. Set ke "matched" hanya boleh
// kalau match-nya memang ada (matched via endpoint matching).
func (ctrl *RequestController) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request ID tidak valid")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationErrorFrom(c, err)
	}

	var request model.RequestModel
	if err := ctrl.DB.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Permohonan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat permohonan")
	}

	noop, err := requestService.CheckTransition(request.Status, req.Status)
	if err != nil {
		if errors.Is(err, requestService.ErrBackwardTransition) {
			return helper.JsonError(c, fiber.StatusConflict, "Status tidak boleh mundur")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Status tidak dikenal")
	}
	if noop {
		return helper.JsonOK(c, "Status tidak berubah", dto.ToRequestResponse(&request))
	}

	if req.Status == constants.StatusMatched {
		var cnt int64
		if err := ctrl.DB.Model(&matchModel.MatchModel{}).
			Where("request_id = ?", id).
			Count(&cnt).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa match")
		}
		if cnt == 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Permohonan belum punya match")
		}
	}

	if err := ctrl.DB.Model(&request).Update("status", req.Status).Error; err != nil {
		log.Printf("[ERROR] Gagal mengubah status permohonan %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status")
	}
	request.Status = req.Status

	return helper.JsonUpdated(c, "Status permohonan berhasil diubah", dto.ToRequestResponse(&request))
}

func parseID(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(strings.TrimSpace(c.Params("id")))
}
