package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"gurubank_backend/internals/features/groups/dto"
	"gurubank_backend/internals/features/groups/model"
	helper "gurubank_backend/internals/helpers"
)

type GroupController struct {
	DB *gorm.DB
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{DB: db}
}

// 🟢 GET /api/groups
// Urut tipe lalu nama, sama seperti dropdown matching di dashboard.
func (ctrl *GroupController) ListGroups(c *fiber.Ctx) error {
	var groups []model.GroupModel
	if err := ctrl.DB.
		Order("type ASC, name ASC").
		Find(&groups).Error; err != nil {
		log.Printf("[ERROR] Gagal memuat daftar group: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar group")
	}

	return helper.JsonOK(c, "Daftar group berhasil dimuat", dto.ToGroupResponseList(groups))
}

// 🟢 POST /api/groups
func (ctrl *GroupController) CreateGroup(c *fiber.Ctx) error {
	var req dto.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser gagal: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	req.Normalize()
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationErrorFrom(c, err)
	}

	newGroup := req.ToModel()
	if err := ctrl.DB.Create(newGroup).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan group: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan group")
	}

	return helper.JsonCreated(c, "Group berhasil ditambahkan", dto.ToGroupResponse(newGroup))
}

// 🟡 PUT /api/groups/:id
func (ctrl *GroupController) UpdateGroup(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Group ID tidak valid")
	}

	var group model.GroupModel
	if err := ctrl.DB.First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Group tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat group")
	}

	var req dto.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationErrorFrom(c, err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Nama group tidak boleh kosong")
		}
		updates["name"] = name
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Category != nil {
		updates["category"] = strings.TrimSpace(*req.Category)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Members != nil {
		updates["members"] = pq.StringArray(*req.Members)
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diupdate")
	}

	if err := ctrl.DB.Model(&group).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Gagal memperbarui group %d: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui group")
	}

	if err := ctrl.DB.First(&group, id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data group terbaru")
	}

	return helper.JsonUpdated(c, "Group berhasil diperbarui", dto.ToGroupResponse(&group))
}

// 🔴 DELETE /api/groups/:id
// Match yang menunjuk group ini sengaja TIDAK ikut dihapus; referensinya
// lemah dan di sisi baca akan tampil kosong (LEFT JOIN).
func (ctrl *GroupController) DeleteGroup(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Group ID tidak valid")
	}

	res := ctrl.DB.Delete(&model.GroupModel{}, id)
	if res.Error != nil {
		log.Printf("[ERROR] Gagal menghapus group %d: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus group")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Group tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Group berhasil dihapus", fiber.Map{"id": id})
}

func parseID(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(strings.TrimSpace(c.Params("id")))
}
