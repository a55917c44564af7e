package dto

import (
	"strings"

	"github.com/lib/pq"

	"gurubank_backend/internals/features/groups/model"
)

// 🔹 Request untuk membuat group
type CreateGroupRequest struct {
	Name        string   `json:"name"        validate:"required,min=1,max=120"`
	Type        string   `json:"type"        validate:"required,oneof=CLUB COOP"`
	Category    string   `json:"category"    validate:"max=60"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
}

// 🔹 Request untuk update group (partial, field nil = tidak diubah)
type UpdateGroupRequest struct {
	Name        *string   `json:"name"     validate:"omitempty,min=1,max=120"`
	Type        *string   `json:"type"     validate:"omitempty,oneof=CLUB COOP"`
	Category    *string   `json:"category" validate:"omitempty,max=60"`
	Description *string   `json:"description"`
	Members     *[]string `json:"members"`
}

// 🔹 Response group
type GroupResponse struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
	CreatedAt   string   `json:"created_at"`
}

func (r *CreateGroupRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Category = strings.TrimSpace(r.Category)
	for i := range r.Members {
		r.Members[i] = strings.TrimSpace(r.Members[i])
	}
}

// 🔄 Konversi dari request → model
func (r *CreateGroupRequest) ToModel() *model.GroupModel {
	return &model.GroupModel{
		Name:        r.Name,
		Type:        r.Type,
		Category:    r.Category,
		Description: r.Description,
		Members:     pq.StringArray(r.Members),
	}
}

// 🔄 Konversi dari model → response
func ToGroupResponse(m *model.GroupModel) *GroupResponse {
	members := []string(m.Members)
	if members == nil {
		members = []string{}
	}
	return &GroupResponse{
		ID:          m.ID,
		Name:        m.Name,
		Type:        m.Type,
		Category:    m.Category,
		Description: m.Description,
		Members:     members,
		CreatedAt:   m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// 🔄 Konversi list model → list response
func ToGroupResponseList(models []model.GroupModel) []GroupResponse {
	result := make([]GroupResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToGroupResponse(&models[i]))
	}
	return result
}
