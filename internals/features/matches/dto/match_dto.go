package dto

import (
	"time"

	"gurubank_backend/internals/features/matches/model"
)

// 🔹 Request matching (insert-or-update per request_id)
type CreateMatchRequest struct {
	RequestID int `json:"request_id" validate:"required,gt=0"`
	GroupID   int `json:"group_id"   validate:"required,gt=0"`
}

// 🔹 Request update kelengkapan dokumen. Flag dikirim lengkap (bukan partial):
// modal dokumen di dashboard selalu mengirim keempat checkbox sekaligus.
type UpdateDocumentsRequest struct {
	DocAgreement   bool   `json:"doc_agreement"`
	DocEstimate    bool   `json:"doc_estimate"`
	DocPlan        bool   `json:"doc_plan"`
	DocSexOffender bool   `json:"doc_sex_offender"`
	DocEtc         string `json:"doc_etc"`
}

// 🔹 Response match
type MatchResponse struct {
	ID             int    `json:"id"`
	RequestID      int    `json:"request_id"`
	GroupID        int    `json:"group_id"`
	AdminStatus    string `json:"admin_status"`
	DocAgreement   bool   `json:"doc_agreement"`
	DocEstimate    bool   `json:"doc_estimate"`
	DocPlan        bool   `json:"doc_plan"`
	DocSexOffender bool   `json:"doc_sex_offender"`
	DocEtc         string `json:"doc_etc"`
	CreatedAt      string `json:"created_at"`
}

// 🔄 Konversi dari model → response
func ToMatchResponse(m *model.MatchModel) *MatchResponse {
	return &MatchResponse{
		ID:             m.ID,
		RequestID:      m.RequestID,
		GroupID:        m.GroupID,
		AdminStatus:    m.AdminStatus,
		DocAgreement:   m.DocAgreement,
		DocEstimate:    m.DocEstimate,
		DocPlan:        m.DocPlan,
		DocSexOffender: m.DocSexOffender,
		DocEtc:         m.DocEtc,
		CreatedAt:      m.CreatedAt.Format(time.RFC3339),
	}
}
