package dto

import (
	"fmt"
	"strings"
	"time"

	"gurubank_backend/internals/features/requests/model"
)

// 🔹 Request untuk membuat permohonan edukasi (form internal)
type CreateRequestRequest struct {
	InstitutionName string  `json:"institution_name" validate:"required,min=1,max=150"`
	EducationType   string  `json:"education_type"   validate:"required,oneof=job-experience study-coaching senior-cognitive other"`
	TargetDate      *string `json:"target_date"      validate:"omitempty,datetime=2006-01-02"`
	TargetAudience  string  `json:"target_audience"  validate:"max=100"`
	StudentCount    int     `json:"student_count"    validate:"gte=0"`
	EduTime         string  `json:"edu_time"         validate:"max=50"`
	TotalHours      int     `json:"total_hours"      validate:"gte=0"`
	ClassCount      int     `json:"class_count"      validate:"gte=0"`
	Budget          int     `json:"budget"           validate:"gte=0"`
	Note            string  `json:"note"`
}

// 🔹 Pengajuan dari form eksternal (tanpa login).
// Nama & kontak penanggung jawab dilipat ke kolom note.
type ApplyRequestRequest struct {
	InstitutionName string  `json:"institution_name" validate:"required,min=1,max=150"`
	EducationType   string  `json:"education_type"   validate:"required,oneof=job-experience study-coaching senior-cognitive other"`
	TargetDate      *string `json:"target_date"      validate:"omitempty,datetime=2006-01-02"`
	TargetAudience  string  `json:"target_audience"  validate:"max=100"`
	StudentCount    int     `json:"student_count"    validate:"gte=0"`
	EduTime         string  `json:"edu_time"         validate:"max=50"`
	TotalHours      int     `json:"total_hours"      validate:"gte=0"`
	ClassCount      int     `json:"class_count"      validate:"gte=0"`
	Budget          int     `json:"budget"           validate:"gte=0"`
	ContactName     string  `json:"contact_name"     validate:"max=60"`
	ContactPhone    string  `json:"contact_phone"    validate:"max=30"`
	NoteDetail      string  `json:"note_detail"`
}

// 🔹 Update permohonan (partial). Status & created_at tidak pernah ikut —
// status hanya lewat endpoint status / matching.
type UpdateRequestRequest struct {
	InstitutionName *string `json:"institution_name" validate:"omitempty,min=1,max=150"`
	EducationType   *string `json:"education_type"   validate:"omitempty,oneof=job-experience study-coaching senior-cognitive other"`
	TargetDate      *string `json:"target_date"      validate:"omitempty,datetime=2006-01-02"`
	TargetAudience  *string `json:"target_audience"  validate:"omitempty,max=100"`
	StudentCount    *int    `json:"student_count"    validate:"omitempty,gte=0"`
	EduTime         *string `json:"edu_time"         validate:"omitempty,max=50"`
	TotalHours      *int    `json:"total_hours"      validate:"omitempty,gte=0"`
	ClassCount      *int    `json:"class_count"      validate:"omitempty,gte=0"`
	Budget          *int    `json:"budget"           validate:"omitempty,gte=0"`
	Note            *string `json:"note"`
}

// 🔹 Request untuk ganti status lifecycle
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending matched completed"`
}

// 🔹 Response permohonan tunggal
type RequestResponse struct {
	ID              int     `json:"id"`
	InstitutionName string  `json:"institution_name"`
	EducationType   string  `json:"education_type"`
	TargetDate      *string `json:"target_date"`
	TargetAudience  string  `json:"target_audience"`
	StudentCount    int     `json:"student_count"`
	EduTime         string  `json:"edu_time"`
	TotalHours      int     `json:"total_hours"`
	ClassCount      int     `json:"class_count"`
	Budget          int     `json:"budget"`
	Note            string  `json:"note"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
}

func (r *CreateRequestRequest) Normalize() {
	r.InstitutionName = strings.TrimSpace(r.InstitutionName)
	r.TargetAudience = strings.TrimSpace(r.TargetAudience)
	r.EduTime = strings.TrimSpace(r.EduTime)
	if r.TargetDate != nil && strings.TrimSpace(*r.TargetDate) == "" {
		r.TargetDate = nil
	}
}

// 🔄 Konversi dari request → model
func (r *CreateRequestRequest) ToModel() *model.RequestModel {
	return &model.RequestModel{
		InstitutionName: r.InstitutionName,
		EducationType:   r.EducationType,
		TargetDate:      r.TargetDate,
		TargetAudience:  r.TargetAudience,
		StudentCount:    r.StudentCount,
		EduTime:         r.EduTime,
		TotalHours:      r.TotalHours,
		ClassCount:      r.ClassCount,
		Budget:          r.Budget,
		Note:            r.Note,
		// Status sengaja tidak diisi: default DB "pending"
	}
}

// ToCreateRequest melipat info penanggung jawab ke note, lalu lewat jalur
// pembuatan yang sama dengan form internal.
func (r *ApplyRequestRequest) ToCreateRequest() *CreateRequestRequest {
	note := ""
	name := strings.TrimSpace(r.ContactName)
	phone := strings.TrimSpace(r.ContactPhone)
	if name != "" || phone != "" {
		note = fmt.Sprintf("[담당자: %s / %s] \n", name, phone)
	}
	note += r.NoteDetail

	return &CreateRequestRequest{
		InstitutionName: r.InstitutionName,
		EducationType:   r.EducationType,
		TargetDate:      r.TargetDate,
		TargetAudience:  r.TargetAudience,
		StudentCount:    r.StudentCount,
		EduTime:         r.EduTime,
		TotalHours:      r.TotalHours,
		ClassCount:      r.ClassCount,
		Budget:          r.Budget,
		Note:            note,
	}
}

// 🔄 Konversi dari model → response
func ToRequestResponse(m *model.RequestModel) *RequestResponse {
	return &RequestResponse{
		ID:              m.ID,
		InstitutionName: m.InstitutionName,
		EducationType:   m.EducationType,
		TargetDate:      m.TargetDate,
		TargetAudience:  m.TargetAudience,
		StudentCount:    m.StudentCount,
		EduTime:         m.EduTime,
		TotalHours:      m.TotalHours,
		ClassCount:      m.ClassCount,
		Budget:          m.Budget,
		Note:            m.Note,
		Status:          m.Status,
		CreatedAt:       m.CreatedAt.Format(time.RFC3339),
	}
}
