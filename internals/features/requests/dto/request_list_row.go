package dto

import "time"

// RequestListRow: satu baris tampilan dashboard — request LEFT JOIN match
// LEFT JOIN group. Kolom match/group nullable: request belum tentu punya
// match, dan group yang sudah dihapus tampil kosong (referensi lemah).
//
// Baris ini juga menjadi input Reporting/Filter Engine dan sumber data
// export CSV, supaya ketiganya dijamin membaca view yang sama.
type RequestListRow struct {
	ID              int       `gorm:"column:id"               json:"id"`
	InstitutionName string    `gorm:"column:institution_name" json:"institution_name"`
	EducationType   string    `gorm:"column:education_type"   json:"education_type"`
	TargetDate      *string   `gorm:"column:target_date"      json:"target_date"`
	TargetAudience  string    `gorm:"column:target_audience"  json:"target_audience"`
	StudentCount    int       `gorm:"column:student_count"    json:"student_count"`
	EduTime         string    `gorm:"column:edu_time"         json:"edu_time"`
	TotalHours      int       `gorm:"column:total_hours"      json:"total_hours"`
	ClassCount      int       `gorm:"column:class_count"      json:"class_count"`
	Budget          int       `gorm:"column:budget"           json:"budget"`
	Note            string    `gorm:"column:note"             json:"note"`
	Status          string    `gorm:"column:status"           json:"status"`
	CreatedAt       time.Time `gorm:"column:created_at"       json:"created_at"`

	MatchID        *int    `gorm:"column:match_id"        json:"match_id"`
	AdminStatus    *string `gorm:"column:admin_status"    json:"admin_status"`
	DocAgreement   *bool   `gorm:"column:doc_agreement"   json:"doc_agreement"`
	DocEstimate    *bool   `gorm:"column:doc_estimate"    json:"doc_estimate"`
	DocPlan        *bool   `gorm:"column:doc_plan"        json:"doc_plan"`
	DocSexOffender *bool   `gorm:"column:doc_sex_offender" json:"doc_sex_offender"`
	DocEtc         *string `gorm:"column:doc_etc"         json:"doc_etc"`

	MatchedGroupName *string `gorm:"column:matched_group_name" json:"matched_group_name"`
	MatchedGroupType *string `gorm:"column:matched_group_type" json:"matched_group_type"`

	// Derived, tidak disimpan — diisi Reporting Engine sebelum dikirim.
	IsOverdue bool `gorm:"-" json:"is_overdue"`
	DocCount  int  `gorm:"-" json:"doc_count"`
}
