// file: internals/features/requests/service/list_query.go
package service

import (
	"gorm.io/gorm"

	"gurubank_backend/internals/features/requests/dto"
)

// selectRequestRows: LEFT JOIN request → match → group. LEFT JOIN dua-duanya:
// request tanpa match tetap tampil, dan match yang group-nya sudah dihapus
// tampil dengan kolom group kosong.
const selectRequestRows = `
	requests.id,
	requests.institution_name,
	requests.education_type,
	requests.target_date,
	requests.target_audience,
	requests.student_count,
	requests.edu_time,
	requests.total_hours,
	requests.class_count,
	requests.budget,
	requests.note,
	requests.status,
	requests.created_at,
	matches.id AS match_id,
	matches.admin_status,
	matches.doc_agreement,
	matches.doc_estimate,
	matches.doc_plan,
	matches.doc_sex_offender,
	matches.doc_etc,
	groups.name AS matched_group_name,
	groups.type AS matched_group_type
`

// ListRowsQuery membangun scope query baris dashboard. Pemanggil masih bisa
// menambah Order/Limit/Offset. Dipakai oleh list requests, stats, dan export
// supaya ketiganya membaca view yang sama.
func ListRowsQuery(db *gorm.DB) *gorm.DB {
	return db.Table("requests").
		Select(selectRequestRows).
		Joins("LEFT JOIN matches ON matches.request_id = requests.id").
		Joins("LEFT JOIN groups ON groups.id = matches.group_id")
}

// FetchAllRows mengambil semua baris, urut target_date DESC lalu created_at
// DESC (urutan asli dashboard).
func FetchAllRows(db *gorm.DB) ([]dto.RequestListRow, error) {
	var rows []dto.RequestListRow
	err := ListRowsQuery(db).
		Order("requests.target_date DESC NULLS LAST, requests.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
