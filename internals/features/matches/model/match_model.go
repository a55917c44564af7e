package model

import "time"

// MatchModel: penugasan satu group ke satu request, plus pelacakan kelengkapan
// dokumen administrasi.
//
// request_id unik → maksimal satu match per request, ditegakkan struktural
// lewat unique index (upsert saat rematch). group_id referensi lemah: group
// boleh dihapus tanpa menyentuh match (di sisi baca tampil kosong).
type MatchModel struct {
	ID          int    `gorm:"column:id;primaryKey;autoIncrement"                     json:"id"`
	RequestID   int    `gorm:"column:request_id;not null;uniqueIndex:ux_matches_request_id" json:"request_id"`
	GroupID     int    `gorm:"column:group_id;not null"                               json:"group_id"`
	AdminStatus string `gorm:"column:admin_status;type:varchar(20);not null;default:assigned" json:"admin_status"`

	// Empat dokumen administrasi dilacak sebagai boolean independen;
	// "lengkap" hanya hitungan di sisi tampilan, tidak disimpan.
	DocAgreement   bool   `gorm:"column:doc_agreement;not null;default:false"   json:"doc_agreement"`
	DocEstimate    bool   `gorm:"column:doc_estimate;not null;default:false"    json:"doc_estimate"`
	DocPlan        bool   `gorm:"column:doc_plan;not null;default:false"        json:"doc_plan"`
	DocSexOffender bool   `gorm:"column:doc_sex_offender;not null;default:false" json:"doc_sex_offender"`
	DocEtc         string `gorm:"column:doc_etc;type:text"                      json:"doc_etc"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
}

func (MatchModel) TableName() string {
	return "matches"
}
