package model

import (
	"time"

	"github.com/lib/pq"
)

// GroupModel: kelompok pengajar (komunitas/koperasi) yang bisa di-match ke
// permohonan edukasi. Group tidak memiliki match: match hanya menyimpan
// referensi lemah, jadi menghapus group tidak menghapus match (lihat matches).
type GroupModel struct {
	ID          int            `gorm:"column:id;primaryKey;autoIncrement"      json:"id"`
	Name        string         `gorm:"column:name;type:varchar(120);not null"  json:"name"`
	Type        string         `gorm:"column:type;type:varchar(10);not null"   json:"type"` // CLUB | COOP
	Category    string         `gorm:"column:category;type:varchar(60)"        json:"category"`
	Description string         `gorm:"column:description;type:text"            json:"description"`
	Members     pq.StringArray `gorm:"column:members;type:text[]"              json:"members"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
}

func (GroupModel) TableName() string {
	return "groups"
}
