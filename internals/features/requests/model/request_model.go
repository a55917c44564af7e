package model

import "time"

// RequestModel: permohonan edukasi dari sebuah institusi.
//
// target_date disimpan sebagai string ISO (YYYY-MM-DD, nullable) — semua
// perbandingan (overdue, filter bulan ini, sort) memakai perbandingan
// string ISO, konsisten dengan sumber datanya (form tanggal HTML).
type RequestModel struct {
	ID              int     `gorm:"column:id;primaryKey;autoIncrement"            json:"id"`
	InstitutionName string  `gorm:"column:institution_name;type:varchar(150);not null" json:"institution_name"`
	EducationType   string  `gorm:"column:education_type;type:varchar(30)"       json:"education_type"`
	TargetDate      *string `gorm:"column:target_date;type:varchar(10)"          json:"target_date"`
	TargetAudience  string  `gorm:"column:target_audience;type:varchar(100)"     json:"target_audience"`
	StudentCount    int     `gorm:"column:student_count;not null;default:0"      json:"student_count"`
	EduTime         string  `gorm:"column:edu_time;type:varchar(50)"             json:"edu_time"` // misal "13:00~15:00"
	TotalHours      int     `gorm:"column:total_hours;not null;default:0"        json:"total_hours"`
	ClassCount      int     `gorm:"column:class_count;not null;default:0"        json:"class_count"`
	Budget          int     `gorm:"column:budget;not null;default:0"             json:"budget"`
	Note            string  `gorm:"column:note;type:text"                        json:"note"`
	Status          string  `gorm:"column:status;type:varchar(20);not null;default:pending" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
}

func (RequestModel) TableName() string {
	return "requests"
}
