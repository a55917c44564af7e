package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyToCreateRequestMelipatKontakKeNote(t *testing.T) {
	apply := ApplyRequestRequest{
		InstitutionName: "School X",
		EducationType:   "job-experience",
		ContactName:     "Kim",
		ContactPhone:    "010-1234-5678",
		NoteDetail:      "perlu dua kelas paralel",
	}

	req := apply.ToCreateRequest()

	assert.Equal(t, "School X", req.InstitutionName)
	assert.Equal(t, "[담당자: Kim / 010-1234-5678] \nperlu dua kelas paralel", req.Note)
}

func TestApplyToCreateRequestTanpaKontak(t *testing.T) {
	apply := ApplyRequestRequest{
		InstitutionName: "School Y",
		EducationType:   "other",
		NoteDetail:      "hanya catatan",
	}

	req := apply.ToCreateRequest()
	assert.Equal(t, "hanya catatan", req.Note)
}

func TestApplyToCreateRequestKontakSebagian(t *testing.T) {
	apply := ApplyRequestRequest{
		InstitutionName: "School Z",
		EducationType:   "other",
		ContactPhone:    "  010-0000-0000 ",
	}

	req := apply.ToCreateRequest()
	assert.Equal(t, "[담당자:  / 010-0000-0000] \n", req.Note)
}

func TestCreateRequestNormalize(t *testing.T) {
	empty := "   "
	req := CreateRequestRequest{
		InstitutionName: "  School X  ",
		TargetDate:      &empty,
		TargetAudience:  " kelas 2 SMP ",
	}

	req.Normalize()

	assert.Equal(t, "School X", req.InstitutionName)
	assert.Nil(t, req.TargetDate, "tanggal kosong dinormalisasi jadi nil")
	assert.Equal(t, "kelas 2 SMP", req.TargetAudience)
}

func TestCreateRequestToModel(t *testing.T) {
	date := "2026-09-01"
	req := CreateRequestRequest{
		InstitutionName: "School X",
		EducationType:   "study-coaching",
		TargetDate:      &date,
		StudentCount:    30,
		Budget:          500000,
	}

	m := req.ToModel()
	require.NotNil(t, m.TargetDate)
	assert.Equal(t, date, *m.TargetDate)
	assert.Equal(t, "", m.Status, "status dibiarkan kosong, diisi default pending saat create")
	assert.Equal(t, 30, m.StudentCount)
}
