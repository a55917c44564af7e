package service

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gurubank_backend/internals/constants"
	"gurubank_backend/internals/features/requests/dto"
)

func TestBuildCSV(t *testing.T) {
	rows := []dto.RequestListRow{
		{
			ID:               1,
			InstitutionName:  "School X",
			EducationType:    constants.EducationJobExperience,
			TargetDate:       strPtr("2026-09-01"),
			EduTime:          "13:00~15:00",
			TotalHours:       4,
			ClassCount:       3,
			StudentCount:     90,
			Budget:           500000,
			Status:           constants.StatusMatched,
			CreatedAt:        time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
			MatchedGroupName: strPtr("Club A"),
			MatchedGroupType: strPtr(constants.GroupTypeClub),
			DocAgreement:     boolPtr(true),
			DocEstimate:      boolPtr(false),
			DocPlan:          boolPtr(true),
			DocSexOffender:   boolPtr(false),
		},
		{
			ID:              2,
			InstitutionName: "School Y",
			EducationType:   constants.EducationOther,
			Status:          constants.StatusCompleted,
			CreatedAt:       time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC),
		},
	}

	out, err := BuildCSV(rows)
	require.NoError(t, err)

	// BOM di depan supaya Excel baca UTF-8
	require.True(t, bytes.HasPrefix(out, []byte("\uFEFF")))

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(out, []byte("\uFEFF"))))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 baris

	assert.Equal(t, ExportHeaders, records[0])

	first := records[1]
	assert.Equal(t, "2026-08-20", first[0])
	assert.Equal(t, "School X", first[1])
	assert.Equal(t, "Club A", first[9])
	assert.Equal(t, constants.GroupTypeClub, first[10])
	assert.Equal(t, "in-progress", first[11])
	assert.Equal(t, []string{"O", "X", "O", "X"}, first[12:16])

	second := records[2]
	assert.Equal(t, "", second[3], "target_date kosong tampil sebagai string kosong")
	assert.Equal(t, "", second[9], "tanpa match, kolom group kosong")
	assert.Equal(t, "completed", second[11])
	assert.Equal(t, []string{"X", "X", "X", "X"}, second[12:16])
}

func TestExportRowDanglingGroup(t *testing.T) {
	// group sudah dihapus: match ada tapi kolom group NULL
	row := dto.RequestListRow{
		InstitutionName: "School Z",
		Status:          constants.StatusMatched,
		CreatedAt:       time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		MatchID:         func() *int { v := 9; return &v }(),
		DocAgreement:    boolPtr(true),
	}

	record := ExportRow(&row)
	assert.Equal(t, "", record[9])
	assert.Equal(t, "", record[10])
	assert.Equal(t, "O", record[12])
}

func TestBuildCSVEmpty(t *testing.T) {
	out, err := BuildCSV(nil)
	require.NoError(t, err)

	s := strings.TrimPrefix(string(out), "\uFEFF")
	assert.Equal(t, strings.Join(ExportHeaders, ",")+"\n", s)
}
