package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gurubank_backend/internals/constants"
	"gurubank_backend/internals/features/requests/dto"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// referensi waktu tetap supaya test deterministik
var refDate = time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

func sampleRows() []dto.RequestListRow {
	return []dto.RequestListRow{
		{ID: 1, Status: constants.StatusPending, TargetDate: strPtr("2026-08-10")},
		{ID: 2, Status: constants.StatusMatched, TargetDate: strPtr("2026-09-01")},
		{ID: 3, Status: constants.StatusCompleted, TargetDate: strPtr("2026-08-20")},
		{ID: 4, Status: constants.StatusPending, TargetDate: nil},
		{ID: 5, Status: constants.StatusMatched, TargetDate: strPtr("2026-07-15")},
	}
}

func TestCountByStatus(t *testing.T) {
	rows := sampleRows()

	assert.Equal(t, 2, CountByStatus(rows, constants.StatusPending))
	assert.Equal(t, 2, CountByStatus(rows, constants.StatusMatched))
	assert.Equal(t, 1, CountByStatus(rows, constants.StatusCompleted))
	assert.Equal(t, 0, CountByStatus(nil, constants.StatusPending))
}

func TestCountThisMonth(t *testing.T) {
	rows := sampleRows()

	// Agustus 2026: id 1 dan 3; id 4 (tanpa tanggal) tidak pernah ikut
	assert.Equal(t, 2, CountThisMonth(rows, refDate))
	assert.Equal(t, 1, CountThisMonth(rows, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, CountThisMonth(rows, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFilter(t *testing.T) {
	rows := sampleRows()

	t.Run("per status", func(t *testing.T) {
		got := Filter(rows, constants.FilterPending, refDate)
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].ID)
		assert.Equal(t, 4, got[1].ID)
	})

	t.Run("bulan ini", func(t *testing.T) {
		got := Filter(rows, constants.FilterThisMonth, refDate)
		require.Len(t, got, 2)
		for _, row := range got {
			require.NotNil(t, row.TargetDate)
			assert.Equal(t, "2026-08", (*row.TargetDate)[:7])
		}
	})

	t.Run("baris tanpa tanggal hanya lolos mode all", func(t *testing.T) {
		for _, mode := range []string{constants.FilterMatched, constants.FilterCompleted, constants.FilterThisMonth} {
			for _, row := range Filter(rows, mode, refDate) {
				assert.NotEqual(t, 4, row.ID, "mode %s tidak boleh memuat baris tanpa tanggal berstatus pending", mode)
			}
		}
		assert.Len(t, Filter(rows, constants.FilterAll, refDate), len(rows))
	})

	t.Run("mode all dan kosong identik", func(t *testing.T) {
		assert.Equal(t, Filter(rows, constants.FilterAll, refDate), Filter(rows, "", refDate))
	})
}

func TestSortByTargetDateDesc(t *testing.T) {
	rows := sampleRows()
	SortByTargetDateDesc(rows)

	// terbaru dulu; tanpa tanggal (sentinel minimal) paling akhir
	gotIDs := make([]int, 0, len(rows))
	for _, r := range rows {
		gotIDs = append(gotIDs, r.ID)
	}
	assert.Equal(t, []int{2, 3, 1, 5, 4}, gotIDs)
}

func TestSortByTargetDateDescStable(t *testing.T) {
	rows := []dto.RequestListRow{
		{ID: 1, TargetDate: strPtr("2026-08-10")},
		{ID: 2, TargetDate: strPtr("2026-08-10")},
		{ID: 3, TargetDate: strPtr("2026-08-10")},
	}
	SortByTargetDateDesc(rows)

	assert.Equal(t, 1, rows[0].ID)
	assert.Equal(t, 2, rows[1].ID)
	assert.Equal(t, 3, rows[2].ID)
}

func TestDocumentCompletionCount(t *testing.T) {
	t.Run("semua false", func(t *testing.T) {
		row := dto.RequestListRow{
			DocAgreement:   boolPtr(false),
			DocEstimate:    boolPtr(false),
			DocPlan:        boolPtr(false),
			DocSexOffender: boolPtr(false),
		}
		assert.Equal(t, 0, DocumentCompletionCount(&row))
	})

	t.Run("semua true", func(t *testing.T) {
		row := dto.RequestListRow{
			DocAgreement:   boolPtr(true),
			DocEstimate:    boolPtr(true),
			DocPlan:        boolPtr(true),
			DocSexOffender: boolPtr(true),
		}
		assert.Equal(t, 4, DocumentCompletionCount(&row))
	})

	t.Run("monoton terhadap jumlah flag true", func(t *testing.T) {
		flags := []*bool{boolPtr(false), boolPtr(false), boolPtr(false), boolPtr(false)}
		row := dto.RequestListRow{}
		prev := -1
		for i := 0; i <= 4; i++ {
			row.DocAgreement, row.DocEstimate, row.DocPlan, row.DocSexOffender =
				flags[0], flags[1], flags[2], flags[3]
			got := DocumentCompletionCount(&row)
			assert.Equal(t, i, got)
			assert.Greater(t, got, prev)
			prev = got
			if i < 4 {
				flags[i] = boolPtr(true)
			}
		}
	})

	t.Run("baris tanpa match dihitung nol", func(t *testing.T) {
		assert.Equal(t, 0, DocumentCompletionCount(&dto.RequestListRow{}))
	})
}

func TestIsOverdueRow(t *testing.T) {
	row := dto.RequestListRow{Status: constants.StatusMatched, TargetDate: strPtr("2026-08-01")}
	assert.True(t, IsOverdue(&row, refDate))

	row.Status = constants.StatusCompleted
	assert.False(t, IsOverdue(&row, refDate))
}

func TestEnrich(t *testing.T) {
	rows := []dto.RequestListRow{
		{
			Status:       constants.StatusMatched,
			TargetDate:   strPtr("2026-08-01"),
			DocAgreement: boolPtr(true),
			DocEstimate:  boolPtr(true),
		},
		{Status: constants.StatusPending},
	}

	Enrich(rows, refDate)

	assert.True(t, rows[0].IsOverdue)
	assert.Equal(t, 2, rows[0].DocCount)
	assert.False(t, rows[1].IsOverdue)
	assert.Equal(t, 0, rows[1].DocCount)
}
