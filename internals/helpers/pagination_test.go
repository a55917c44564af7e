package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"target_date": "requests.target_date",
		"created_at":  "requests.created_at",
	}

	t.Run("kolom whitelist", func(t *testing.T) {
		p := Params{SortBy: "created_at", SortOrder: "asc"}
		clause, err := p.SafeOrderClause(allowed, "target_date")
		require.NoError(t, err)
		assert.Equal(t, "requests.created_at ASC", clause)
	})

	t.Run("kolom liar jatuh ke default", func(t *testing.T) {
		p := Params{SortBy: "1; DROP TABLE requests", SortOrder: "desc"}
		clause, err := p.SafeOrderClause(allowed, "target_date")
		require.NoError(t, err)
		assert.Equal(t, "requests.target_date DESC", clause)
	})

	t.Run("tanpa default valid", func(t *testing.T) {
		p := Params{SortBy: "x"}
		_, err := p.SafeOrderClause(map[string]string{}, "y")
		assert.Error(t, err)
	})
}

func TestParamsLimitOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 50}
	assert.Equal(t, 50, p.Limit())
	assert.Equal(t, 100, p.Offset())
}

func TestBuildPagination(t *testing.T) {
	t.Run("halaman tengah", func(t *testing.T) {
		got := BuildPagination(120, Params{Page: 2, PerPage: 50})
		assert.Equal(t, 3, got.TotalPages)
		assert.True(t, got.HasNext)
		assert.True(t, got.HasPrev)
		assert.Equal(t, int64(120), got.Total)
	})

	t.Run("data kosong tetap satu halaman", func(t *testing.T) {
		got := BuildPagination(0, Params{Page: 1, PerPage: 25})
		assert.Equal(t, 1, got.TotalPages)
		assert.False(t, got.HasNext)
		assert.False(t, got.HasPrev)
	})
}
