package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gurubank_backend/internals/constants"
)

func TestCheckTransition(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		wantNoop bool
		wantErr  error
	}{
		{"pending ke matched", constants.StatusPending, constants.StatusMatched, false, nil},
		{"matched ke completed", constants.StatusMatched, constants.StatusCompleted, false, nil},
		{"pending langsung completed", constants.StatusPending, constants.StatusCompleted, false, nil},
		{"status sama itu no-op", constants.StatusMatched, constants.StatusMatched, true, nil},
		{"completed ke completed no-op", constants.StatusCompleted, constants.StatusCompleted, true, nil},
		{"completed tidak boleh mundur", constants.StatusCompleted, constants.StatusMatched, false, ErrBackwardTransition},
		{"matched tidak boleh ke pending", constants.StatusMatched, constants.StatusPending, false, ErrBackwardTransition},
		{"status asal tidak dikenal", "archived", constants.StatusMatched, false, ErrUnknownStatus},
		{"status tujuan tidak dikenal", constants.StatusPending, "cancelled", false, ErrUnknownStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			noop, err := CheckTransition(tt.from, tt.to)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNoop, noop)
		})
	}
}

func TestIsOverdue(t *testing.T) {
	today := "2026-08-29"
	past := "2026-08-01"
	future := "2026-12-01"

	tests := []struct {
		name       string
		status     string
		targetDate *string
		want       bool
	}{
		{"pending lewat tanggal", constants.StatusPending, &past, true},
		{"matched lewat tanggal", constants.StatusMatched, &past, true},
		{"completed tidak pernah overdue", constants.StatusCompleted, &past, false},
		{"tanggal masih depan", constants.StatusPending, &future, false},
		{"tanggal hari ini belum overdue", constants.StatusMatched, &today, false},
		{"tanpa tanggal tidak overdue", constants.StatusPending, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOverdue(tt.status, tt.targetDate, today))
		})
	}

	t.Run("tanggal kosong dianggap sentinel", func(t *testing.T) {
		empty := ""
		assert.False(t, IsOverdue(constants.StatusPending, &empty, today))
	})
}
