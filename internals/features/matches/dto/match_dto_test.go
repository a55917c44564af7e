package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gurubank_backend/internals/features/matches/model"
)

func TestToMatchResponse(t *testing.T) {
	created := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)

	m := &model.MatchModel{
		ID:             7,
		RequestID:      3,
		GroupID:        2,
		AdminStatus:    "waiting_docs",
		DocAgreement:   true,
		DocPlan:        true,
		DocEtc:         "menunggu tanda tangan ketua",
		CreatedAt:      created,
	}

	resp := ToMatchResponse(m)

	assert.Equal(t, 7, resp.ID)
	assert.Equal(t, 3, resp.RequestID)
	assert.Equal(t, 2, resp.GroupID)
	assert.Equal(t, "waiting_docs", resp.AdminStatus)
	assert.True(t, resp.DocAgreement)
	assert.False(t, resp.DocEstimate)
	assert.True(t, resp.DocPlan)
	assert.False(t, resp.DocSexOffender)
	assert.Equal(t, "menunggu tanda tangan ketua", resp.DocEtc)
	assert.Equal(t, "2026-08-29T10:30:00Z", resp.CreatedAt)
}
