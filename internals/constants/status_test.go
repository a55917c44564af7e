package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusRank(t *testing.T) {
	assert.Equal(t, 0, StatusRank(StatusPending))
	assert.Equal(t, 1, StatusRank(StatusMatched))
	assert.Equal(t, 2, StatusRank(StatusCompleted))
	assert.Equal(t, -1, StatusRank("archived"))
}

func TestIsValidRequestStatus(t *testing.T) {
	for _, s := range RequestStatuses {
		assert.True(t, IsValidRequestStatus(s))
	}
	assert.False(t, IsValidRequestStatus(""))
	assert.False(t, IsValidRequestStatus("PENDING"), "vokabulari status huruf kecil")
}

func TestIsValidGroupType(t *testing.T) {
	assert.True(t, IsValidGroupType(GroupTypeClub))
	assert.True(t, IsValidGroupType(GroupTypeCoop))
	assert.False(t, IsValidGroupType("club"), "tipe group huruf besar")
}

func TestIsValidEducationType(t *testing.T) {
	for _, v := range EducationTypes {
		assert.True(t, IsValidEducationType(v))
	}
	assert.False(t, IsValidEducationType("JOB"))
}

func TestMinDateSentinelSelaluPalingKecil(t *testing.T) {
	// sort descending mengandalkan sentinel kalah dari tanggal valid mana pun
	assert.Less(t, MinDateSentinel, "0001-01-01")
	assert.Less(t, MinDateSentinel, "2026-08-29")
}
