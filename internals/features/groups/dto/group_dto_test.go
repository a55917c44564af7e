package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gurubank_backend/internals/features/groups/model"
)

func TestToGroupResponseMembersKosong(t *testing.T) {
	m := model.GroupModel{ID: 1, Name: "Club A", Type: "CLUB"}

	resp := ToGroupResponse(&m)

	assert.NotNil(t, resp.Members, "members nil harus jadi slice kosong di JSON")
	assert.Empty(t, resp.Members)
}

func TestCreateGroupRequestToModel(t *testing.T) {
	req := CreateGroupRequest{
		Name:    "  Koperasi B ",
		Type:    "COOP",
		Members: []string{" Ana ", "Budi"},
	}
	req.Normalize()

	m := req.ToModel()
	assert.Equal(t, "Koperasi B", m.Name)
	assert.Equal(t, []string{"Ana", "Budi"}, []string(m.Members))
}
