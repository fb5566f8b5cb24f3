package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleStaff, RoleStudent} {
		assert.True(t, r.Valid(), r)
	}
	assert.False(t, Role("Guest").Valid())
	assert.False(t, Role("").Valid())
}

func TestSession_MergeOverwritesPresentFieldsOnly(t *testing.T) {
	s := Session{ID: "u1", Name: "Asha", Email: "asha@campus.edu", Role: RoleStudent, Token: "t", RollNumber: "R-1"}

	merged, err := s.Merge([]byte(`{"department":"CSE","profilePic":"https://img/a.png"}`))
	require.NoError(t, err)

	assert.Equal(t, "R-1", merged.RollNumber)
	assert.Equal(t, "CSE", merged.Department)
	assert.Equal(t, "https://img/a.png", merged.ProfilePic)
	assert.Equal(t, "t", merged.Token)
	assert.Empty(t, s.Department, "receiver is not modified")
}

func TestSession_MergeBadJSON(t *testing.T) {
	s := Session{ID: "u1"}
	got, err := s.Merge([]byte(`[1,2]`))
	require.Error(t, err)
	assert.Equal(t, s, got)
}

func TestSession_JSONRoundTripUsesAPINames(t *testing.T) {
	s := Session{ID: "u1", Name: "Asha", Email: "a@x.edu", Role: RoleStaff, Token: "tok"}
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"u1","name":"Asha","email":"a@x.edu","role":"Staff","token":"tok"}`, string(b))
}

func TestProfileFrom(t *testing.T) {
	assert.Equal(t, ProfileUpdate{}, ProfileFrom(nil))
	assert.Equal(t,
		ProfileUpdate{RollNumber: "R-7", Department: "ECE"},
		ProfileFrom(&Session{RollNumber: "R-7", Department: "ECE"}))
}
