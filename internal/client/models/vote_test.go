package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentDashboard_HasVoted(t *testing.T) {
	raw := `{
		"votes": [
			{"pollId": {"_id": "p1", "title": "Fest theme"}, "optionIndex": 1, "createdAt": "2025-02-01T10:00:00Z"},
			{"pollId": "p2", "optionIndex": 0, "createdAt": "2025-02-02T10:00:00Z"}
		],
		"badges": [{"badgeName": "First Vote", "createdAt": "2025-02-01T10:00:00Z"}]
	}`

	var d StudentDashboard
	require.NoError(t, json.Unmarshal([]byte(raw), &d))

	assert.True(t, d.HasVoted("p1"))
	assert.True(t, d.HasVoted("p2"))
	assert.False(t, d.HasVoted("p3"))

	v := d.VoteFor("p1")
	require.NotNil(t, v)
	assert.Equal(t, 1, v.OptionIndex)
	assert.Equal(t, "Fest theme", v.PollID.Title)

	require.Len(t, d.Badges, 1)
	assert.Equal(t, "First Vote", d.Badges[0].BadgeName)
}
