package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoll_IsActiveBoundaries(t *testing.T) {
	end := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	p := &Poll{EndTime: end}

	assert.True(t, p.IsActive(end.Add(-time.Nanosecond)), "just before end is active")
	assert.False(t, p.IsActive(end), "end instant is closed")
	assert.False(t, p.IsActive(end.Add(time.Nanosecond)), "after end is closed")
}

func TestPoll_TotalVotesAndCounts(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	polls := []Poll{
		{EndTime: now.Add(time.Hour), Options: []Option{{VoteCount: 2}, {VoteCount: 3}}},
		{EndTime: now.Add(-time.Hour)},
		{EndTime: now},
	}

	assert.Equal(t, 5, polls[0].TotalVotes())

	active, closed := CountActive(polls, now)
	assert.Equal(t, 1, active)
	assert.Equal(t, 2, closed)
}

func TestPoll_DecodesAPIShape(t *testing.T) {
	raw := `{
		"_id": "p1",
		"title": "Next Semester Electives",
		"visibility": "Student",
		"startTime": "2025-02-01T09:00:00.000Z",
		"endTime": "2025-02-08T09:00:00.000Z",
		"anonymous": true,
		"allowLiveResults": false,
		"options": [{"optionText": "AI", "voteCount": 4}, {"optionText": "Networks", "voteCount": 1}],
		"createdBy": {"_id": "u9", "name": "Dr. Rao"}
	}`

	var p Poll
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, VisibilityStudent, p.Visibility)
	assert.Equal(t, time.Date(2025, 2, 8, 9, 0, 0, 0, time.UTC), p.EndTime.UTC())
	assert.True(t, p.Anonymous)
	assert.Len(t, p.Options, 2)
	assert.Equal(t, Ref{ID: "u9", Name: "Dr. Rao"}, p.CreatedBy)
}

func TestRef_StringOrObject(t *testing.T) {
	var a, b, c Ref
	require.NoError(t, json.Unmarshal([]byte(`"p1"`), &a))
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"p2","title":"Canteen menu"}`), &b))
	require.NoError(t, json.Unmarshal([]byte(`null`), &c))

	assert.Equal(t, Ref{ID: "p1"}, a)
	assert.Equal(t, Ref{ID: "p2", Title: "Canteen menu"}, b)
	assert.Equal(t, Ref{}, c)

	out, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `"p2"`, string(out))
}
