package models

import "time"

// VoteRecord is one entry of a student's vote history.
type VoteRecord struct {
	PollID      Ref       `json:"pollId"`
	OptionIndex int       `json:"optionIndex"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Badge struct {
	BadgeName string    `json:"badgeName"`
	CreatedAt time.Time `json:"createdAt"`
}

// StudentDashboard is the student's vote history and earned badges.
type StudentDashboard struct {
	Votes  []VoteRecord `json:"votes"`
	Badges []Badge      `json:"badges"`
}

// VoteFor returns the recorded vote for pollID, or nil.
func (d *StudentDashboard) VoteFor(pollID string) *VoteRecord {
	for i := range d.Votes {
		if d.Votes[i].PollID.ID == pollID {
			return &d.Votes[i]
		}
	}
	return nil
}

// HasVoted reports whether the history contains a vote for pollID.
func (d *StudentDashboard) HasVoted(pollID string) bool {
	return d.VoteFor(pollID) != nil
}

type VoteRequest struct {
	OptionIndex int `json:"optionIndex"`
}

// VoteResponse carries the badge awarded as a side effect of voting, if any.
type VoteResponse struct {
	Message  string `json:"message,omitempty"`
	NewBadge string `json:"newBadge,omitempty"`
}
