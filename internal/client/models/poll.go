package models

import "time"

// Visibility restricts which roles see and vote on a poll.
type Visibility string

const (
	VisibilityStudent Visibility = "Student"
	VisibilityStaff   Visibility = "Staff"
	VisibilityBoth    Visibility = "Both"
)

type Option struct {
	OptionText string `json:"optionText"`
	VoteCount  int    `json:"voteCount"`
}

// Poll is the client's read-only snapshot of a server poll.
type Poll struct {
	ID               string     `json:"_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Visibility       Visibility `json:"visibility"`
	StartTime        time.Time  `json:"startTime"`
	EndTime          time.Time  `json:"endTime"`
	Anonymous        bool       `json:"anonymous"`
	AllowLiveResults bool       `json:"allowLiveResults"`
	Options          []Option   `json:"options"`
	CreatedBy        Ref        `json:"createdBy"`
}

// IsActive reports whether the poll is still open at now: strictly before
// EndTime. At EndTime itself the poll is closed.
func (p *Poll) IsActive(now time.Time) bool {
	return now.Before(p.EndTime)
}

// TotalVotes sums the option tallies.
func (p *Poll) TotalVotes() int {
	total := 0
	for _, o := range p.Options {
		total += o.VoteCount
	}
	return total
}

// CountActive splits polls into active and closed counts at now.
func CountActive(polls []Poll, now time.Time) (active, closed int) {
	for i := range polls {
		if polls[i].IsActive(now) {
			active++
		} else {
			closed++
		}
	}
	return active, closed
}

type Voter struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

type OptionResult struct {
	OptionText string  `json:"optionText"`
	VoteCount  int     `json:"voteCount"`
	Voters     []Voter `json:"voters,omitempty"`
}

// PollResults is the detailed breakdown. Voters are only populated for
// non-anonymous polls viewed by Admin or Staff.
type PollResults struct {
	PollTitle  string         `json:"pollTitle"`
	TotalVotes int            `json:"totalVotes"`
	Anonymous  bool           `json:"anonymous"`
	Results    []OptionResult `json:"results"`
}
