// Package clienttest provides an in-memory client.Client for tests of the
// layers above the HTTP adapter.
package clienttest

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/RitishHUB/polling-frountend/internal/client/models"
)

// Fake answers from its fields and counts calls per method. Set a *Err field
// to make that method fail. Hooks, when set, run before the canned answer
// and may block to simulate an in-flight request.
type Fake struct {
	mu    sync.Mutex
	calls map[string]int

	Session     *models.Session
	LoginErr    error
	RegisterErr error

	Polls        []models.Poll
	PollsErr     error
	Created      *models.Poll
	CreateErr    error
	DeletePollEr error

	VoteResp *models.VoteResponse
	VoteErr  error
	VoteHook func(ctx context.Context, pollID string, optionIndex int)

	Results    *models.PollResults
	ResultsErr error

	Users        []models.User
	UsersErr     error
	DeleteUserEr error
	Stats        models.AdminStats
	StatsErr     error

	Dashboard    models.StudentDashboard
	DashboardErr error

	ProfileResp json.RawMessage
	ProfileErr  error

	LastCreds    models.Credentials
	LastRegister models.RegisterRequest
	LastDraft    *models.PollDraft
	LastDeleted  string
	LastProfile  models.ProfileUpdate
	LastVote     struct {
		PollID      string
		OptionIndex int
	}
}

func New() *Fake {
	return &Fake{calls: make(map[string]int)}
}

// Calls returns how many times method was invoked.
func (f *Fake) Calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

// ResetCalls zeroes every call counter.
func (f *Fake) ResetCalls() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = make(map[string]int)
}

// Total returns the number of calls across all methods.
func (f *Fake) Total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *Fake) hit(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[method]++
}

func (f *Fake) Login(_ context.Context, creds models.Credentials) (*models.Session, error) {
	f.hit("Login")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastCreds = creds
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	s := *f.Session
	return &s, nil
}

func (f *Fake) Register(_ context.Context, req models.RegisterRequest) (*models.Session, error) {
	f.hit("Register")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastRegister = req
	if f.RegisterErr != nil {
		return nil, f.RegisterErr
	}
	s := *f.Session
	return &s, nil
}

func (f *Fake) ListPolls(context.Context) ([]models.Poll, error) {
	f.hit("ListPolls")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.PollsErr != nil {
		return nil, f.PollsErr
	}
	return append([]models.Poll(nil), f.Polls...), nil
}

func (f *Fake) CreatePoll(_ context.Context, draft *models.PollDraft) (*models.Poll, error) {
	f.hit("CreatePoll")
	f.mu.Lock()
	defer f.mu.Unlock()
	d := *draft
	d.Options = append([]string(nil), draft.Options...)
	f.LastDraft = &d
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	if f.Created != nil {
		return f.Created, nil
	}
	return &models.Poll{ID: "new", Title: draft.Title}, nil
}

func (f *Fake) DeletePoll(_ context.Context, id string) error {
	f.hit("DeletePoll")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastDeleted = id
	return f.DeletePollEr
}

func (f *Fake) Vote(ctx context.Context, pollID string, optionIndex int) (*models.VoteResponse, error) {
	f.hit("Vote")
	f.mu.Lock()
	hook := f.VoteHook
	f.LastVote.PollID, f.LastVote.OptionIndex = pollID, optionIndex
	f.mu.Unlock()

	if hook != nil {
		hook(ctx, pollID, optionIndex)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.VoteErr != nil {
		return nil, f.VoteErr
	}
	if f.VoteResp != nil {
		r := *f.VoteResp
		return &r, nil
	}
	return &models.VoteResponse{}, nil
}

func (f *Fake) PollResults(context.Context, string) (*models.PollResults, error) {
	f.hit("PollResults")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ResultsErr != nil {
		return nil, f.ResultsErr
	}
	return f.Results, nil
}

func (f *Fake) ListUsers(context.Context) ([]models.User, error) {
	f.hit("ListUsers")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.UsersErr != nil {
		return nil, f.UsersErr
	}
	return append([]models.User(nil), f.Users...), nil
}

func (f *Fake) DeleteUser(_ context.Context, id string) error {
	f.hit("DeleteUser")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastDeleted = id
	return f.DeleteUserEr
}

func (f *Fake) AdminStats(context.Context) (*models.AdminStats, error) {
	f.hit("AdminStats")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.StatsErr != nil {
		return nil, f.StatsErr
	}
	st := f.Stats
	return &st, nil
}

func (f *Fake) StudentDashboard(context.Context) (*models.StudentDashboard, error) {
	f.hit("StudentDashboard")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DashboardErr != nil {
		return nil, f.DashboardErr
	}
	d := models.StudentDashboard{
		Votes:  append([]models.VoteRecord(nil), f.Dashboard.Votes...),
		Badges: append([]models.Badge(nil), f.Dashboard.Badges...),
	}
	return &d, nil
}

func (f *Fake) UpdateProfile(_ context.Context, update models.ProfileUpdate) (json.RawMessage, error) {
	f.hit("UpdateProfile")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastProfile = update
	if f.ProfileErr != nil {
		return nil, f.ProfileErr
	}
	return f.ProfileResp, nil
}

// Update runs fn with the fake locked, for changing canned answers while
// other goroutines may be calling it.
func (f *Fake) Update(fn func(f *Fake)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}
