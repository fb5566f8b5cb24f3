package pages

import (
	"context"
	"errors"
	"sync"

	"github.com/RitishHUB/polling-frountend/internal/client/models"
	"github.com/RitishHUB/polling-frountend/internal/common"
)

const (
	staffLoadFailed  = "Failed to fetch polls"
	createPollFailed = "Failed to create poll"
)

// pollForm is the poll authoring modal shared by the staff page.
type pollForm struct {
	open  bool
	draft *models.PollDraft
}

// StaffPage lists polls and lets Staff (and Admins) author new ones.
type StaffPage struct {
	shell
	Results *ResultsViewer

	mu     sync.Mutex
	polls  []models.Poll
	banner string
	form   pollForm
}

func NewStaffPage(d Deps) *StaffPage {
	p := &StaffPage{form: pollForm{draft: models.NewPollDraft()}}
	p.init(d, RouteStaff, StaffGuard, p.clear)
	p.Results = &ResultsViewer{polls: p.Service, ui: p.UI, failMsg: resultsFailedStaff}
	return p
}

func (p *StaffPage) clear() {
	p.Results.Close()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.polls = nil
	p.banner = ""
	p.form = pollForm{draft: models.NewPollDraft()}
}

func (p *StaffPage) Mount(ctx context.Context) error {
	if err := p.authorize(ctx); err != nil {
		return err
	}
	return p.Refresh(ctx)
}

// Refresh reloads the poll list, keeping the previous one on failure.
func (p *StaffPage) Refresh(ctx context.Context) error {
	polls, err := p.Service.LoadPolls(ctx)
	if err != nil {
		if !p.sessionRejected(ctx, err) {
			p.Log.Error(ctx, "poll load failed", "err", err)
			p.mu.Lock()
			p.banner = staffLoadFailed
			p.mu.Unlock()
		}
		return &common.FetchError{Message: staffLoadFailed, Err: err}
	}

	p.mu.Lock()
	p.polls = polls
	p.banner = ""
	p.mu.Unlock()
	return nil
}

func (p *StaffPage) Banner() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.banner
}

func (p *StaffPage) Polls() []models.Poll {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Poll(nil), p.polls...)
}

// Counts splits the list into active and closed polls.
func (p *StaffPage) Counts() (active, closed int) {
	now := p.Now()
	p.mu.Lock()
	defer p.mu.Unlock()
	return models.CountActive(p.polls, now)
}

// OpenForm shows the authoring form with whatever the draft holds.
func (p *StaffPage) OpenForm() *models.PollDraft {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form.open = true
	return p.form.draft
}

func (p *StaffPage) CloseForm() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form.open = false
}

func (p *StaffPage) FormOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form.open
}

// Draft is the form's working copy; edits through it stick.
func (p *StaffPage) Draft() *models.PollDraft {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form.draft
}

// RemoveOption drops option i from the draft, alerting when the draft is
// already at the two-option floor.
func (p *StaffPage) RemoveOption(i int) error {
	p.mu.Lock()
	err := p.form.draft.RemoveOption(i)
	p.mu.Unlock()

	var ve *models.ValidationError
	if errors.As(err, &ve) {
		p.UI.Alert(ve.Message)
	}
	return err
}

// CreatePoll submits the draft. An invalid draft is alerted without any
// request. On success the form closes, resets and the list reloads.
func (p *StaffPage) CreatePoll(ctx context.Context) (*models.Poll, error) {
	draft := p.Draft()

	poll, err := p.Service.CreatePoll(ctx, draft)
	if err != nil {
		var ve *models.ValidationError
		if errors.As(err, &ve) {
			p.UI.Alert(ve.Message)
			return nil, err
		}
		return nil, p.actionFailed(ctx, err, createPollFailed)
	}

	p.mu.Lock()
	p.form.open = false
	p.form.draft.Reset()
	p.mu.Unlock()

	_ = p.Refresh(ctx)
	return poll, nil
}

func (p *StaffPage) ViewResults(ctx context.Context, pollID string) (*models.PollResults, error) {
	return p.Results.Open(ctx, pollID)
}

func (p *StaffPage) Logout(ctx context.Context) {
	p.logout(ctx)
}
