package pages

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/RitishHUB/polling-frountend/internal/client/models"
	"github.com/RitishHUB/polling-frountend/internal/client/services"
	"github.com/RitishHUB/polling-frountend/internal/common"
)

const (
	studentLoadFailed = "Failed to load data."
	voteFailed        = "Error casting vote"
	profileSaveFailed = "Failed to save profile. Try again."
	badgeNotification = "Congratulations! You earned a new badge: %s"

	noIndex = -1
)

var ErrUnknownPoll = errors.New("unknown poll")

// PollView is one poll row as the student dashboard renders it.
type PollView struct {
	Poll   models.Poll
	Active bool

	Voted      bool
	VotedIndex int

	Pending      bool
	PendingIndex int

	// ShowCounts: tallies are visible once the student has voted and the
	// poll allows live results.
	ShowCounts bool
}

// CanVote reports whether the vote controls are enabled.
func (v PollView) CanVote() bool {
	return v.Active && !v.Voted && !v.Pending
}

// StudentStats are the dashboard counters.
type StudentStats struct {
	Polls  int
	Voted  int
	Badges int
}

// StudentPage is the student dashboard: polls, voting, badges and the
// profile form.
type StudentPage struct {
	shell

	// sleep paces vote submission; tests replace it.
	sleep func(time.Duration)

	mu      sync.Mutex
	data    services.StudentData
	loaded  bool
	banner  string
	pending map[string]int
	editing bool
}

func NewStudentPage(d Deps) *StudentPage {
	p := &StudentPage{sleep: time.Sleep, pending: make(map[string]int)}
	p.init(d, RouteStudent, StudentGuard, p.clear)
	return p
}

func (p *StudentPage) clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data = services.StudentData{}
	p.loaded = false
	p.banner = ""
	p.pending = make(map[string]int)
	p.editing = false
}

// Mount checks the role and loads the dashboard. A rejected role returns an
// error matching common.ErrAuthorization after redirecting, with nothing
// fetched.
func (p *StudentPage) Mount(ctx context.Context) error {
	if err := p.authorize(ctx); err != nil {
		return err
	}
	return p.Refresh(ctx)
}

// Refresh reloads polls and vote history together. On failure the previous
// data is kept; the banner is only raised when nothing has loaded yet.
func (p *StudentPage) Refresh(ctx context.Context) error {
	data, err := p.Service.LoadStudent(ctx)
	if err != nil {
		if p.sessionRejected(ctx, err) {
			return &common.FetchError{Message: studentLoadFailed, Err: err}
		}
		p.Log.Error(ctx, "dashboard load failed", "err", err)
		p.mu.Lock()
		if len(p.data.Polls) == 0 {
			p.banner = studentLoadFailed
		}
		p.mu.Unlock()
		return &common.FetchError{Message: studentLoadFailed, Err: err}
	}

	p.mu.Lock()
	p.data = *data
	p.loaded = true
	p.banner = ""
	p.mu.Unlock()
	p.Log.Debug(ctx, "dashboard loaded", "polls", len(data.Polls), "votes", len(data.Dashboard.Votes))
	return nil
}

// Banner is the load-failure message, or "".
func (p *StudentPage) Banner() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.banner
}

// Loaded reports whether a load has ever succeeded.
func (p *StudentPage) Loaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded
}

// Polls returns the rows in server order.
func (p *StudentPage) Polls() []PollView {
	now := p.Now()

	p.mu.Lock()
	defer p.mu.Unlock()

	views := make([]PollView, 0, len(p.data.Polls))
	for _, poll := range p.data.Polls {
		views = append(views, p.viewLocked(poll, now))
	}
	return views
}

// Poll returns the row for id.
func (p *StudentPage) Poll(id string) (PollView, bool) {
	now := p.Now()

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, poll := range p.data.Polls {
		if poll.ID == id {
			return p.viewLocked(poll, now), true
		}
	}
	return PollView{}, false
}

func (p *StudentPage) viewLocked(poll models.Poll, now time.Time) PollView {
	v := PollView{
		Poll:         poll,
		Active:       poll.IsActive(now),
		VotedIndex:   noIndex,
		PendingIndex: noIndex,
	}
	if rec := p.data.Dashboard.VoteFor(poll.ID); rec != nil {
		v.Voted, v.VotedIndex = true, rec.OptionIndex
	}
	if idx, ok := p.pending[poll.ID]; ok {
		v.Pending, v.PendingIndex = true, idx
	}
	v.ShowCounts = v.Voted && poll.AllowLiveResults
	return v
}

func (p *StudentPage) Badges() []models.Badge {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Badge(nil), p.data.Dashboard.Badges...)
}

func (p *StudentPage) Stats() StudentStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return StudentStats{
		Polls:  len(p.data.Polls),
		Voted:  len(p.data.Dashboard.Votes),
		Badges: len(p.data.Dashboard.Badges),
	}
}

// Vote submits a choice. It reports false without any request when the
// student already voted on the poll, a vote for it is in flight, or the
// poll is closed. Otherwise the poll stays locked while the vote is paced,
// sent and the dashboard reloaded; the lock is released however that ends.
//
// Vote may be called from several goroutines; only one submission per poll
// gets through.
func (p *StudentPage) Vote(ctx context.Context, pollID string, optionIndex int) (bool, error) {
	now := p.Now()

	p.mu.Lock()
	var poll *models.Poll
	for i := range p.data.Polls {
		if p.data.Polls[i].ID == pollID {
			poll = &p.data.Polls[i]
			break
		}
	}
	switch {
	case poll == nil:
		p.mu.Unlock()
		return false, fmt.Errorf("%w: %s", ErrUnknownPoll, pollID)
	case optionIndex < 0 || optionIndex >= len(poll.Options):
		p.mu.Unlock()
		return false, models.ErrOptionIndex
	}
	_, pending := p.pending[pollID]
	if pending || p.data.Dashboard.HasVoted(pollID) || !poll.IsActive(now) {
		p.mu.Unlock()
		return false, nil
	}
	p.pending[pollID] = optionIndex
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		delete(p.pending, pollID)
		p.mu.Unlock()
	}()

	p.sleep(p.VoteDelay)

	resp, err := p.Service.Vote(ctx, pollID, optionIndex)
	if err != nil {
		return false, p.actionFailed(ctx, err, voteFailed)
	}
	if resp.NewBadge != "" {
		p.UI.Notify(fmt.Sprintf(badgeNotification, resp.NewBadge))
	}

	// a failed reload only affects the banner; the vote itself went through
	_ = p.Refresh(ctx)
	return true, nil
}

// EditProfile opens the profile form seeded from the session.
func (p *StudentPage) EditProfile() models.ProfileUpdate {
	form := models.ProfileFrom(p.Auth.CurrentUser())
	p.mu.Lock()
	p.editing = true
	p.mu.Unlock()
	return form
}

// Editing reports whether the profile form is open.
func (p *StudentPage) Editing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.editing
}

// SaveProfile sends the form. Success updates the shared session in place;
// either way the form closes.
func (p *StudentPage) SaveProfile(ctx context.Context, form models.ProfileUpdate) (*models.Session, error) {
	defer func() {
		p.mu.Lock()
		p.editing = false
		p.mu.Unlock()
	}()

	s, err := p.Service.SaveProfile(ctx, form)
	if err != nil {
		return nil, p.actionFailed(ctx, err, profileSaveFailed)
	}
	p.Log.Info(ctx, "profile saved", "user", s.ID)
	return s, nil
}

func (p *StudentPage) Logout(ctx context.Context) {
	p.logout(ctx)
}
