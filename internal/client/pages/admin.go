package pages

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/RitishHUB/polling-frountend/internal/client/models"
	"github.com/RitishHUB/polling-frountend/internal/common"
)

const (
	adminLoadFailed   = "Failed to load admin data"
	deletePollFailed  = "Error deleting poll"
	deleteUserFailed  = "Error deleting user"
	confirmDeletePoll = "Are you sure you want to permanently delete this poll? All related votes will be lost."
	confirmDeleteUser = "Are you sure you want to permanently delete this user profile?"
)

// ErrProtectedUser: admin accounts cannot be deleted from the dashboard.
var ErrProtectedUser = errors.New("admin accounts cannot be deleted")

// AdminPage is the control panel: every user, every poll and the totals.
type AdminPage struct {
	shell
	Results *ResultsViewer

	mu     sync.Mutex
	users  []models.User
	polls  []models.Poll
	stats  models.AdminStats
	banner string
}

func NewAdminPage(d Deps) *AdminPage {
	p := &AdminPage{}
	p.init(d, RouteAdmin, AdminGuard, p.clear)
	p.Results = &ResultsViewer{polls: p.Service, ui: p.UI, failMsg: resultsFailedAdmin}
	return p
}

func (p *AdminPage) clear() {
	p.Results.Close()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.users, p.polls = nil, nil
	p.stats = models.AdminStats{}
	p.banner = ""
}

func (p *AdminPage) Mount(ctx context.Context) error {
	if err := p.authorize(ctx); err != nil {
		return err
	}
	return p.Refresh(ctx)
}

// Refresh loads users, polls and stats together; all three must succeed.
func (p *AdminPage) Refresh(ctx context.Context) error {
	data, err := p.Service.LoadAdmin(ctx)
	if err != nil {
		if !p.sessionRejected(ctx, err) {
			p.Log.Error(ctx, "admin load failed", "err", err)
			p.mu.Lock()
			p.banner = adminLoadFailed
			p.mu.Unlock()
		}
		return &common.FetchError{Message: adminLoadFailed, Err: err}
	}

	p.mu.Lock()
	p.users, p.polls, p.stats = data.Users, data.Polls, data.Stats
	p.banner = ""
	p.mu.Unlock()
	return nil
}

func (p *AdminPage) Banner() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.banner
}

func (p *AdminPage) Users() []models.User {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.User(nil), p.users...)
}

func (p *AdminPage) Polls() []models.Poll {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Poll(nil), p.polls...)
}

func (p *AdminPage) Stats() models.AdminStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

// ActivePolls counts polls still open now.
func (p *AdminPage) ActivePolls() int {
	now := p.Now()
	p.mu.Lock()
	defer p.mu.Unlock()
	active, _ := models.CountActive(p.polls, now)
	return active
}

// DeletePoll asks for confirmation, then deletes and reloads. It reports
// false when the user declined.
func (p *AdminPage) DeletePoll(ctx context.Context, id string) (bool, error) {
	if !p.UI.Confirm(confirmDeletePoll) {
		return false, nil
	}
	if err := p.Service.DeletePoll(ctx, id); err != nil {
		return false, p.actionFailed(ctx, err, deletePollFailed)
	}
	_ = p.Refresh(ctx)
	return true, nil
}

// DeleteUser is DeletePoll for accounts. Admin accounts are refused before
// asking.
func (p *AdminPage) DeleteUser(ctx context.Context, id string) (bool, error) {
	if u, ok := p.user(id); ok && u.Role == models.RoleAdmin {
		return false, fmt.Errorf("%w: %s", ErrProtectedUser, u.Email)
	}
	if !p.UI.Confirm(confirmDeleteUser) {
		return false, nil
	}
	if err := p.Service.DeleteUser(ctx, id); err != nil {
		return false, p.actionFailed(ctx, err, deleteUserFailed)
	}
	_ = p.Refresh(ctx)
	return true, nil
}

func (p *AdminPage) user(id string) (models.User, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, u := range p.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (p *AdminPage) ViewResults(ctx context.Context, pollID string) (*models.PollResults, error) {
	return p.Results.Open(ctx, pollID)
}

func (p *AdminPage) Logout(ctx context.Context) {
	p.logout(ctx)
}
