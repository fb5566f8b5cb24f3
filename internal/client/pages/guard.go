package pages

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/RitishHUB/polling-frountend/internal/client/client"
	"github.com/RitishHUB/polling-frountend/internal/client/models"
	"github.com/RitishHUB/polling-frountend/internal/client/services"
	"github.com/RitishHUB/polling-frountend/internal/common"
	"github.com/RitishHUB/polling-frountend/internal/logging"
)

// State is where a guarded page is in its mount.
type State int

const (
	StateChecking State = iota
	StateAuthorized
	StateRedirecting
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAuthorized:
		return "authorized"
	case StateRedirecting:
		return "redirecting"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Guard lists the roles allowed on a page.
type Guard struct {
	Roles []models.Role
}

var (
	AdminGuard   = Guard{Roles: []models.Role{models.RoleAdmin}}
	StaffGuard   = Guard{Roles: []models.Role{models.RoleStaff, models.RoleAdmin}}
	StudentGuard = Guard{Roles: []models.Role{models.RoleStudent}}
)

// Check returns ErrNoSession without a session and ErrAuthorization when the
// session's role is not allowed.
func (g Guard) Check(s *models.Session) error {
	if s == nil {
		return common.ErrNoSession
	}
	if !slices.Contains(g.Roles, s.Role) {
		return fmt.Errorf("%w: role %q", common.ErrAuthorization, s.Role)
	}
	return nil
}

// Deps are the collaborators shared by every page.
type Deps struct {
	Auth    services.AuthService
	Service services.PollService
	UI      UI
	Nav     Navigator
	Log     logging.Logger

	// Now defaults to time.Now.
	Now func() time.Time
	// VoteDelay is the pause before a vote is sent.
	VoteDelay time.Duration
}

func (d Deps) withDefaults() Deps {
	if d.Log == nil {
		d.Log = logging.Nop{}
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// shell is the guarded part every dashboard page shares. The role is
// checked once, at mount; the server re-checks every call regardless.
type shell struct {
	Deps
	route string
	guard Guard

	// reset clears the page's loaded data; owner is the session id it was
	// loaded for.
	reset func()

	stateMu sync.Mutex
	state   State
	owner   string
}

func (s *shell) init(d Deps, route string, g Guard, reset func()) {
	d = d.withDefaults()
	d.Log = d.Log.With("page", route)
	s.Deps, s.route, s.guard, s.reset = d, route, g, reset
}

// authorize runs the role check. On failure the page redirects to the login
// route and the returned error matches common.ErrAuthorization.
func (s *shell) authorize(ctx context.Context) error {
	s.setState(StateChecking)

	cur := s.Auth.CurrentUser()
	if err := s.guard.Check(cur); err != nil {
		s.forget()
		s.setState(StateRedirecting)
		s.Log.Debug(ctx, "redirecting", "reason", err)
		s.Nav.Navigate(RouteLogin)
		if errors.Is(err, common.ErrAuthorization) {
			return err
		}
		return fmt.Errorf("%w: %w", common.ErrAuthorization, err)
	}

	s.stateMu.Lock()
	changed := s.owner != cur.ID
	s.owner = cur.ID
	s.stateMu.Unlock()
	if changed {
		s.reset()
	}

	s.setState(StateAuthorized)
	return nil
}

// forget drops whatever the page loaded for the previous session.
func (s *shell) forget() {
	s.stateMu.Lock()
	s.owner = ""
	s.stateMu.Unlock()
	s.reset()
}

func (s *shell) State() State {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.state
}

func (s *shell) setState(st State) {
	s.stateMu.Lock()
	s.state = st
	s.stateMu.Unlock()
}

// sessionRejected handles a 401: the session and the page's data are
// dropped and the user is sent back to log in.
func (s *shell) sessionRejected(ctx context.Context, err error) bool {
	if !errors.Is(err, client.ErrUnauthorized) {
		return false
	}
	s.Auth.Invalidate(ctx)
	s.forget()
	s.setState(StateRedirecting)
	s.Nav.Navigate(RouteLogin)
	return true
}

// actionFailed alerts the server's message, or fallback, and returns the
// matching ActionError. A 401 also ends the session.
func (s *shell) actionFailed(ctx context.Context, err error, fallback string) error {
	msg := client.ServerMessage(err, fallback)
	s.Log.Warn(ctx, "action failed", "msg", msg, "err", err)
	s.UI.Alert(msg)
	s.sessionRejected(ctx, err)
	return &common.ActionError{Message: msg, Err: err}
}

func (s *shell) logout(ctx context.Context) {
	s.Auth.Logout(ctx)
	s.forget()
	s.Nav.Navigate(RouteLogin)
}
