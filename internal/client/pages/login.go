package pages

import (
	"context"
	"errors"
	"sync"

	"github.com/RitishHUB/polling-frountend/internal/client/models"
	"github.com/RitishHUB/polling-frountend/internal/client/services"
	"github.com/RitishHUB/polling-frountend/internal/common"
	"github.com/RitishHUB/polling-frountend/internal/logging"
)

const loginFailed = "Invalid email or password"

// LoginPage is the unguarded sign-in and sign-up form.
type LoginPage struct {
	auth services.AuthService
	nav  Navigator
	log  logging.Logger

	mu  sync.Mutex
	msg string
}

func NewLoginPage(d Deps) *LoginPage {
	d = d.withDefaults()
	return &LoginPage{auth: d.Auth, nav: d.Nav, log: d.Log.With("page", RouteLogin)}
}

// Login authenticates and sends the user to their role's dashboard. On
// failure the form shows the server's message.
func (p *LoginPage) Login(ctx context.Context, email, password string) (*models.Session, error) {
	p.setError("")

	s, err := p.auth.Login(ctx, email, password)
	if err != nil {
		p.setError(formError(err))
		return nil, err
	}
	p.nav.Navigate(RouteForRole(s.Role))
	return s, nil
}

func (p *LoginPage) Register(ctx context.Context, req models.RegisterRequest) (*models.Session, error) {
	p.setError("")

	s, err := p.auth.Register(ctx, req)
	if err != nil {
		p.setError(formError(err))
		return nil, err
	}
	p.nav.Navigate(RouteForRole(s.Role))
	return s, nil
}

// Error is the message shown above the form, or "".
func (p *LoginPage) Error() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.msg
}

func (p *LoginPage) setError(msg string) {
	p.mu.Lock()
	p.msg = msg
	p.mu.Unlock()
}

func formError(err error) string {
	var ae *common.AuthError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return loginFailed
}
