package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/RitishHUB/polling-frountend/internal/client/client"
	"github.com/RitishHUB/polling-frountend/internal/client/models"
	"github.com/RitishHUB/polling-frountend/internal/client/repositories/storage"
	"github.com/RitishHUB/polling-frountend/internal/common"
	"github.com/RitishHUB/polling-frountend/internal/logging"
)

// AuthService is the session store.
//
// Lifecycle:
//   - Init seeds the session from durable storage, once.
//   - Login and Register replace the session wholesale and persist it.
//   - UpdateProfile merges the server's answer into the session in place.
//   - Logout and Invalidate clear memory and storage.
//
// Every change is pushed to subscribers.
type AuthService interface {
	Init(ctx context.Context) error
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.Session, error)
	Logout(ctx context.Context)
	Invalidate(ctx context.Context)
	CurrentUser() *models.Session
	UpdateProfile(ctx context.Context, raw json.RawMessage) (*models.Session, error)
	Subscribe(fn func(*models.Session)) (unsubscribe func())
}

type authService struct {
	client client.Client
	repo   storage.Repository
	log    logging.Logger
	now    func() time.Time

	mu      sync.RWMutex
	current *models.Session
	subs    map[int]func(*models.Session)
	nextSub int
}

// NewAuthService constructs the session store. It starts empty; call Init.
func NewAuthService(c client.Client, repo storage.Repository, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop{}
	}
	return &authService{
		client: c,
		repo:   repo,
		log:    log,
		now:    time.Now,
		subs:   make(map[int]func(*models.Session)),
	}
}

// Init loads the persisted session. A malformed entry, or one whose token is
// a JWT that has already expired, is removed and the store stays empty.
// There is no re-sync after this call.
func (a *authService) Init(ctx context.Context) error {
	raw, err := a.repo.Get(ctx, common.SessionStorageKey)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if raw == nil {
		return nil
	}

	var s models.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		a.log.Warn(ctx, "discarding unreadable stored session", "err", err)
		return a.repo.Delete(ctx, common.SessionStorageKey)
	}
	if tokenExpired(s.Token, a.now()) {
		a.log.Info(ctx, "stored session expired", "user", s.Email)
		return a.repo.Delete(ctx, common.SessionStorageKey)
	}

	a.set(&s)
	a.log.Debug(ctx, "session restored", "user", s.Email, "role", s.Role)
	return nil
}

// Login normalizes the credentials the way the sign-in form does (email
// trimmed and lower-cased, password trimmed) and authenticates.
func (a *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	creds := models.Credentials{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: strings.TrimSpace(password),
	}

	s, err := a.client.Login(ctx, creds)
	if err != nil {
		a.log.Info(ctx, "login rejected", "email", creds.Email, "err", err)
		return nil, &common.AuthError{Message: client.ServerMessage(err, "Login failed"), Err: err}
	}
	if err := a.replace(ctx, s); err != nil {
		return nil, err
	}
	a.log.Info(ctx, "logged in", "user", s.Email, "role", s.Role)
	return a.CurrentUser(), nil
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.Session, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	s, err := a.client.Register(ctx, req)
	if err != nil {
		a.log.Info(ctx, "registration rejected", "email", req.Email, "err", err)
		return nil, &common.AuthError{Message: client.ServerMessage(err, "Registration failed"), Err: err}
	}
	if err := a.replace(ctx, s); err != nil {
		return nil, err
	}
	a.log.Info(ctx, "registered", "user", s.Email, "role", s.Role)
	return a.CurrentUser(), nil
}

// Logout never fails: a storage error is logged and the in-memory session
// is cleared regardless.
func (a *authService) Logout(ctx context.Context) {
	if err := a.repo.Delete(ctx, common.SessionStorageKey); err != nil {
		a.log.Error(ctx, "failed to remove stored session", "err", err)
	}
	a.set(nil)
}

// Invalidate drops a session the server has rejected.
func (a *authService) Invalidate(ctx context.Context) {
	a.log.Warn(ctx, "session rejected by server")
	a.Logout(ctx)
}

// CurrentUser returns a copy of the session, or nil.
func (a *authService) CurrentUser() *models.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.current == nil {
		return nil
	}
	s := *a.current
	return &s
}

// UpdateProfile merges raw (the profile endpoint's answer) into the current
// session, persists the result and notifies subscribers.
func (a *authService) UpdateProfile(ctx context.Context, raw json.RawMessage) (*models.Session, error) {
	cur := a.CurrentUser()
	if cur == nil {
		return nil, common.ErrNoSession
	}
	if len(raw) == 0 {
		return cur, nil
	}

	merged, err := cur.Merge(raw)
	if err != nil {
		return nil, err
	}
	if err := a.replace(ctx, &merged); err != nil {
		return nil, err
	}
	return a.CurrentUser(), nil
}

func (a *authService) Subscribe(fn func(*models.Session)) func() {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.nextSub
	a.nextSub++
	a.subs[id] = fn
	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.subs, id)
	}
}

// replace persists s and then makes it the current session.
func (a *authService) replace(ctx context.Context, s *models.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := a.repo.Set(ctx, common.SessionStorageKey, data); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	a.set(s)
	return nil
}

func (a *authService) set(s *models.Session) {
	a.mu.Lock()
	if s != nil {
		cp := *s
		s = &cp
	}
	a.current = s
	subs := make([]func(*models.Session), 0, len(a.subs))
	for _, fn := range a.subs {
		subs = append(subs, fn)
	}
	a.mu.Unlock()

	for _, fn := range subs {
		if s == nil {
			fn(nil)
			continue
		}
		cp := *s
		fn(&cp)
	}
}

// tokenExpired reports whether token is a JWT whose exp claim is at or
// before now. Opaque tokens and tokens without exp never count as expired;
// the signature is not checked, the server does that.
func tokenExpired(token string, now time.Time) bool {
	if token == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !now.Before(exp.Time)
}
