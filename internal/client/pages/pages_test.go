package pages

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/RitishHUB/polling-frountend/internal/client/client/clienttest"
	"github.com/RitishHUB/polling-frountend/internal/client/models"
	"github.com/RitishHUB/polling-frountend/internal/client/repositories/storage"
	"github.com/RitishHUB/polling-frountend/internal/client/services"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeUI struct {
	mu       sync.Mutex
	alerts   []string
	notes    []string
	confirms []string
	answer   bool
}

func (u *fakeUI) Alert(msg string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.alerts = append(u.alerts, msg)
}

func (u *fakeUI) Notify(msg string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.notes = append(u.notes, msg)
}

func (u *fakeUI) Confirm(msg string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.confirms = append(u.confirms, msg)
	return u.answer
}

func (u *fakeUI) Alerts() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.alerts...)
}

func (u *fakeUI) Notes() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.notes...)
}

type harness struct {
	fake   *clienttest.Fake
	auth   services.AuthService
	ui     *fakeUI
	router *Router
	deps   Deps
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	fc := clienttest.New()
	auth := services.NewAuthService(fc, storage.NewMemoryRepository(), nil)
	ui := &fakeUI{answer: true}
	router := NewRouter()
	return &harness{
		fake:   fc,
		auth:   auth,
		ui:     ui,
		router: router,
		deps: Deps{
			Auth:    auth,
			Service: services.NewPollService(fc, auth, nil),
			UI:      ui,
			Nav:     router,
			Now:     func() time.Time { return testNow },
		},
	}
}

// loginAs puts a session of role r in the store and resets the call counts
// the login itself produced.
func (h *harness) loginAs(t *testing.T, r models.Role) {
	t.Helper()
	h.loginUser(t, "me", r)
}

func (h *harness) loginUser(t *testing.T, id string, r models.Role) {
	t.Helper()
	email := id + "@campus.edu"
	h.fake.Session = &models.Session{ID: id, Name: id, Email: email, Role: r, Token: "tok-" + id}
	_, err := h.auth.Login(context.Background(), email, "pw")
	require.NoError(t, err)
	h.fake.ResetCalls()
}

func openPoll(id string, options ...string) models.Poll {
	p := models.Poll{
		ID:               id,
		Title:            "Poll " + id,
		StartTime:        testNow.Add(-time.Hour),
		EndTime:          testNow.Add(time.Hour),
		AllowLiveResults: true,
	}
	for _, o := range options {
		p.Options = append(p.Options, models.Option{OptionText: o})
	}
	return p
}

func closedPoll(id string, options ...string) models.Poll {
	p := openPoll(id, options...)
	p.EndTime = testNow.Add(-time.Minute)
	return p
}
