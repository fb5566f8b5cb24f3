package pages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RitishHUB/polling-frountend/internal/client/client"
	"github.com/RitishHUB/polling-frountend/internal/client/models"
	"github.com/RitishHUB/polling-frountend/internal/common"
)

type mountable interface {
	Mount(ctx context.Context) error
	State() State
}

func TestMount_WrongRoleRedirectsWithoutFetching(t *testing.T) {
	pages := map[string]func(Deps) mountable{
		RouteAdmin:   func(d Deps) mountable { return NewAdminPage(d) },
		RouteStaff:   func(d Deps) mountable { return NewStaffPage(d) },
		RouteStudent: func(d Deps) mountable { return NewStudentPage(d) },
	}
	denied := map[string][]models.Role{
		RouteAdmin:   {models.RoleStaff, models.RoleStudent},
		RouteStaff:   {models.RoleStudent},
		RouteStudent: {models.RoleAdmin, models.RoleStaff},
	}

	for route, roles := range denied {
		for _, role := range roles {
			t.Run(route+"/"+string(role), func(t *testing.T) {
				h := newHarness(t)
				h.loginAs(t, role)
				h.router.Navigate(route)

				page := pages[route](h.deps)
				err := page.Mount(context.Background())

				require.ErrorIs(t, err, common.ErrAuthorization)
				assert.Equal(t, StateRedirecting, page.State())
				assert.Equal(t, RouteLogin, h.router.Current())
				assert.Zero(t, h.fake.Total(), "no data fetched")
				assert.Empty(t, h.ui.Alerts(), "redirect is silent")
			})
		}
	}
}

func TestMount_NoSessionRedirects(t *testing.T) {
	h := newHarness(t)
	page := NewStudentPage(h.deps)

	err := page.Mount(context.Background())
	require.ErrorIs(t, err, common.ErrAuthorization)
	assert.ErrorIs(t, err, common.ErrNoSession)
	assert.Equal(t, StateRedirecting, page.State())
	assert.Zero(t, h.fake.Total())
}

func TestMount_AdminMayUseStaffPage(t *testing.T) {
	h := newHarness(t)
	h.loginAs(t, models.RoleAdmin)
	h.fake.Polls = []models.Poll{openPoll("p1", "a", "b")}

	page := NewStaffPage(h.deps)
	require.NoError(t, page.Mount(context.Background()))
	assert.Equal(t, StateAuthorized, page.State())
	assert.Len(t, page.Polls(), 1)
}

func TestMount_RejectedSessionIsDropped(t *testing.T) {
	h := newHarness(t)
	h.loginAs(t, models.RoleStaff)
	h.router.Navigate(RouteStaff)
	h.fake.PollsErr = &client.APIError{StatusCode: 401, Message: "Not authorized, token failed"}

	page := NewStaffPage(h.deps)
	err := page.Mount(context.Background())

	require.ErrorIs(t, err, common.ErrFetch)
	assert.Nil(t, h.auth.CurrentUser())
	assert.Equal(t, RouteLogin, h.router.Current())
	assert.Equal(t, StateRedirecting, page.State())
	assert.Empty(t, page.Banner())
}

func TestGuard_Check(t *testing.T) {
	assert.ErrorIs(t, StaffGuard.Check(nil), common.ErrNoSession)
	assert.NoError(t, StaffGuard.Check(&models.Session{Role: models.RoleStaff}))
	assert.NoError(t, StaffGuard.Check(&models.Session{Role: models.RoleAdmin}))
	assert.ErrorIs(t, AdminGuard.Check(&models.Session{Role: models.RoleStaff}), common.ErrAuthorization)
	assert.ErrorIs(t, StudentGuard.Check(&models.Session{Role: "Janitor"}), common.ErrAuthorization)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "checking", StateChecking.String())
	assert.Equal(t, "authorized", StateAuthorized.String())
	assert.Equal(t, "redirecting", StateRedirecting.String())
	assert.Equal(t, "State(7)", State(7).String())
}
