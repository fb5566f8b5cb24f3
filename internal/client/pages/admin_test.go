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

func mountedAdmin(t *testing.T, h *harness) *AdminPage {
	t.Helper()
	h.fake.Users = []models.User{
		{ID: "root", Email: "root@campus.edu", Role: models.RoleAdmin},
		{ID: "stu", Email: "stu@campus.edu", Role: models.RoleStudent},
	}
	h.fake.Polls = []models.Poll{openPoll("p1", "a", "b"), closedPoll("p2", "a", "b")}
	h.fake.Stats = models.AdminStats{TotalUsers: 2, TotalPolls: 2, TotalVotes: 5}

	page := NewAdminPage(h.deps)
	require.NoError(t, page.Mount(context.Background()))
	return page
}

func TestAdminPage_Mount(t *testing.T) {
	h := newHarness(t)
	h.loginAs(t, models.RoleAdmin)
	page := mountedAdmin(t, h)

	assert.Len(t, page.Users(), 2)
	assert.Len(t, page.Polls(), 2)
	assert.Equal(t, 5, page.Stats().TotalVotes)
	assert.Equal(t, 1, page.ActivePolls())
	assert.Equal(t, 1, h.fake.Calls("ListUsers"))
	assert.Equal(t, 1, h.fake.Calls("ListPolls"))
	assert.Equal(t, 1, h.fake.Calls("AdminStats"))
}

func TestAdminPage_LoadFailureKeepsLists(t *testing.T) {
	h := newHarness(t)
	h.loginAs(t, models.RoleAdmin)
	page := mountedAdmin(t, h)

	h.fake.StatsErr = client.ErrUnavailable
	err := page.Refresh(context.Background())
	require.ErrorIs(t, err, common.ErrFetch)
	assert.Equal(t, "Failed to load admin data", page.Banner())
	assert.Len(t, page.Users(), 2)
}

func TestAdminPage_DeletePoll(t *testing.T) {
	h := newHarness(t)
	h.loginAs(t, models.RoleAdmin)
	page := mountedAdmin(t, h)
	h.fake.ResetCalls()

	h.ui.answer = false
	ok, err := page.DeletePoll(context.Background(), "p1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, h.fake.Total(), "declined: nothing sent")

	h.ui.answer = true
	ok, err = page.DeletePoll(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, h.fake.Calls("DeletePoll"))
	assert.Equal(t, "p1", h.fake.LastDeleted)
	assert.Equal(t, 1, h.fake.Calls("ListPolls"), "reloaded")
	assert.Equal(t, []string{confirmDeletePoll, confirmDeletePoll}, h.ui.confirms)

	h.fake.DeletePollEr = client.ErrUnavailable
	_, err = page.DeletePoll(context.Background(), "p1")
	require.ErrorIs(t, err, common.ErrAction)
	assert.Equal(t, []string{"Error deleting poll"}, h.ui.Alerts())
}

func TestAdminPage_DeleteUser(t *testing.T) {
	h := newHarness(t)
	h.loginAs(t, models.RoleAdmin)
	page := mountedAdmin(t, h)
	h.fake.ResetCalls()

	_, err := page.DeleteUser(context.Background(), "root")
	require.ErrorIs(t, err, ErrProtectedUser)
	assert.Empty(t, h.ui.confirms)
	assert.Zero(t, h.fake.Total())

	ok, err := page.DeleteUser(context.Background(), "stu")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "stu", h.fake.LastDeleted)
	assert.Equal(t, []string{confirmDeleteUser}, h.ui.confirms)

	h.fake.DeleteUserEr = &client.APIError{StatusCode: 404, Message: "User not found"}
	_, err = page.DeleteUser(context.Background(), "stu")
	require.ErrorIs(t, err, common.ErrAction)
	assert.Equal(t, []string{"User not found"}, h.ui.Alerts())
}

func TestAdminPage_ResultsFailure(t *testing.T) {
	h := newHarness(t)
	h.loginAs(t, models.RoleAdmin)
	page := mountedAdmin(t, h)

	h.fake.ResultsErr = client.ErrUnavailable
	_, err := page.ViewResults(context.Background(), "p1")
	require.Error(t, err)
	assert.Equal(t, []string{"Failed to fetch results. Ensure you are an Admin."}, h.ui.Alerts())
}

func TestAdminPage_NextSessionStartsEmpty(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.loginUser(t, "root", models.RoleAdmin)
	page := mountedAdmin(t, h)
	h.fake.Results = &models.PollResults{}
	_, err := page.Results.Open(ctx, "p1")
	require.NoError(t, err)

	h.auth.Logout(ctx)
	h.loginUser(t, "other", models.RoleAdmin)
	h.fake.UsersErr = client.ErrUnavailable

	require.ErrorIs(t, page.Mount(ctx), common.ErrFetch)
	assert.Empty(t, page.Users())
	assert.Empty(t, page.Polls())
	assert.Zero(t, page.Stats())
	assert.Equal(t, "Failed to load admin data", page.Banner())
	shown, _, _ := page.Results.Snapshot()
	assert.False(t, shown)
}

func TestAdminPage_DeleteRejectedSessionLogsOut(t *testing.T) {
	h := newHarness(t)
	h.loginAs(t, models.RoleAdmin)
	h.router.Navigate(RouteAdmin)
	page := mountedAdmin(t, h)

	h.fake.DeletePollEr = &client.APIError{StatusCode: 401}
	ok, err := page.DeletePoll(context.Background(), "p1")
	assert.False(t, ok)
	require.ErrorIs(t, err, common.ErrAction)
	assert.Equal(t, []string{"Error deleting poll"}, h.ui.Alerts())
	assert.Nil(t, h.auth.CurrentUser())
	assert.Equal(t, RouteLogin, h.router.Current())
	assert.Empty(t, page.Users())
}
