package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RitishHUB/polling-frountend/internal/client/models"
)

func TestRouteForRole(t *testing.T) {
	assert.Equal(t, RouteAdmin, RouteForRole(models.RoleAdmin))
	assert.Equal(t, RouteStaff, RouteForRole(models.RoleStaff))
	assert.Equal(t, RouteStudent, RouteForRole(models.RoleStudent))
	assert.Equal(t, RouteLogin, RouteForRole(""))
}

func TestRouter_NavigateNotifiesListeners(t *testing.T) {
	r := NewRouter()
	assert.Equal(t, RouteLogin, r.Current())

	var seen []string
	r.OnChange(func(route string) {
		seen = append(seen, route)
		if route == RouteAdmin {
			r.Navigate(RouteLogin)
		}
	})

	r.Navigate(RouteStudent)
	r.Navigate(RouteAdmin)

	assert.Equal(t, []string{RouteStudent, RouteAdmin, RouteLogin}, seen)
	assert.Equal(t, RouteLogin, r.Current())
	assert.Equal(t, []string{RouteLogin, RouteStudent, RouteAdmin, RouteLogin}, r.History())
}
