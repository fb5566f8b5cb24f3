package pages

import (
	"slices"
	"sync"

	"github.com/RitishHUB/polling-frountend/internal/client/models"
)

const (
	RouteLogin   = "/"
	RouteAdmin   = "/admin"
	RouteStaff   = "/staff"
	RouteStudent = "/student"
)

// RouteForRole is where a freshly logged-in user lands. Unknown roles stay
// on the login route.
func RouteForRole(r models.Role) string {
	switch r {
	case models.RoleAdmin:
		return RouteAdmin
	case models.RoleStaff:
		return RouteStaff
	case models.RoleStudent:
		return RouteStudent
	default:
		return RouteLogin
	}
}

// Router tracks the current route and its history. Listeners run after the
// route has changed, outside the router's lock, so they may navigate again.
type Router struct {
	mu        sync.Mutex
	current   string
	history   []string
	listeners []func(route string)
}

func NewRouter() *Router {
	return &Router{current: RouteLogin, history: []string{RouteLogin}}
}

func (r *Router) Navigate(route string) {
	r.mu.Lock()
	r.current = route
	r.history = append(r.history, route)
	ls := slices.Clone(r.listeners)
	r.mu.Unlock()

	for _, fn := range ls {
		fn(route)
	}
}

func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// History returns every route entered, oldest first, starting with "/".
func (r *Router) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.history...)
}

func (r *Router) OnChange(fn func(route string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}
