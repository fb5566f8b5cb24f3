package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/RitishHUB/polling-frountend/internal/client/models"
	"github.com/RitishHUB/polling-frountend/internal/client/pages"
	"github.com/RitishHUB/polling-frountend/internal/client/services"
	"github.com/RitishHUB/polling-frountend/internal/common"
	"github.com/RitishHUB/polling-frountend/internal/logging"
)

// maxRedirects bounds the mount loop; a guard can only bounce to "/".
const maxRedirects = 4

type App struct {
	auth   services.AuthService
	log    logging.Logger
	now    func() time.Time
	reader *bufio.Reader
	ui     *terminalUI

	router  *pages.Router
	login   *pages.LoginPage
	admin   *pages.AdminPage
	staff   *pages.StaffPage
	student *pages.StudentPage

	mounted string

	mu        sync.Mutex
	userLabel string

	// votes tracks background vote submissions.
	votes sync.WaitGroup
}

// Options configure NewApp.
type Options struct {
	Auth      services.AuthService
	Polls     services.PollService
	Log       logging.Logger
	In        io.Reader
	Out       io.Writer
	VoteDelay time.Duration
	Now       func() time.Time
}

func NewApp(o Options) *App {
	if o.Log == nil {
		o.Log = logging.Nop{}
	}
	if o.Now == nil {
		o.Now = time.Now
	}

	reader := bufio.NewReader(o.In)
	ui := &terminalUI{in: reader, out: o.Out}
	router := pages.NewRouter()

	deps := pages.Deps{
		Auth:      o.Auth,
		Service:   o.Polls,
		UI:        ui,
		Nav:       router,
		Log:       o.Log,
		Now:       o.Now,
		VoteDelay: o.VoteDelay,
	}

	a := &App{
		auth:    o.Auth,
		log:     o.Log,
		now:     o.Now,
		reader:  reader,
		ui:      ui,
		router:  router,
		login:   pages.NewLoginPage(deps),
		admin:   pages.NewAdminPage(deps),
		staff:   pages.NewStaffPage(deps),
		student: pages.NewStudentPage(deps),
		mounted: pages.RouteLogin,
	}

	router.OnChange(func(route string) {
		a.log.Debug(context.Background(), "route changed", "route", route)
	})
	o.Auth.Subscribe(a.setUser)
	a.setUser(o.Auth.CurrentUser())
	return a
}

// Run starts at the dashboard of the restored session, if any, and blocks
// in the REPL until the user exits. Votes still in flight are awaited.
func (a *App) Run(ctx context.Context) {
	a.ui.printf("Welcome to Campus Poll Hub (type 'help' for commands)\n")

	if s := a.auth.CurrentUser(); s != nil {
		a.router.Navigate(pages.RouteForRole(s.Role))
		a.settle(ctx)
	}

	runREPL(ctx, a, a.status, a.reader)
	a.votes.Wait()
}

func (a *App) isLoggedIn() bool {
	return a.auth.CurrentUser() != nil
}

func (a *App) route() string {
	return a.router.Current()
}

func (a *App) setUser(s *models.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if s == nil {
		a.userLabel = ""
		return
	}
	a.userLabel = fmt.Sprintf("%s %s", s.Name, s.Role)
}

func (a *App) status() string {
	a.mu.Lock()
	label := a.userLabel
	a.mu.Unlock()
	if label == "" {
		return a.route()
	}
	return fmt.Sprintf("(%s) %s", label, a.route())
}

// settle mounts the page of the current route whenever the route changed
// since the last mount. A guard that rejects the session sends the user
// back to "/", which is mounted in turn.
func (a *App) settle(ctx context.Context) {
	for i := 0; i < maxRedirects; i++ {
		route := a.route()
		if route == a.mounted {
			return
		}
		a.mounted = route

		err := a.mount(ctx, route)
		switch {
		case err == nil:
			a.render()
		case errors.Is(err, common.ErrAuthorization):
			// silent: the guard has already redirected
		default:
			var fe *common.FetchError
			if errors.As(err, &fe) && a.route() == route {
				a.render()
			}
		}
	}
}

func (a *App) mount(ctx context.Context, route string) error {
	switch route {
	case pages.RouteAdmin:
		return a.admin.Mount(ctx)
	case pages.RouteStaff:
		return a.staff.Mount(ctx)
	case pages.RouteStudent:
		return a.student.Mount(ctx)
	default:
		return nil
	}
}

// render prints the current page.
func (a *App) render() {
	switch a.route() {
	case pages.RouteAdmin:
		renderAdmin(a.ui, a.admin, a.now())
	case pages.RouteStaff:
		renderStaff(a.ui, a.staff, a.now())
	case pages.RouteStudent:
		renderStudent(a.ui, a.student, a.now())
	default:
		if s := a.auth.CurrentUser(); s != nil {
			a.ui.printf("Signed in as %s (%s). Use 'go %s' to open your dashboard.\n", s.Email, s.Role, pages.RouteForRole(s.Role))
			return
		}
		a.ui.printf("Not logged in. Use 'login' or 'register'.\n")
	}
}
