package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/RitishHUB/polling-frountend/internal/client/models"
	"github.com/RitishHUB/polling-frountend/internal/client/pages"
)

var (
	errUsage     = errors.New("usage")
	errNoSuchRef = errors.New("no such item")
	errCancelled = errors.New("cancelled")
)

// resolveRef maps a list number (1-based) or an id to an id.
func resolveRef(ref string, ids []string) (string, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n >= 1 && n <= len(ids) {
			return ids[n-1], nil
		}
		return "", fmt.Errorf("%w: %s", errNoSuchRef, ref)
	}
	if slices.Contains(ids, ref) {
		return ref, nil
	}
	return "", fmt.Errorf("%w: %s", errNoSuchRef, ref)
}

func pollIDs(polls []models.Poll) []string {
	ids := make([]string, len(polls))
	for i := range polls {
		ids[i] = polls[i].ID
	}
	return ids
}

func (a *App) usage(text string) error {
	a.ui.printf("Usage: %s\n", text)
	return errUsage
}

// Go navigates to another route. The target page's guard decides whether
// the session may stay there.
func (a *App) Go(_ context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("go </|/admin|/staff|/student>")
	}
	route := args[0]
	switch route {
	case pages.RouteLogin, pages.RouteAdmin, pages.RouteStaff, pages.RouteStudent:
	default:
		a.ui.printf("Unknown route: %s\n", route)
		return errNoSuchRef
	}
	if route != a.route() {
		a.router.Navigate(route)
	}
	return nil
}

// Show prints the current page.
func (a *App) Show(context.Context) error {
	a.render()
	return nil
}

// Refresh reloads the current page's data and prints it.
func (a *App) Refresh(ctx context.Context) error {
	var err error
	switch a.route() {
	case pages.RouteAdmin:
		err = a.admin.Refresh(ctx)
	case pages.RouteStaff:
		err = a.staff.Refresh(ctx)
	case pages.RouteStudent:
		err = a.student.Refresh(ctx)
	}
	if a.route() == a.mounted {
		a.render()
	}
	return err
}

// Vote submits a student's choice in the background; the prompt comes back
// at once and the outcome is printed when the vote settles.
func (a *App) Vote(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return a.usage("vote <poll> <option>")
	}
	views := a.student.Polls()
	ids := make([]string, len(views))
	for i, v := range views {
		ids[i] = v.Poll.ID
	}
	id, err := resolveRef(args[0], ids)
	if err != nil {
		a.ui.printf("No such poll: %s\n", args[0])
		return err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return a.usage("vote <poll> <option number>")
	}

	v, _ := a.student.Poll(id)
	switch {
	case n < 1 || n > len(v.Poll.Options):
		a.ui.printf("No such option: %d\n", n)
		return models.ErrOptionIndex
	case v.Voted:
		a.ui.printf("You already voted on %q.\n", v.Poll.Title)
		return nil
	case v.Pending:
		a.ui.printf("A vote on %q is already being submitted.\n", v.Poll.Title)
		return nil
	case !v.Active:
		a.ui.printf("%q is closed.\n", v.Poll.Title)
		return nil
	}

	a.ui.printf("Submitting vote for %q...\n", v.Poll.Options[n-1].OptionText)
	a.votes.Add(1)
	go func() {
		defer a.votes.Done()
		ok, err := a.student.Vote(context.WithoutCancel(ctx), id, n-1)
		if err == nil && ok {
			a.ui.printf("Vote recorded on %q.\n", v.Poll.Title)
		}
	}()
	return nil
}

func (a *App) Badges(context.Context) error {
	renderBadges(a.ui, a.student.Badges(), a.now())
	return nil
}

// Profile edits the student's roll number, department and avatar URL.
func (a *App) Profile(ctx context.Context) error {
	form := a.student.EditProfile()

	var err error
	if form.RollNumber, err = GetTextDefault(a.reader, "Roll number", form.RollNumber, a.ui); err != nil {
		return err
	}
	if form.Department, err = GetTextDefault(a.reader, "Department", form.Department, a.ui); err != nil {
		return err
	}
	if form.ProfilePic, err = GetTextDefault(a.reader, "Profile picture URL", form.ProfilePic, a.ui); err != nil {
		return err
	}

	s, err := a.student.SaveProfile(ctx, form)
	if err != nil {
		return err
	}
	a.ui.printf("Profile saved: %s, %s\n", dash(s.RollNumber), dash(s.Department))
	return nil
}

// NewPoll walks through the authoring form. A draft rejected by validation
// or by the server stays filled in for the next attempt.
func (a *App) NewPoll(ctx context.Context) error {
	d := a.staff.OpenForm()
	if err := a.editDraft(d); err != nil {
		a.staff.CloseForm()
		if errors.Is(err, errCancelled) {
			a.ui.printf("Poll creation cancelled.\n")
		}
		return err
	}

	p, err := a.staff.CreatePoll(ctx)
	if err != nil {
		return err
	}
	a.ui.printf("Poll %q created.\n", p.Title)
	a.render()
	return nil
}

func (a *App) editDraft(d *models.PollDraft) error {
	var err error
	if d.Title, err = GetTextDefault(a.reader, "Title", d.Title, a.ui); err != nil {
		return err
	}
	if d.Description, err = GetTextDefault(a.reader, "Description", d.Description, a.ui); err != nil {
		return err
	}

	for {
		vis, err := GetTextDefault(a.reader, "Visibility (Student, Staff, Both)", string(d.Visibility), a.ui)
		if err != nil {
			return err
		}
		if v := models.Visibility(vis); v == models.VisibilityStudent || v == models.VisibilityStaff || v == models.VisibilityBoth {
			d.Visibility = v
			break
		}
		a.ui.printf("Visibility must be Student, Staff or Both.\n")
	}

	if d.StartTime, err = GetTextDefault(a.reader, "Start (YYYY-MM-DDTHH:MM)", d.StartTime, a.ui); err != nil {
		return err
	}
	if d.EndTime, err = GetTextDefault(a.reader, "End (YYYY-MM-DDTHH:MM)", d.EndTime, a.ui); err != nil {
		return err
	}
	if d.Anonymous, err = GetYesNo(a.reader, "Anonymous voting?", d.Anonymous, a.ui); err != nil {
		return err
	}
	if d.AllowLiveResults, err = GetYesNo(a.reader, "Show live results to voters?", d.AllowLiveResults, a.ui); err != nil {
		return err
	}

	for i, o := range d.Options {
		text, err := GetTextDefault(a.reader, fmt.Sprintf("Option %d", i+1), o, a.ui)
		if err != nil {
			return err
		}
		_ = d.SetOption(i, text)
	}
	return a.editOptions(d)
}

// editOptions is a small sub-prompt: add <text>, set <n> <text>, rm <n>,
// done, cancel.
func (a *App) editOptions(d *models.PollDraft) error {
	for {
		renderDraft(a.ui, d)
		line, err := GetSimpleText(a.reader, "Options: add <text> | set <n> <text> | rm <n> | done | cancel", a.ui)
		if err != nil {
			return err
		}
		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch cmd {
		case "done", "":
			return nil
		case "cancel":
			return errCancelled
		case "add":
			d.AddOption()
			_ = d.SetOption(len(d.Options)-1, rest)
		case "set":
			num, text, _ := strings.Cut(rest, " ")
			n, err := strconv.Atoi(num)
			if err != nil || d.SetOption(n-1, strings.TrimSpace(text)) != nil {
				a.ui.printf("No such option: %s\n", num)
			}
		case "rm":
			n, err := strconv.Atoi(rest)
			if err != nil {
				a.ui.printf("No such option: %s\n", rest)
				continue
			}
			if err := a.staff.RemoveOption(n - 1); errors.Is(err, models.ErrOptionIndex) {
				a.ui.printf("No such option: %d\n", n)
			}
		default:
			a.ui.printf("Unknown option command: %s\n", cmd)
		}
	}
}

// Results prints the detailed breakdown of a poll on the staff or admin page.
func (a *App) Results(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("results <poll>")
	}

	var (
		polls []models.Poll
		view  func(context.Context, string) (*models.PollResults, error)
	)
	if a.route() == pages.RouteAdmin {
		polls, view = a.admin.Polls(), a.admin.ViewResults
	} else {
		polls, view = a.staff.Polls(), a.staff.ViewResults
	}

	id, err := resolveRef(args[0], pollIDs(polls))
	if err != nil {
		a.ui.printf("No such poll: %s\n", args[0])
		return err
	}
	r, err := view(ctx, id)
	if err != nil {
		return err
	}
	renderResults(a.ui, r)
	return nil
}

func (a *App) Users(context.Context) error {
	renderUsers(a.ui, a.admin.Users())
	return nil
}

func (a *App) DeletePoll(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("delete-poll <poll>")
	}
	id, err := resolveRef(args[0], pollIDs(a.admin.Polls()))
	if err != nil {
		a.ui.printf("No such poll: %s\n", args[0])
		return err
	}
	ok, err := a.admin.DeletePoll(ctx, id)
	if err != nil {
		return err
	}
	if ok {
		a.ui.printf("Poll deleted.\n")
		a.render()
	}
	return nil
}

func (a *App) DeleteUser(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("delete-user <user>")
	}
	users := a.admin.Users()
	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	id, err := resolveRef(args[0], ids)
	if err != nil {
		a.ui.printf("No such user: %s\n", args[0])
		return err
	}

	ok, err := a.admin.DeleteUser(ctx, id)
	switch {
	case errors.Is(err, pages.ErrProtectedUser):
		a.ui.printf("Admin accounts cannot be deleted.\n")
		return err
	case err != nil:
		return err
	case ok:
		a.ui.printf("User deleted.\n")
		renderUsers(a.ui, a.admin.Users())
	}
	return nil
}
