package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/RitishHUB/polling-frountend/internal/client/models"
	"github.com/RitishHUB/polling-frountend/internal/client/pages"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func pollStatus(active bool) string {
	if active {
		return "ACTIVE"
	}
	return "CLOSED"
}

func when(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

func renderBanner(w io.Writer, banner string) {
	if banner != "" {
		fmt.Fprintf(w, "! %s\n", banner)
	}
}

func renderStudent(w io.Writer, p *pages.StudentPage, now time.Time) {
	renderBanner(w, p.Banner())
	st := p.Stats()
	fmt.Fprintf(w, "Polls: %d  Voted: %d  Badges: %d\n", st.Polls, st.Voted, st.Badges)

	views := p.Polls()
	if len(views) == 0 {
		fmt.Fprintln(w, "No polls available right now.")
		return
	}

	for i, v := range views {
		state := pollStatus(v.Active)
		switch {
		case v.Pending:
			state += ", submitting"
		case v.Voted:
			state += ", voted"
		}
		fmt.Fprintf(w, "%d. %s [%s] ends %s\n", i+1, v.Poll.Title, state, when(v.Poll.EndTime, now))
		if v.Poll.Description != "" {
			fmt.Fprintf(w, "   %s\n", v.Poll.Description)
		}
		for j, o := range v.Poll.Options {
			mark := " "
			if (v.Voted && v.VotedIndex == j) || (v.Pending && v.PendingIndex == j) {
				mark = ">"
			}
			line := fmt.Sprintf("  %s %d) %s", mark, j+1, o.OptionText)
			if v.ShowCounts {
				line += fmt.Sprintf(" (%d)", o.VoteCount)
			}
			fmt.Fprintln(w, line)
		}
	}
}

func renderBadges(w io.Writer, badges []models.Badge, now time.Time) {
	if len(badges) == 0 {
		fmt.Fprintln(w, "No badges yet. Vote to earn some!")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "BADGE\tEARNED")
	for _, b := range badges {
		fmt.Fprintf(tw, "%s\t%s\n", b.BadgeName, when(b.CreatedAt, now))
	}
	tw.Flush()
}

func renderPollTable(w io.Writer, polls []models.Poll, now time.Time) {
	if len(polls) == 0 {
		fmt.Fprintln(w, "No polls yet.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tTITLE\tSTATUS\tVISIBILITY\tENDS\tVOTES\tBY")
	for i := range polls {
		p := &polls[i]
		by := p.CreatedBy.Name
		if by == "" {
			by = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%s\n",
			i+1, p.Title, pollStatus(p.IsActive(now)), p.Visibility, when(p.EndTime, now), p.TotalVotes(), by)
	}
	tw.Flush()
}

func renderStaff(w io.Writer, p *pages.StaffPage, now time.Time) {
	renderBanner(w, p.Banner())
	active, closed := p.Counts()
	fmt.Fprintf(w, "Active: %d  Closed: %d\n", active, closed)
	renderPollTable(w, p.Polls(), now)
}

func renderAdmin(w io.Writer, p *pages.AdminPage, now time.Time) {
	renderBanner(w, p.Banner())
	st := p.Stats()
	fmt.Fprintf(w, "Users: %s  Polls: %s (%d active)  Votes: %s\n",
		humanize.Comma(int64(st.TotalUsers)), humanize.Comma(int64(st.TotalPolls)), p.ActivePolls(), humanize.Comma(int64(st.TotalVotes)))
	renderPollTable(w, p.Polls(), now)
}

func renderUsers(w io.Writer, users []models.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tNAME\tEMAIL\tROLE\tROLL NO\tDEPARTMENT")
	for i, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", i+1, u.Name, u.Email, u.Role, dash(u.RollNumber), dash(u.Department))
	}
	tw.Flush()
}

func renderResults(w io.Writer, r *models.PollResults) {
	fmt.Fprintf(w, "%s: %s total\n", r.PollTitle, humanize.Comma(int64(r.TotalVotes)))
	for _, o := range r.Results {
		pct := 0.0
		if r.TotalVotes > 0 {
			pct = float64(o.VoteCount) * 100 / float64(r.TotalVotes)
		}
		fmt.Fprintf(w, "  %s: %d (%.0f%%)\n", o.OptionText, o.VoteCount, pct)
		if r.Anonymous {
			continue
		}
		names := make([]string, 0, len(o.Voters))
		for _, v := range o.Voters {
			names = append(names, v.Name)
		}
		if len(names) > 0 {
			fmt.Fprintf(w, "    voters: %s\n", strings.Join(names, ", "))
		}
	}
	if r.Anonymous {
		fmt.Fprintln(w, "  (anonymous poll: voters hidden)")
	}
}

func renderDraft(w io.Writer, d *models.PollDraft) {
	fmt.Fprintln(w, "Options:")
	for i, o := range d.Options {
		fmt.Fprintf(w, "  %d) %s\n", i+1, o)
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
