package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/devpair/internal/client/models"
	"github.com/dmitrijs2005/devpair/internal/client/views"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/mattn/go-isatty"
)

// now is a test seam for relative timestamps.
var now = time.Now

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type style int

const (
	styleHeading style = iota
	styleAccent
	styleMuted
	styleOK
	styleWarn
)

const ansiReset = "\033[0m"

var (
	lightPalette = [...]string{"\033[1;34m", "\033[36m", "\033[90m", "\033[32m", "\033[33m"}
	darkPalette  = [...]string{"\033[1;96m", "\033[95m", "\033[37m", "\033[92m", "\033[93m"}
)

// paint colours text when stdout is a terminal, with the palette chosen by
// the dark-mode preference.
func (a *App) paint(s style, text string) string {
	if !a.color {
		return text
	}
	p := lightPalette
	if a.auth.State().DarkMode {
		p = darkPalette
	}
	return p[s] + text + ansiReset
}

// since renders an API timestamp relative to now, or verbatim when it
// cannot be parsed.
func since(ts string) string {
	t, ok := models.ParseTime(ts)
	if !ok {
		return ts
	}
	return humanize.RelTime(t, now(), "ago", "from now")
}

func statusStyle(status string) style {
	switch status {
	case models.RequestApproved, "completed", "active":
		return styleOK
	case models.RequestPending, "paused":
		return styleWarn
	case models.RequestRejected, "cancelled":
		return styleMuted
	}
	return styleAccent
}

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
}

func (a *App) heading(text string) {
	fmt.Fprintln(a.out, a.paint(styleHeading, text))
}

func (a *App) renderUser(u models.User) {
	a.heading(u.DisplayName())
	fmt.Fprintf(a.out, "@%s  %s\n", u.Username, u.Email)
	if u.Bio != "" {
		fmt.Fprintln(a.out, u.Bio)
	}

	w := a.table()
	fmt.Fprintf(w, "Experience:\t%s\n", u.ExperienceLevel)
	fmt.Fprintf(w, "Skills:\t%s\n", strings.Join(u.SkillList(), ", "))
	available := "no"
	if u.IsAvailable {
		available = "yes"
	}
	fmt.Fprintf(w, "Available to pair:\t%s\n", available)
	for _, link := range []struct{ label, url string }{
		{"GitHub", u.GithubURL},
		{"LinkedIn", u.LinkedinURL},
		{"Portfolio", u.PortfolioURL},
	} {
		if link.url != "" {
			fmt.Fprintf(w, "%s:\t%s\n", link.label, link.url)
		}
	}
	if u.CreatedAt != "" {
		fmt.Fprintf(w, "Member since:\t%s\n", since(u.CreatedAt))
	}
	w.Flush()
}

func (a *App) renderDashboard(d *views.Dashboard, u *models.User) {
	if u != nil {
		a.heading(fmt.Sprintf("Welcome back, %s!", u.DisplayName()))
	}

	w := a.table()
	fmt.Fprintf(w, "Projects owned\t%s\n", humanize.Comma(int64(d.Stats.OwnedProjects)))
	fmt.Fprintf(w, "Completed\t%s\n", humanize.Comma(int64(d.Stats.CompletedProjects)))
	fmt.Fprintf(w, "Collaborations\t%s\n", humanize.Comma(int64(d.Stats.Collaborations)))
	fmt.Fprintf(w, "Pending requests\t%s\n", humanize.Comma(int64(d.Stats.PendingRequests)))
	fmt.Fprintf(w, "Approved requests\t%s\n", humanize.Comma(int64(d.Stats.ApprovedRequests)))
	fmt.Fprintf(w, "Unread notifications\t%s\n", humanize.Comma(int64(d.Stats.UnreadNotifications)))
	w.Flush()

	fmt.Fprintln(a.out)
	a.heading("Recent projects")
	if len(d.Projects) == 0 {
		fmt.Fprintln(a.out, "No projects yet. Create one with project-new.")
	} else {
		a.renderProjectRows(d.Projects)
	}

	fmt.Fprintln(a.out)
	a.heading("Recent notifications")
	if len(d.Notifications) == 0 {
		fmt.Fprintln(a.out, "No notifications.")
	} else {
		a.renderNotificationRows(d.Notifications)
	}
}

func (a *App) renderProjectRows(items []models.Project) {
	w := a.table()
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tDIFFICULTY\tTECH")
	for _, p := range items {
		tech := p.TechList()
		if len(tech) > 3 {
			tech = append(tech[:3:3], fmt.Sprintf("+%d", len(tech)-3))
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			p.ID, p.Title, a.paint(statusStyle(p.Status), p.Status), p.DifficultyLevel, strings.Join(tech, ", "))
	}
	w.Flush()
}

func (a *App) renderProjectPage(v *views.Projects) {
	q := v.Query()
	if len(v.Items) == 0 {
		fmt.Fprintln(a.out, "No projects found.")
		return
	}
	a.renderProjectRows(v.Items)
	fmt.Fprintf(a.out, "%s, page %d of %d\n",
		english.Plural(v.Total, "project", ""), q.Page, max(v.Pages, 1))
}

func (a *App) renderProject(v *views.ProjectDetail) {
	p := v.Project
	a.heading(p.Title)
	if p.Owner != nil {
		fmt.Fprintf(a.out, "by %s, %s\n", p.Owner.DisplayName(), since(p.CreatedAt))
	}
	fmt.Fprintln(a.out, p.Description)

	w := a.table()
	fmt.Fprintf(w, "Status:\t%s\n", a.paint(statusStyle(p.Status), p.Status))
	fmt.Fprintf(w, "Difficulty:\t%s\n", p.DifficultyLevel)
	fmt.Fprintf(w, "Tech stack:\t%s\n", strings.Join(p.TechList(), ", "))
	if tags := p.TagList(); len(tags) > 0 {
		fmt.Fprintf(w, "Tags:\t%s\n", strings.Join(tags, ", "))
	}
	fmt.Fprintf(w, "Collaborators:\t%d / %d\n", len(p.Collaborators), p.MaxCollaborators)
	if p.RepositoryURL != "" {
		fmt.Fprintf(w, "Repository:\t%s\n", p.RepositoryURL)
	}
	if p.DemoURL != "" {
		fmt.Fprintf(w, "Demo:\t%s\n", p.DemoURL)
	}
	w.Flush()

	fmt.Fprintln(a.out)
	if pct, ok := v.Progress(); ok {
		a.heading(fmt.Sprintf("Milestones (%d%% complete)", pct))
	} else {
		a.heading("Milestones")
	}
	if len(v.Milestones) == 0 {
		fmt.Fprintln(a.out, "No milestones yet.")
	}
	for _, m := range v.Milestones {
		mark := "[ ]"
		if m.IsCompleted {
			mark = a.paint(styleOK, "[x]")
		}
		line := fmt.Sprintf("%s %d  %s", mark, m.ID, m.Title)
		if m.DueDate != "" {
			line += a.paint(styleMuted, "  due "+since(m.DueDate))
		}
		fmt.Fprintln(a.out, line)
	}

	fmt.Fprintln(a.out)
	a.heading(fmt.Sprintf("Comments (%d)", len(v.Comments)))
	for _, c := range v.Comments {
		author := "unknown"
		if c.Author != nil {
			author = c.Author.DisplayName()
		}
		fmt.Fprintf(a.out, "%s %s\n  %s\n", a.paint(styleAccent, author), a.paint(styleMuted, since(c.CreatedAt)), c.Content)
	}

	switch {
	case v.HasRequested():
		fmt.Fprintln(a.out, a.paint(styleMuted, "You have already sent a pairing request for this project."))
	case v.CanRequest():
		fmt.Fprintf(a.out, "Want to join? request %d\n", p.ID)
	}
}

func (a *App) renderRequests(title string, reqs []models.PairingRequest) {
	a.heading(fmt.Sprintf("%s (%d)", title, len(reqs)))
	if len(reqs) == 0 {
		fmt.Fprintln(a.out, "No pairing requests found.")
		return
	}
	w := a.table()
	fmt.Fprintln(w, "ID\tPROJECT\tFROM\tSTATUS\tSENT\tMESSAGE")
	for _, r := range reqs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Title(), r.RequesterName(), a.paint(statusStyle(r.Status), r.Status), since(r.CreatedAt), r.Message)
	}
	w.Flush()
}

func (a *App) renderNotificationRows(items []models.Notification) {
	for _, n := range items {
		mark := " "
		if !n.IsRead {
			mark = a.paint(styleWarn, "*")
		}
		fmt.Fprintf(a.out, "%s %d  %s %s\n    %s\n", mark, n.ID, n.Title, a.paint(styleMuted, since(n.CreatedAt)), n.Message)
	}
}

func (a *App) renderSkills(p *views.Profile) {
	a.heading("Your skills")
	if len(p.Skills) == 0 {
		fmt.Fprintln(a.out, "No skills yet. Add one with skill-add.")
	} else {
		w := a.table()
		fmt.Fprintln(w, "ID\tSKILL\tLEVEL")
		for _, s := range p.Skills {
			name := fmt.Sprintf("#%d", s.SkillID)
			if s.Skill != nil {
				name = s.Skill.Name
			}
			fmt.Fprintf(w, "%d\t%s\t%s\n", s.ID, name, strings.Repeat("*", s.ProficiencyLevel))
		}
		w.Flush()
	}

	fmt.Fprintln(a.out)
	a.heading("Catalogue")
	w := a.table()
	for _, s := range p.Catalogue {
		fmt.Fprintf(w, "%d\t%s\t%s\n", s.ID, s.Name, s.Category)
	}
	w.Flush()
}
