package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/devpair/internal/client/client"
	"github.com/dmitrijs2005/devpair/internal/client/validation"
	"github.com/dmitrijs2005/devpair/internal/client/views"
)

// Projects browses the public listing. Filters and page persist between
// calls; with no arguments the current page is reloaded.
func (a *App) Projects(ctx context.Context, args []string) error {
	v := a.projects
	opts, words := splitOptions(args)

	for _, w := range words {
		switch w {
		case "next":
			v.Next()
		case "prev":
			v.Prev()
		case "clear":
			v.ClearFilters()
		default:
			return usageError{"projects [next|prev|clear|page=N|search=..|status=..|difficulty=..]"}
		}
	}

	if s, ok := opts["search"]; ok {
		v.SetSearch(s)
	}
	if s, ok := opts["status"]; ok {
		v.SetStatus(s)
	}
	if s, ok := opts["difficulty"]; ok {
		v.SetDifficulty(s)
	}
	if s, ok := opts["page"]; ok {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid page %q", s)
		}
		v.Goto(n)
	}

	if err := v.Load(ctx); err != nil {
		return err
	}
	a.renderProjectPage(v)
	return nil
}

// loadProject loads a project for a detail command. A missing project
// sends the user back to the listing.
func (a *App) loadProject(ctx context.Context, args []string, usage string) (*views.ProjectDetail, error) {
	id, err := argID(args, 0, usage)
	if err != nil {
		return nil, err
	}

	v := views.NewProjectDetail(id, a.api, a.auth, a.log)
	if err := v.Load(ctx); err != nil {
		if errors.Is(err, client.ErrNotFound) {
			fmt.Fprintln(a.out, "Project not found.")
			return nil, a.Projects(ctx, nil)
		}
		return nil, err
	}
	return v, nil
}

func (a *App) Project(ctx context.Context, args []string) error {
	v, err := a.loadProject(ctx, args, "project <id>")
	if v == nil {
		return err
	}
	a.renderProject(v)
	return nil
}

func (a *App) Request(ctx context.Context, args []string) error {
	v, err := a.loadProject(ctx, args, "request <project-id>")
	if v == nil {
		return err
	}
	if v.IsCollaborator() {
		return errors.New("you are already part of this project")
	}
	if v.HasRequested() {
		return errors.New("you have already sent a pairing request for this project")
	}

	msg, err := GetMultiline(a.reader, "Why do you want to pair on this project?", a.out)
	if err != nil {
		return err
	}
	if err := v.RequestPairing(ctx, validation.PairingRequestForm{Message: msg}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Pairing request sent.")
	return nil
}

func (a *App) MilestoneAdd(ctx context.Context, args []string) error {
	v, err := a.loadProject(ctx, args, "milestone-add <project-id>")
	if v == nil {
		return err
	}

	var form validation.MilestoneForm
	if form.Title, err = GetSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if form.Description, err = GetSimpleText(a.reader, "Description (optional)", a.out); err != nil {
		return err
	}
	if form.DueDate, err = GetSimpleText(a.reader, "Due date YYYY-MM-DD (optional)", a.out); err != nil {
		return err
	}

	if err := v.AddMilestone(ctx, form); err != nil {
		return err
	}
	a.renderProject(v)
	return nil
}

func (a *App) MilestoneToggle(ctx context.Context, args []string) error {
	const usage = "milestone-toggle <project-id> <milestone-id>"
	mid, err := argID(args, 1, usage)
	if err != nil {
		return err
	}
	v, err := a.loadProject(ctx, args, usage)
	if v == nil {
		return err
	}
	if err := v.ToggleMilestone(ctx, mid); err != nil {
		return err
	}
	a.renderProject(v)
	return nil
}

func (a *App) MilestoneDelete(ctx context.Context, args []string) error {
	const usage = "milestone-delete <project-id> <milestone-id>"
	mid, err := argID(args, 1, usage)
	if err != nil {
		return err
	}
	v, err := a.loadProject(ctx, args, usage)
	if v == nil {
		return err
	}

	ok, err := GetBool(a.reader, "Are you sure you want to delete this milestone?", false, a.out)
	if err != nil || !ok {
		return err
	}
	if err := v.DeleteMilestone(ctx, mid); err != nil {
		return err
	}
	a.renderProject(v)
	return nil
}

func (a *App) Comment(ctx context.Context, args []string) error {
	v, err := a.loadProject(ctx, args, "comment <project-id>")
	if v == nil {
		return err
	}

	content, err := GetMultiline(a.reader, "Comment", a.out)
	if err != nil {
		return err
	}
	if err := v.AddComment(ctx, validation.CommentForm{Content: strings.TrimSpace(content)}); err != nil {
		return err
	}
	a.renderProject(v)
	return nil
}
