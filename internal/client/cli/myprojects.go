package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/devpair/internal/client/validation"
	"github.com/dmitrijs2005/devpair/internal/client/views"
)

func (a *App) MyProjects(ctx context.Context, args []string) error {
	v := views.NewMyProjects(a.api, a.log)
	if err := v.Load(ctx); err != nil {
		return err
	}
	v.Search = strings.Join(args, " ")

	items := v.Visible()
	if len(items) == 0 {
		if v.Search != "" {
			fmt.Fprintln(a.out, "No projects match your search.")
		} else {
			fmt.Fprintln(a.out, "You have no projects yet. Create one with project-new.")
		}
		return nil
	}
	a.renderProjectRows(items)
	return nil
}

// promptProject fills form interactively, keeping existing values on empty
// input.
func (a *App) promptProject(form *validation.ProjectForm) error {
	var err error
	if form.Title, err = GetTextDefault(a.reader, "Title", form.Title, a.out); err != nil {
		return err
	}
	if form.Description, err = GetTextDefault(a.reader, "Description", form.Description, a.out); err != nil {
		return err
	}
	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Tech stack (comma separated)", &form.TechStack},
		{"Tags (comma separated)", &form.Tags},
		{"Difficulty (beginner, intermediate, advanced)", &form.DifficultyLevel},
		{"Status (ongoing, completed, paused)", &form.Status},
		{"Repository URL", &form.RepositoryURL},
		{"Demo URL", &form.DemoURL},
	} {
		if *f.dst, err = GetTextDefault(a.reader, f.prompt, *f.dst, a.out); err != nil {
			return err
		}
	}
	if form.MaxCollaborators, err = GetInt(a.reader, "Max collaborators", form.MaxCollaborators, a.out); err != nil {
		return err
	}
	if form.IsPublic, err = GetBool(a.reader, "Public?", form.IsPublic, a.out); err != nil {
		return err
	}
	return nil
}

func (a *App) ProjectNew(ctx context.Context, _ []string) error {
	form := validation.NewProjectForm()
	if err := a.promptProject(&form); err != nil {
		return err
	}

	v := views.NewMyProjects(a.api, a.log)
	if err := v.Create(ctx, form); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Project created.")
	a.renderProjectRows(v.Items)
	return nil
}

func (a *App) ProjectEdit(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "project-edit <id>")
	if err != nil {
		return err
	}

	v := views.NewMyProjects(a.api, a.log)
	if err := v.Load(ctx); err != nil {
		return err
	}
	p, ok := v.Find(id)
	if !ok {
		return fmt.Errorf("you do not own a project with id %d", id)
	}

	form := validation.ProjectFormFrom(p)
	if err := a.promptProject(&form); err != nil {
		return err
	}
	if err := v.Update(ctx, id, form); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Project updated.")
	a.renderProjectRows(v.Items)
	return nil
}

func (a *App) ProjectDelete(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "project-delete <id>")
	if err != nil {
		return err
	}

	ok, err := GetBool(a.reader, "Are you sure you want to delete this project?", false, a.out)
	if err != nil || !ok {
		return err
	}

	v := views.NewMyProjects(a.api, a.log)
	if err := v.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Project deleted.")
	return nil
}
