package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/devpair/internal/client/models"
	"github.com/dmitrijs2005/devpair/internal/client/validation"
	"github.com/dmitrijs2005/devpair/internal/logging"
)

type MyProjectsAPI interface {
	MyProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, in models.ProjectInput) (*models.Project, error)
	UpdateProject(ctx context.Context, id int64, in models.ProjectInput) (*models.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

// MyProjects lists the projects the caller owns.
type MyProjects struct {
	api MyProjectsAPI
	log logging.Logger
	loader

	Items  []models.Project
	Search string
}

func NewMyProjects(api MyProjectsAPI, log logging.Logger) *MyProjects {
	return &MyProjects{api: api, log: log.With("view", "my-projects")}
}

func (v *MyProjects) Load(ctx context.Context) error {
	defer v.begin()()

	items, err := v.api.MyProjects(ctx)
	if err != nil {
		v.log.Warn(ctx, "my projects load failed", "err", err)
		return err
	}
	v.Items = items
	return nil
}

// Visible returns the loaded projects matching Search.
func (v *MyProjects) Visible() []models.Project {
	return SearchProjects(v.Items, v.Search)
}

// Find returns the loaded project with the given id.
func (v *MyProjects) Find(id int64) (models.Project, bool) {
	for _, p := range v.Items {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

// SearchProjects keeps projects whose title, description or tech stack
// contains term, ignoring case. An empty term keeps everything.
func SearchProjects(items []models.Project, term string) []models.Project {
	term = strings.ToLower(term)
	if term == "" {
		return items
	}

	out := make([]models.Project, 0, len(items))
	for _, p := range items {
		if strings.Contains(strings.ToLower(p.Title), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			strings.Contains(strings.ToLower(p.TechStack), term) {
			out = append(out, p)
		}
	}
	return out
}

func (v *MyProjects) Create(ctx context.Context, form validation.ProjectForm) error {
	if err := validation.Validate(form); err != nil {
		return err
	}
	if _, err := v.api.CreateProject(ctx, form.Input()); err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	_ = v.Load(ctx)
	return nil
}

func (v *MyProjects) Update(ctx context.Context, id int64, form validation.ProjectForm) error {
	if err := validation.Validate(form); err != nil {
		return err
	}
	if _, err := v.api.UpdateProject(ctx, id, form.Input()); err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	_ = v.Load(ctx)
	return nil
}

func (v *MyProjects) Delete(ctx context.Context, id int64) error {
	if err := v.api.DeleteProject(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	_ = v.Load(ctx)
	return nil
}
