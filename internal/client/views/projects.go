package views

import (
	"context"

	"github.com/dmitrijs2005/devpair/internal/client/models"
	"github.com/dmitrijs2005/devpair/internal/logging"
)

// ProjectsPerPage is the page size of the public project listing.
const ProjectsPerPage = 12

type ProjectsAPI interface {
	ListProjects(ctx context.Context, q models.ProjectQuery) (*models.ProjectPage, error)
}

// Projects is the public project browser. Filtering and paging happen on
// the server; every setter only changes the query, Load applies it.
type Projects struct {
	api ProjectsAPI
	log logging.Logger
	loader

	query models.ProjectQuery

	Items []models.Project
	Total int
	Pages int
}

func NewProjects(api ProjectsAPI, log logging.Logger) *Projects {
	return &Projects{
		api:   api,
		log:   log.With("view", "projects"),
		query: models.ProjectQuery{Page: 1, PerPage: ProjectsPerPage},
	}
}

func (p *Projects) Query() models.ProjectQuery { return p.query }
func (p *Projects) Page() int                  { return p.query.Page }

func (p *Projects) Load(ctx context.Context) error {
	defer p.begin()()

	page, err := p.api.ListProjects(ctx, p.query)
	if err != nil {
		p.log.Warn(ctx, "projects load failed", "err", err, "page", p.query.Page)
		return err
	}
	p.Items, p.Total, p.Pages = page.Projects, page.Total, page.Pages
	return nil
}

// SetSearch, SetStatus and SetDifficulty go back to the first page.
func (p *Projects) SetSearch(s string) {
	p.query.Search = s
	p.query.Page = 1
}

func (p *Projects) SetStatus(s string) {
	p.query.Status = s
	p.query.Page = 1
}

func (p *Projects) SetDifficulty(d string) {
	p.query.Difficulty = d
	p.query.Page = 1
}

// ClearFilters drops search, status and difficulty.
func (p *Projects) ClearFilters() {
	p.query = models.ProjectQuery{Page: 1, PerPage: ProjectsPerPage}
}

func (p *Projects) Next() { p.Goto(p.query.Page + 1) }
func (p *Projects) Prev() { p.Goto(p.query.Page - 1) }

// Goto selects page n, clamped to the pages known from the last Load.
func (p *Projects) Goto(n int) {
	last := max(p.Pages, 1)
	p.query.Page = min(max(n, 1), last)
}
