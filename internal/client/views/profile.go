package views

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devpair/internal/client/models"
	"github.com/dmitrijs2005/devpair/internal/client/services"
	"github.com/dmitrijs2005/devpair/internal/client/validation"
	"github.com/dmitrijs2005/devpair/internal/common"
	"github.com/dmitrijs2005/devpair/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Session is the part of the session store views read.
type Session interface {
	State() services.State
}

// ProfileSession also lets the profile view write the identity.
type ProfileSession interface {
	Session
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) error
}

type SkillsAPI interface {
	UserSkills(ctx context.Context, userID int64) ([]models.UserSkill, error)
	Skills(ctx context.Context) ([]models.Skill, error)
	AddUserSkill(ctx context.Context, in models.UserSkillInput) error
	RemoveUserSkill(ctx context.Context, id int64) error
}

// Profile is the caller's own profile and skill list. The identity itself
// lives in the session store.
type Profile struct {
	session ProfileSession
	api     SkillsAPI
	log     logging.Logger
	loader

	Skills    []models.UserSkill
	Catalogue []models.Skill
}

func NewProfile(session ProfileSession, api SkillsAPI, log logging.Logger) *Profile {
	return &Profile{session: session, api: api, log: log.With("view", "profile")}
}

// User returns the current identity, nil when logged out.
func (p *Profile) User() *models.User {
	return p.session.State().User
}

// Form returns the edit form pre-filled from the identity.
func (p *Profile) Form() validation.ProfileForm {
	if u := p.User(); u != nil {
		return validation.ProfileFormFrom(*u)
	}
	return validation.ProfileForm{}
}

// Load fetches the caller's skills and the skill catalogue.
func (p *Profile) Load(ctx context.Context) error {
	defer p.begin()()

	u := p.User()
	if u == nil {
		return common.ErrNotLoggedIn
	}

	var (
		skills    []models.UserSkill
		catalogue []models.Skill
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		skills, err = p.api.UserSkills(gctx, u.ID)
		return err
	})
	g.Go(func() (err error) {
		catalogue, err = p.api.Skills(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		p.log.Warn(ctx, "skills load failed", "err", err)
		return err
	}

	p.Skills, p.Catalogue = skills, catalogue
	return nil
}

// Save validates form and writes it through the session store.
func (p *Profile) Save(ctx context.Context, form validation.ProfileForm) error {
	if err := validation.Validate(form); err != nil {
		return err
	}
	return p.session.UpdateProfile(ctx, form.Update())
}

func (p *Profile) AddSkill(ctx context.Context, form validation.SkillForm) error {
	u := p.User()
	if u == nil {
		return common.ErrNotLoggedIn
	}
	if err := validation.Validate(form); err != nil {
		return err
	}
	if err := p.api.AddUserSkill(ctx, form.Input(u.ID)); err != nil {
		return fmt.Errorf("add skill: %w", err)
	}
	_ = p.Load(ctx)
	return nil
}

func (p *Profile) RemoveSkill(ctx context.Context, id int64) error {
	if err := p.api.RemoveUserSkill(ctx, id); err != nil {
		return fmt.Errorf("remove skill: %w", err)
	}
	_ = p.Load(ctx)
	return nil
}
