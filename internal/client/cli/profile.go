package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devpair/internal/client/validation"
	"github.com/dmitrijs2005/devpair/internal/client/views"
	"github.com/dmitrijs2005/devpair/internal/common"
)

func (a *App) profileView() *views.Profile {
	return views.NewProfile(a.auth, a.api, a.log)
}

func (a *App) Profile(ctx context.Context, _ []string) error {
	u := a.auth.State().User
	if u == nil {
		return common.ErrNotLoggedIn
	}
	a.renderUser(*u)
	return nil
}

// ProfileEdit walks through the profile form with the current values as
// defaults.
func (a *App) ProfileEdit(ctx context.Context, _ []string) error {
	p := a.profileView()
	form := p.Form()

	var err error
	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Full name", &form.FullName},
		{"GitHub URL", &form.GithubURL},
		{"LinkedIn URL", &form.LinkedinURL},
		{"Portfolio URL", &form.PortfolioURL},
		{"Skills (comma separated)", &form.Skills},
		{"Experience level (beginner, intermediate, advanced, expert)", &form.ExperienceLevel},
		{"Bio", &form.Bio},
	} {
		if *f.dst, err = GetTextDefault(a.reader, f.prompt, *f.dst, a.out); err != nil {
			return err
		}
	}
	if form.IsAvailable, err = GetBool(a.reader, "Available for pairing?", form.IsAvailable, a.out); err != nil {
		return err
	}

	if err := p.Save(ctx, form); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return a.Profile(ctx, nil)
}

func (a *App) Skills(ctx context.Context, _ []string) error {
	p := a.profileView()
	if err := p.Load(ctx); err != nil {
		return err
	}
	a.renderSkills(p)
	return nil
}

// SkillAdd takes the skill id and level as arguments or asks for them.
func (a *App) SkillAdd(ctx context.Context, args []string) error {
	var form validation.SkillForm

	if len(args) >= 2 {
		id, err := argID(args, 0, "skill-add [skill-id level]")
		if err != nil {
			return err
		}
		level, err := argID(args, 1, "skill-add [skill-id level]")
		if err != nil {
			return err
		}
		form.SkillID, form.ProficiencyLevel = id, int(level)
	} else {
		id, err := GetInt(a.reader, "Skill id (see skills)", 0, a.out)
		if err != nil {
			return err
		}
		level, err := GetInt(a.reader, "Proficiency 1-5", 3, a.out)
		if err != nil {
			return err
		}
		form.SkillID, form.ProficiencyLevel = int64(id), level
	}

	p := a.profileView()
	if err := p.AddSkill(ctx, form); err != nil {
		return err
	}
	a.renderSkills(p)
	return nil
}

func (a *App) SkillRemove(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "skill-remove <id>")
	if err != nil {
		return err
	}
	p := a.profileView()
	if err := p.RemoveSkill(ctx, id); err != nil {
		return err
	}
	a.renderSkills(p)
	return nil
}
