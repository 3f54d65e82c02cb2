package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devpair/internal/client/validation"
	"github.com/dmitrijs2005/devpair/internal/client/views"
)

func (a *App) Users(ctx context.Context, _ []string) error {
	v := views.NewUsers(a.api, a.log)
	if err := v.Load(ctx); err != nil {
		return err
	}
	a.renderUserRows(v)
	return nil
}

func (a *App) renderUserRows(v *views.Users) {
	if len(v.Items) == 0 {
		fmt.Fprintln(a.out, "No users.")
		return
	}
	w := a.table()
	fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tEXPERIENCE\tSKILLS")
	for _, u := range v.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, u.ExperienceLevel, u.Skills)
	}
	w.Flush()
}

func (a *App) promptUser(form *validation.UserForm) error {
	var err error
	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Username", &form.Username},
		{"Email", &form.Email},
		{"GitHub username", &form.GithubUsername},
		{"Skills (comma separated)", &form.Skills},
		{"Experience level (beginner, intermediate, advanced)", &form.ExperienceLevel},
		{"Bio", &form.Bio},
	} {
		if *f.dst, err = GetTextDefault(a.reader, f.prompt, *f.dst, a.out); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) UserNew(ctx context.Context, _ []string) error {
	form := validation.UserForm{ExperienceLevel: "beginner"}
	if err := a.promptUser(&form); err != nil {
		return err
	}
	v := views.NewUsers(a.api, a.log)
	if err := v.Create(ctx, form); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "User created.")
	a.renderUserRows(v)
	return nil
}

func (a *App) UserEdit(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "user-edit <id>")
	if err != nil {
		return err
	}
	v := views.NewUsers(a.api, a.log)
	if err := v.Load(ctx); err != nil {
		return err
	}
	u, ok := v.Find(id)
	if !ok {
		return fmt.Errorf("no user with id %d", id)
	}

	form := validation.UserFormFrom(u)
	if err := a.promptUser(&form); err != nil {
		return err
	}
	if err := v.Update(ctx, id, form); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "User updated.")
	a.renderUserRows(v)
	return nil
}

func (a *App) UserDelete(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "user-delete <id>")
	if err != nil {
		return err
	}
	ok, err := GetBool(a.reader, "Are you sure you want to delete this user?", false, a.out)
	if err != nil || !ok {
		return err
	}
	v := views.NewUsers(a.api, a.log)
	if err := v.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "User deleted.")
	return nil
}

func (a *App) Sessions(ctx context.Context, _ []string) error {
	v := views.NewPairingSessions(a.api, a.log)
	if err := v.Load(ctx); err != nil {
		return err
	}
	a.renderSessions(v)
	return nil
}

func (a *App) renderSessions(v *views.PairingSessions) {
	if len(v.Items) == 0 {
		fmt.Fprintln(a.out, "No pairing sessions.")
		return
	}
	w := a.table()
	fmt.Fprintln(w, "ID\tUSER\tPROJECT\tSTATUS\tMINUTES\tRATING\tCREATED")
	for _, s := range v.Items {
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%d\t%d\t%s\n",
			s.ID, s.UserID, s.ProjectID, a.paint(statusStyle(s.Status), s.Status), s.DurationMinutes, s.Rating, since(s.CreatedAt))
	}
	w.Flush()
}

func (a *App) SessionNew(ctx context.Context, _ []string) error {
	form := validation.PairingSessionForm{Status: "pending"}

	userID, err := GetInt(a.reader, "User id", 0, a.out)
	if err != nil {
		return err
	}
	projectID, err := GetInt(a.reader, "Project id", 0, a.out)
	if err != nil {
		return err
	}
	form.UserID, form.ProjectID = int64(userID), int64(projectID)

	if form.Status, err = GetTextDefault(a.reader, "Status (pending, active, completed, cancelled)", form.Status, a.out); err != nil {
		return err
	}
	if form.DurationMinutes, err = GetInt(a.reader, "Duration in minutes", 0, a.out); err != nil {
		return err
	}
	if form.Rating, err = GetInt(a.reader, "Rating 1-5 (0 for none)", 0, a.out); err != nil {
		return err
	}
	if form.Notes, err = GetMultiline(a.reader, "Notes (optional)", a.out); err != nil {
		return err
	}

	v := views.NewPairingSessions(a.api, a.log)
	if err := v.Create(ctx, form); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Pairing session created.")
	a.renderSessions(v)
	return nil
}
