package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devpair/internal/client/validation"
	"github.com/dmitrijs2005/devpair/internal/common"
)

// Register prompts for the registration form and creates the account
// through the AuthService. On success the new user is logged in and the
// dashboard is shown.
func (a *App) Register(ctx context.Context, _ []string) error {
	var (
		form validation.RegisterForm
		err  error
	)

	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Username", &form.Username},
		{"Email", &form.Email},
		{"Full name", &form.FullName},
	} {
		if *f.dst, err = GetSimpleText(a.reader, f.prompt, a.out); err != nil {
			return err
		}
	}

	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	form.Password, form.ConfirmPassword = string(password), string(confirm)

	if form.ExperienceLevel, err = GetTextDefault(a.reader, "Experience level (beginner, intermediate, advanced, expert)", "beginner", a.out); err != nil {
		return err
	}
	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Skills (comma separated, optional)", &form.Skills},
		{"GitHub URL (optional)", &form.GithubURL},
		{"LinkedIn URL (optional)", &form.LinkedinURL},
	} {
		if *f.dst, err = GetSimpleText(a.reader, f.prompt, a.out); err != nil {
			return err
		}
	}
	if form.Bio, err = GetMultiline(a.reader, "Bio (optional)", a.out); err != nil {
		return err
	}

	if err := a.auth.Register(ctx, form); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created!")
	return a.Dashboard(ctx, nil)
}

// Login prompts for credentials and authenticates. The password is wiped
// before returning.
func (a *App) Login(ctx context.Context, _ []string) error {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := validation.Validate(validation.LoginForm{Username: username, Password: string(password)}); err != nil {
		return err
	}

	if err := a.auth.Login(ctx, username, password); err != nil {
		return err
	}

	return a.Dashboard(ctx, nil)
}

// Logout ends the session. The server is told on a best-effort basis.
func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context, _ []string) error {
	u := a.auth.State().User
	if u == nil {
		return common.ErrNotLoggedIn
	}
	fmt.Fprintf(a.out, "%s (@%s, id %d)\n", u.DisplayName(), u.Username, u.ID)
	return nil
}

func (a *App) Refresh(ctx context.Context, _ []string) error {
	if err := a.auth.Refresh(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Access token renewed.")
	return nil
}

func (a *App) DarkMode(ctx context.Context, _ []string) error {
	if err := a.auth.ToggleDarkMode(ctx); err != nil {
		return err
	}
	state := "off"
	if a.auth.State().DarkMode {
		state = "on"
	}
	fmt.Fprintf(a.out, "Dark mode %s.\n", state)
	return nil
}
