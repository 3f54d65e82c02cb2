package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/devpair/internal/client/client"
	"github.com/dmitrijs2005/devpair/internal/client/guard"
	"github.com/dmitrijs2005/devpair/internal/client/services"
	"github.com/dmitrijs2005/devpair/internal/client/validation"
)

// access says which guard a command runs behind.
type access int

const (
	accessOpen access = iota
	accessPublic
	accessProtected
)

type command struct {
	name   string
	args   string
	help   string
	access access
	run    func(a *App, ctx context.Context, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{"register", "", "create an account", accessPublic, (*App).Register},
		{"login", "", "log in", accessPublic, (*App).Login},
		{"logout", "", "log out", accessProtected, (*App).Logout},
		{"whoami", "", "show the logged-in user", accessProtected, (*App).WhoAmI},
		{"refresh", "", "renew the access token", accessProtected, (*App).Refresh},
		{"darkmode", "", "toggle dark mode", accessProtected, (*App).DarkMode},

		{"dashboard", "", "stats, recent projects and notifications", accessProtected, (*App).Dashboard},

		{"profile", "", "show your profile", accessProtected, (*App).Profile},
		{"profile-edit", "", "edit your profile", accessProtected, (*App).ProfileEdit},
		{"skills", "", "show your skills and the skill catalogue", accessProtected, (*App).Skills},
		{"skill-add", "[skill-id level]", "add a skill", accessProtected, (*App).SkillAdd},
		{"skill-remove", "<id>", "remove one of your skills", accessProtected, (*App).SkillRemove},

		{"projects", "[next|prev|clear|page=N|search=..|status=..|difficulty=..]", "browse projects", accessOpen, (*App).Projects},
		{"project", "<id>", "show a project", accessOpen, (*App).Project},
		{"request", "<project-id>", "ask to pair on a project", accessProtected, (*App).Request},
		{"milestone-add", "<project-id>", "add a milestone", accessProtected, (*App).MilestoneAdd},
		{"milestone-toggle", "<project-id> <milestone-id>", "mark a milestone done or not done", accessProtected, (*App).MilestoneToggle},
		{"milestone-delete", "<project-id> <milestone-id>", "delete a milestone", accessProtected, (*App).MilestoneDelete},
		{"comment", "<project-id>", "comment on a project", accessProtected, (*App).Comment},

		{"myprojects", "[search]", "list the projects you own", accessProtected, (*App).MyProjects},
		{"project-new", "", "create a project", accessProtected, (*App).ProjectNew},
		{"project-edit", "<id>", "edit one of your projects", accessProtected, (*App).ProjectEdit},
		{"project-delete", "<id>", "delete one of your projects", accessProtected, (*App).ProjectDelete},

		{"requests", "[sent|received] [status=..] [search=..]", "pairing requests", accessProtected, (*App).Requests},
		{"respond", "<id> approve|reject [message]", "answer a pairing request", accessProtected, (*App).Respond},

		{"notifications", "[all|unread|read]", "list notifications", accessProtected, (*App).Notifications},
		{"read", "<id>", "mark a notification as read", accessProtected, (*App).Read},
		{"readall", "", "mark every notification as read", accessProtected, (*App).ReadAll},

		{"users", "", "list users", accessProtected, (*App).Users},
		{"user-new", "", "create a user", accessProtected, (*App).UserNew},
		{"user-edit", "<id>", "edit a user", accessProtected, (*App).UserEdit},
		{"user-delete", "<id>", "delete a user", accessProtected, (*App).UserDelete},
		{"sessions", "", "list pairing sessions", accessProtected, (*App).Sessions},
		{"session-new", "", "log a pairing session", accessProtected, (*App).SessionNew},
	}
}

func lookupCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// helpText lists the commands usable in the current session.
func helpText(loggedIn bool) string {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, c := range commands {
		if (loggedIn && c.access == accessPublic) || (!loggedIn && c.access == accessProtected) {
			continue
		}
		fmt.Fprintf(&b, "  %-18s %s\n", strings.TrimSpace(c.name+" "+c.args), c.help)
	}
	fmt.Fprintf(&b, "  %-18s %s", "exit | quit", "leave the program")
	return b.String()
}

// execute runs the named command behind its guard.
func (a *App) execute(ctx context.Context, name string, args []string) error {
	cmd, ok := lookupCommand(name)
	if !ok {
		return errUnknownCommand
	}

	if cmd.access != accessOpen {
		out, err := a.awaitGuard(ctx, cmd.access)
		if err != nil {
			return err
		}
		if out.Decision == guard.Redirect {
			return a.redirect(ctx, out.Target)
		}
	}
	return cmd.run(a, ctx, args)
}

// awaitGuard evaluates the guard, blocking while the session is still
// being restored.
func (a *App) awaitGuard(ctx context.Context, acc access) (guard.Outcome, error) {
	decide := guard.Protected
	if acc == accessPublic {
		decide = guard.Public
	}

	for {
		out := decide(a.auth.State())
		if out.Decision != guard.Wait {
			return out, nil
		}

		fmt.Fprintln(a.out, "Restoring session...")
		select {
		case <-a.auth.Ready():
		case <-ctx.Done():
			return out, ctx.Err()
		}
	}
}

func (a *App) redirect(ctx context.Context, target string) error {
	switch target {
	case guard.LoginPath:
		fmt.Fprintln(a.out, "Please log in first.")
		return a.Login(ctx, nil)
	case guard.DashboardPath:
		fmt.Fprintln(a.out, "You are already logged in.")
		return a.Dashboard(ctx, nil)
	}
	return fmt.Errorf("no route for %s", target)
}

// describeError turns a command error into the line shown to the user.
func describeError(err error) string {
	var (
		verrs   validation.Errors
		authErr *services.AuthError
		apiErr  *client.APIError
	)

	switch {
	case errors.As(err, &verrs):
		return verrs.Error()
	case errors.As(err, &authErr):
		if authErr.Field != "" {
			return authErr.Field + ": " + authErr.Message
		}
		return authErr.Message
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again later"
	}
	return err.Error()
}

type usageError struct{ usage string }

func (e usageError) Error() string { return "usage: " + e.usage }

// argID parses args[i] as a positive id.
func argID(args []string, i int, usage string) (int64, error) {
	if len(args) <= i {
		return 0, usageError{usage}
	}
	id, err := strconv.ParseInt(args[i], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[i])
	}
	return id, nil
}

// splitOptions separates key=value arguments from plain words.
func splitOptions(args []string) (opts map[string]string, words []string) {
	opts = map[string]string{}
	for _, arg := range args {
		if k, v, ok := strings.Cut(arg, "="); ok {
			opts[k] = v
			continue
		}
		words = append(words, arg)
	}
	return opts, words
}
