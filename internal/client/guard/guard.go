// Package guard decides whether a route may be shown for the current
// session. It performs no I/O; callers act on the returned Outcome.
package guard

import "github.com/dmitrijs2005/devpair/internal/client/services"

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

type Decision int

const (
	// Wait means the session is still being restored.
	Wait Decision = iota
	Render
	Redirect
)

func (d Decision) String() string {
	switch d {
	case Wait:
		return "wait"
	case Render:
		return "render"
	case Redirect:
		return "redirect"
	}
	return "unknown"
}

// Outcome is a guard decision. Target is set only for Redirect.
type Outcome struct {
	Decision Decision
	Target   string
}

// Protected guards routes that need an identity.
func Protected(s services.State) Outcome {
	switch {
	case s.Loading:
		return Outcome{Decision: Wait}
	case s.User == nil:
		return Outcome{Decision: Redirect, Target: LoginPath}
	default:
		return Outcome{Decision: Render}
	}
}

// Public guards the login and registration routes, which make no sense
// once someone is logged in.
func Public(s services.State) Outcome {
	switch {
	case s.Loading:
		return Outcome{Decision: Wait}
	case s.User != nil:
		return Outcome{Decision: Redirect, Target: DashboardPath}
	default:
		return Outcome{Decision: Render}
	}
}
