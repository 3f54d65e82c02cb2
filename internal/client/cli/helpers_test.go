package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/devpair/internal/client/client"
	"github.com/dmitrijs2005/devpair/internal/client/models"
	"github.com/dmitrijs2005/devpair/internal/client/services"
	"github.com/dmitrijs2005/devpair/internal/client/validation"
	"github.com/dmitrijs2005/devpair/internal/client/views"
	"github.com/dmitrijs2005/devpair/internal/logging"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// ---- fake auth ----

type fakeAuth struct {
	mu    sync.Mutex
	state services.State
	ready chan struct{}

	loginUser *models.User
	loginErr  error
	lastLogin string
	lastPass  string

	registerErr  error
	lastRegister validation.RegisterForm

	logoutCalled bool
	logoutErr    error

	toggleErr  error
	refreshErr error
	refreshed  bool

	initGate        chan struct{}
	initDone        bool
	closed          bool
	closedAfterInit bool
}

func newFakeAuth(user *models.User) *fakeAuth {
	f := &fakeAuth{state: services.State{User: user}, ready: make(chan struct{})}
	close(f.ready)
	return f
}

func (f *fakeAuth) Initialize(context.Context) error {
	if f.initGate != nil {
		<-f.initGate
	}
	f.mu.Lock()
	f.initDone = true
	f.mu.Unlock()
	return nil
}

func (f *fakeAuth) Login(_ context.Context, username string, password []byte) error {
	f.lastLogin, f.lastPass = username, string(password)
	if f.loginErr != nil {
		return f.loginErr
	}
	f.setUser(f.loginUser)
	return nil
}

func (f *fakeAuth) Register(_ context.Context, form validation.RegisterForm) error {
	f.lastRegister = form
	if err := validation.Validate(form); err != nil {
		return err
	}
	if f.registerErr != nil {
		return f.registerErr
	}
	f.setUser(&models.User{ID: 1, Username: form.Username})
	return nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	f.setUser(nil)
	return f.logoutErr
}

func (f *fakeAuth) UpdateProfile(context.Context, models.ProfileUpdate) error { return nil }

func (f *fakeAuth) ToggleDarkMode(context.Context) error {
	if f.toggleErr != nil {
		return f.toggleErr
	}
	f.mu.Lock()
	f.state.DarkMode = !f.state.DarkMode
	f.mu.Unlock()
	return nil
}

func (f *fakeAuth) Refresh(context.Context) error {
	f.refreshed = true
	return f.refreshErr
}

func (f *fakeAuth) State() services.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeAuth) Ready() <-chan struct{} { return f.ready }

func (f *fakeAuth) Close(context.Context) error {
	f.mu.Lock()
	f.closed = true
	f.closedAfterInit = f.initDone
	f.mu.Unlock()
	return nil
}

func (f *fakeAuth) setUser(u *models.User) {
	f.mu.Lock()
	f.state.User = u
	f.mu.Unlock()
}

// ---- fake api server ----

type seen struct {
	Method string
	Path   string
	Query  string
	Body   map[string]any
}

type apiLog struct {
	mu   sync.Mutex
	reqs []seen
}

func (l *apiLog) all() []seen {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]seen(nil), l.reqs...)
}

func (l *apiLog) find(method, path string) (seen, bool) {
	for _, r := range l.all() {
		if r.Method == method && r.Path == path {
			return r, true
		}
	}
	return seen{}, false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonHandler(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) { writeJSON(w, status, v) }
}

// newRouter returns a router that records every request.
func newRouter() (*mux.Router, *apiLog) {
	log := &apiLog{}
	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			s := seen{Method: req.Method, Path: req.URL.Path, Query: req.URL.RawQuery}
			_ = json.NewDecoder(req.Body).Decode(&s.Body)
			log.mu.Lock()
			log.reqs = append(log.reqs, s)
			log.mu.Unlock()
			next.ServeHTTP(w, req)
		})
	})
	return r, log
}

// newTestApp wires an App to a fake API server, a fake session store and
// the given stdin contents. Output is collected in the returned buffer.
func newTestApp(t *testing.T, r *mux.Router, auth *fakeAuth, input string) (*App, *bytes.Buffer) {
	t.Helper()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	api, err := client.NewHTTPClient(srv.URL)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &App{
		log:      logging.Discard(),
		api:      api,
		auth:     auth,
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      out,
		projects: views.NewProjects(api, logging.Discard()),
	}, out
}

func stubPassword(t *testing.T, pws ...string) {
	t.Helper()
	orig := getPassword
	i := 0
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		pw := pws[i%len(pws)]
		i++
		return []byte(pw), nil
	}
	t.Cleanup(func() { getPassword = orig })
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func emptyDashboard(r *mux.Router) {
	r.HandleFunc("/api/dashboard/stats", jsonHandler(http.StatusOK, models.DashboardStats{OwnedProjects: 2}))
	r.HandleFunc("/api/users/me/projects", jsonHandler(http.StatusOK, []models.Project{}))
	r.HandleFunc("/api/users/me/notifications", jsonHandler(http.StatusOK, []models.Notification{}))
}
