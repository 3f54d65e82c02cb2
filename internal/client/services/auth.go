// Package services contains application services for the DevPair client.
// This file defines the session store: who is logged in, whether the
// initial session restore has finished, and the dark-mode preference.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/devpair/internal/client/client"
	"github.com/dmitrijs2005/devpair/internal/client/models"
	"github.com/dmitrijs2005/devpair/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/devpair/internal/client/validation"
	"github.com/dmitrijs2005/devpair/internal/common"
	"github.com/dmitrijs2005/devpair/internal/dbx"
	"github.com/dmitrijs2005/devpair/internal/logging"
	"github.com/dmitrijs2005/devpair/internal/tokenx"
)

// AuthAPI is the part of the API the session store talks to.
type AuthAPI interface {
	SetAccessToken(token string)
	ClearAccessToken()
	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.User, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	UpdateMe(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
}

// State is a snapshot of the session.
type State struct {
	User     *models.User
	Loading  bool
	DarkMode bool
}

func (s State) LoggedIn() bool { return s.User != nil }

// errIncompleteResponse is a 2xx reply that lacks the token or identity
// a session needs.
var errIncompleteResponse = errors.New("incomplete session response")

// AuthError is a failed login, registration or profile update. Message is
// the text to show; Field names the form field it belongs to, if any.
type AuthError struct {
	Op      string
	Field   string
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Op + ": " + e.Message }
func (e *AuthError) Unwrap() error { return e.Err }

// AuthService is the session store.
//
// Contract:
//   - Initialize: restore the session from persisted credentials; Loading
//     stays true and Ready stays open until it returns.
//   - Login / Register: start a session, persisting both tokens.
//   - Logout: always ends in the logged-out state.
//   - UpdateProfile / ToggleDarkMode: replace the identity with the
//     server's copy.
//   - Refresh: exchange the refresh token for a new access token.
//   - Close: release the local store.
type AuthService interface {
	Initialize(ctx context.Context) error
	Login(ctx context.Context, username string, password []byte) error
	Register(ctx context.Context, form validation.RegisterForm) error
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) error
	ToggleDarkMode(ctx context.Context) error
	Refresh(ctx context.Context) error
	State() State
	Ready() <-chan struct{}
	Close(ctx context.Context) error
}

// authService keeps the identity in memory and the credential pair in the
// local sqlite store. Network calls run outside the lock and are not
// serialised against each other.
type authService struct {
	api AuthAPI
	db  *sql.DB
	log logging.Logger
	now func() time.Time

	mu       sync.RWMutex
	user     *models.User
	loading  bool
	darkMode bool

	ready     chan struct{}
	readyOnce sync.Once
}

// NewAuthService constructs the session store in the loading state.
func NewAuthService(api AuthAPI, db *sql.DB, log logging.Logger) AuthService {
	return &authService{
		api:     api,
		db:      db,
		log:     log.With("component", "auth"),
		now:     time.Now,
		loading: true,
		ready:   make(chan struct{}),
	}
}

func (a *authService) getCredentialsRepo() credentials.Repository {
	return credentials.NewSQLiteRepository(a.db)
}

// Initialize restores a persisted session. An access token that is a JWT
// past its expiry is refreshed first when a refresh token is held. If the
// identity cannot be fetched the session is torn down as in Logout.
func (a *authService) Initialize(ctx context.Context) error {
	defer a.finishLoading()

	access, err := a.getCredentialsRepo().Get(ctx, common.AccessTokenKey)
	if err != nil {
		return fmt.Errorf("read credentials: %w", err)
	}
	if access == "" {
		return nil
	}

	if tokenx.Expired(access, a.now()) {
		refreshed, err := a.refreshAccessToken(ctx)
		if err != nil {
			a.log.Warn(ctx, "stored session expired", "err", err)
			return a.clearSession(ctx)
		}
		access = refreshed
	}

	a.api.SetAccessToken(access)

	user, err := a.api.Me(ctx)
	if err == nil && (user == nil || user.ID == 0) {
		err = errIncompleteResponse
	}
	if err != nil {
		a.log.Warn(ctx, "session restore failed", "err", err)
		return a.Logout(ctx)
	}

	a.setUser(user)
	return nil
}

func (a *authService) finishLoading() {
	a.mu.Lock()
	a.loading = false
	a.mu.Unlock()
	a.readyOnce.Do(func() { close(a.ready) })
}

// Login authenticates against the server. On failure the persisted tokens
// and the identity are left untouched.
func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	resp, err := a.api.Login(ctx, username, string(password))
	if err != nil {
		return &AuthError{Op: "login", Field: "password", Message: client.ErrorMessage(err, "Login failed"), Err: err}
	}
	return a.startSession(ctx, resp, &AuthError{Op: "login", Field: "password", Message: "Login failed"})
}

// Register validates form, then creates the account and starts a session.
// A validation failure is returned as validation.Errors without any
// request being made.
func (a *authService) Register(ctx context.Context, form validation.RegisterForm) error {
	if err := validation.Validate(form); err != nil {
		return err
	}

	resp, err := a.api.Register(ctx, form.Request())
	if err != nil {
		msg := client.ErrorMessage(err, "Registration failed")
		return &AuthError{Op: "register", Field: validation.FieldForServerError(msg), Message: msg, Err: err}
	}
	return a.startSession(ctx, resp, &AuthError{Op: "register", Message: "Registration failed"})
}

// startSession persists and attaches the credentials of resp. A response
// without an access token or an identity is rejected with incomplete
// before anything is stored.
func (a *authService) startSession(ctx context.Context, resp *models.AuthResponse, incomplete *AuthError) error {
	if resp == nil || resp.AccessToken == "" || resp.User.ID == 0 {
		incomplete.Err = errIncompleteResponse
		return incomplete
	}
	if err := a.saveTokens(ctx, resp.AccessToken, resp.RefreshToken); err != nil {
		return fmt.Errorf("credentials saving error: %w", err)
	}
	a.api.SetAccessToken(resp.AccessToken)

	user := resp.User
	a.setUser(&user)
	a.log.Info(ctx, "session started", "user", user.Username)
	return nil
}

// saveTokens persists the credential pair in a single transaction.
func (a *authService) saveTokens(ctx context.Context, access, refresh string) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := credentials.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.AccessTokenKey, access); err != nil {
			return err
		}
		return repo.Set(ctx, common.RefreshTokenKey, refresh)
	})
}

// Logout notifies the server (failures are only logged) and then clears
// the persisted credentials, the attached header and the identity. The
// in-memory session is cleared even when the store cannot be.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		a.log.Warn(ctx, "server logout failed", "err", err)
	}
	return a.clearSession(ctx)
}

func (a *authService) clearSession(ctx context.Context) error {
	err := a.getCredentialsRepo().Clear(ctx)

	a.api.ClearAccessToken()

	a.mu.Lock()
	a.user = nil
	a.darkMode = false
	a.mu.Unlock()

	if err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

// UpdateProfile sends upd and replaces the identity with the server's
// response. Fields the response omits are dropped, not merged.
func (a *authService) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) error {
	user, err := a.api.UpdateMe(ctx, upd)
	if err != nil {
		return &AuthError{Op: "update profile", Message: client.ErrorMessage(err, "Profile update failed"), Err: err}
	}
	a.setUser(user)
	return nil
}

// ToggleDarkMode persists the flipped preference and applies it once the
// server has accepted it. On failure nothing changes locally.
func (a *authService) ToggleDarkMode(ctx context.Context) error {
	a.mu.RLock()
	loggedIn, next := a.user != nil, !a.darkMode
	a.mu.RUnlock()

	if !loggedIn {
		return common.ErrNotLoggedIn
	}

	user, err := a.api.UpdateMe(ctx, models.ProfileUpdate{DarkMode: &next})
	if err != nil {
		return &AuthError{Op: "toggle dark mode", Message: client.ErrorMessage(err, "Dark mode update failed"), Err: err}
	}
	a.setUser(user)
	return nil
}

// Refresh obtains a new access token with the persisted refresh token and
// attaches it.
func (a *authService) Refresh(ctx context.Context) error {
	access, err := a.refreshAccessToken(ctx)
	if err != nil {
		return err
	}
	a.api.SetAccessToken(access)
	return nil
}

func (a *authService) refreshAccessToken(ctx context.Context) (string, error) {
	repo := a.getCredentialsRepo()

	refresh, err := repo.Get(ctx, common.RefreshTokenKey)
	if err != nil {
		return "", fmt.Errorf("read credentials: %w", err)
	}
	if refresh == "" {
		return "", common.ErrNoRefreshToken
	}

	access, err := a.api.Refresh(ctx, refresh)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			return "", fmt.Errorf("%w: %v", common.ErrTokenExpired, err)
		}
		return "", fmt.Errorf("refresh error: %w", err)
	}

	if err := repo.Set(ctx, common.AccessTokenKey, access); err != nil {
		return "", fmt.Errorf("credentials saving error: %w", err)
	}
	return access, nil
}

func (a *authService) setUser(u *models.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = u
	a.darkMode = u.DarkMode
}

func (a *authService) State() State {
	a.mu.RLock()
	defer a.mu.RUnlock()

	s := State{Loading: a.loading, DarkMode: a.darkMode}
	if a.user != nil {
		u := *a.user
		s.User = &u
	}
	return s
}

// Ready is closed once Initialize has returned.
func (a *authService) Ready() <-chan struct{} {
	return a.ready
}

// Close releases the local credential store.
func (a *authService) Close(ctx context.Context) error {
	return a.db.Close()
}
