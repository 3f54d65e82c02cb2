package services

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/devpair/internal/client/client"
	"github.com/dmitrijs2005/devpair/internal/client/models"
	"github.com/dmitrijs2005/devpair/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/devpair/internal/client/validation"
	"github.com/dmitrijs2005/devpair/internal/common"
	"github.com/dmitrijs2005/devpair/internal/logging"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "devpair.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func putCredential(t *testing.T, db *sql.DB, k, v string) {
	t.Helper()
	require.NoError(t, credentials.NewSQLiteRepository(db).Set(context.Background(), k, v))
}

func getCredential(t *testing.T, db *sql.DB, k string) string {
	t.Helper()
	v, err := credentials.NewSQLiteRepository(db).Get(context.Background(), k)
	require.NoError(t, err)
	return v
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := tok.SignedString([]byte("secret"))
	require.NoError(t, err)
	return s
}

// ---- fake api ----

type fakeAuthAPI struct {
	LoginRet    *models.AuthResponse
	LoginErr    error
	RegisterRet *models.AuthResponse
	RegisterErr error
	LogoutErr   error
	MeRet       *models.User
	MeErr       error
	RefreshRet  string
	RefreshErr  error
	UpdateRet   *models.User
	UpdateErr   error

	Token string

	LoginCalls    int
	RegisterCalls int
	LogoutCalls   int
	MeCalls       int

	LastLoginUser     string
	LastLoginPassword string
	LastRegister      models.RegisterRequest
	LastRefreshToken  string
	LastUpdate        models.ProfileUpdate
}

func (f *fakeAuthAPI) SetAccessToken(token string) { f.Token = token }
func (f *fakeAuthAPI) ClearAccessToken()           { f.Token = "" }

func (f *fakeAuthAPI) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	f.LoginCalls++
	f.LastLoginUser, f.LastLoginPassword = username, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeAuthAPI) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	f.RegisterCalls++
	f.LastRegister = req
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeAuthAPI) Logout(ctx context.Context) error {
	f.LogoutCalls++
	return f.LogoutErr
}

func (f *fakeAuthAPI) Me(ctx context.Context) (*models.User, error) {
	f.MeCalls++
	return f.MeRet, f.MeErr
}

func (f *fakeAuthAPI) Refresh(ctx context.Context, refreshToken string) (string, error) {
	f.LastRefreshToken = refreshToken
	return f.RefreshRet, f.RefreshErr
}

func (f *fakeAuthAPI) UpdateMe(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	f.LastUpdate = upd
	return f.UpdateRet, f.UpdateErr
}

func newService(t *testing.T, api *fakeAuthAPI) (*authService, *sql.DB) {
	t.Helper()
	db := setupDB(t)
	svc := NewAuthService(api, db, logging.Discard()).(*authService)
	return svc, db
}

func validRegisterForm() validation.RegisterForm {
	return validation.RegisterForm{
		Username:        "alice_01",
		Email:           "alice@example.com",
		FullName:        "Alice",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		ExperienceLevel: "intermediate",
	}
}

// ---- TESTS ----

func TestNewAuthService_StartsLoading(t *testing.T) {
	svc, _ := newService(t, &fakeAuthAPI{})

	st := svc.State()
	assert.True(t, st.Loading)
	assert.Nil(t, st.User)

	select {
	case <-svc.Ready():
		t.Fatal("ready before Initialize")
	default:
	}
}

func TestInitialize_NoToken(t *testing.T) {
	api := &fakeAuthAPI{}
	svc, _ := newService(t, api)

	require.NoError(t, svc.Initialize(context.Background()))

	st := svc.State()
	assert.False(t, st.Loading)
	assert.Nil(t, st.User)
	assert.Zero(t, api.MeCalls)

	select {
	case <-svc.Ready():
	default:
		t.Fatal("Ready not closed after Initialize")
	}
}

func TestInitialize_RestoresSession(t *testing.T) {
	api := &fakeAuthAPI{MeRet: &models.User{ID: 7, Username: "alice", DarkMode: true}}
	svc, db := newService(t, api)
	putCredential(t, db, common.AccessTokenKey, "opaque-token")

	require.NoError(t, svc.Initialize(context.Background()))

	st := svc.State()
	require.NotNil(t, st.User)
	assert.Equal(t, "alice", st.User.Username)
	assert.True(t, st.DarkMode)
	assert.False(t, st.Loading)
	assert.Equal(t, "opaque-token", api.Token)
}

func TestInitialize_MeFailsClearsSession(t *testing.T) {
	api := &fakeAuthAPI{MeErr: &client.APIError{Status: 401}}
	svc, db := newService(t, api)
	putCredential(t, db, common.AccessTokenKey, "stale")
	putCredential(t, db, common.RefreshTokenKey, "r")

	require.NoError(t, svc.Initialize(context.Background()))

	st := svc.State()
	assert.Nil(t, st.User)
	assert.False(t, st.Loading)
	assert.Empty(t, api.Token)
	assert.Equal(t, 1, api.LogoutCalls)
	assert.Empty(t, getCredential(t, db, common.AccessTokenKey))
	assert.Empty(t, getCredential(t, db, common.RefreshTokenKey))
}

func TestInitialize_ExpiredTokenIsRefreshed(t *testing.T) {
	api := &fakeAuthAPI{
		RefreshRet: "fresh",
		MeRet:      &models.User{ID: 1, Username: "bob"},
	}
	svc, db := newService(t, api)
	putCredential(t, db, common.AccessTokenKey, signedToken(t, time.Now().Add(-time.Hour)))
	putCredential(t, db, common.RefreshTokenKey, "refresh-1")

	require.NoError(t, svc.Initialize(context.Background()))

	assert.Equal(t, "refresh-1", api.LastRefreshToken)
	assert.Equal(t, "fresh", api.Token)
	assert.Equal(t, "fresh", getCredential(t, db, common.AccessTokenKey))
	require.NotNil(t, svc.State().User)
}

func TestInitialize_ExpiredTokenWithoutRefreshLogsOut(t *testing.T) {
	api := &fakeAuthAPI{}
	svc, db := newService(t, api)
	putCredential(t, db, common.AccessTokenKey, signedToken(t, time.Now().Add(-time.Hour)))

	require.NoError(t, svc.Initialize(context.Background()))

	assert.Zero(t, api.MeCalls)
	assert.Nil(t, svc.State().User)
	assert.Empty(t, getCredential(t, db, common.AccessTokenKey))
}

func TestLogin_PersistsTokensAndUser(t *testing.T) {
	user := models.User{ID: 3, Username: "carol", Email: "c@example.com", DarkMode: true}
	api := &fakeAuthAPI{LoginRet: &models.AuthResponse{AccessToken: "a1", RefreshToken: "r1", User: user}}
	svc, db := newService(t, api)

	require.NoError(t, svc.Login(context.Background(), "carol", []byte("pw")))

	assert.Equal(t, "carol", api.LastLoginUser)
	assert.Equal(t, "pw", api.LastLoginPassword)
	assert.Equal(t, "a1", api.Token)
	assert.Equal(t, "a1", getCredential(t, db, common.AccessTokenKey))
	assert.Equal(t, "r1", getCredential(t, db, common.RefreshTokenKey))

	st := svc.State()
	require.NotNil(t, st.User)
	assert.Equal(t, user, *st.User)
	assert.True(t, st.DarkMode)
}

func TestLogin_FailureLeavesStateUntouched(t *testing.T) {
	api := &fakeAuthAPI{LoginErr: &client.APIError{Status: 401, Message: "Invalid credentials"}}
	svc, db := newService(t, api)
	putCredential(t, db, common.AccessTokenKey, "old")

	err := svc.Login(context.Background(), "carol", []byte("bad"))
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "password", authErr.Field)
	assert.Equal(t, "Invalid credentials", authErr.Message)
	assert.ErrorIs(t, err, client.ErrUnauthorized)

	assert.Equal(t, "old", getCredential(t, db, common.AccessTokenKey))
	assert.Nil(t, svc.State().User)
	assert.Empty(t, api.Token)
}

func TestLogin_FallbackMessage(t *testing.T) {
	api := &fakeAuthAPI{LoginErr: client.ErrUnavailable}
	svc, _ := newService(t, api)

	err := svc.Login(context.Background(), "carol", []byte("pw"))

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Login failed", authErr.Message)
}

func TestLogout_ClearsEvenWhenServerFails(t *testing.T) {
	api := &fakeAuthAPI{
		LoginRet:  &models.AuthResponse{AccessToken: "a", RefreshToken: "r", User: models.User{ID: 1, DarkMode: true}},
		LogoutErr: errors.New("boom"),
	}
	svc, db := newService(t, api)
	require.NoError(t, svc.Login(context.Background(), "u", []byte("p")))

	require.NoError(t, svc.Logout(context.Background()))

	st := svc.State()
	assert.Nil(t, st.User)
	assert.False(t, st.DarkMode)
	assert.Empty(t, api.Token)
	assert.Empty(t, getCredential(t, db, common.AccessTokenKey))
	assert.Empty(t, getCredential(t, db, common.RefreshTokenKey))
}

func TestRegister_InvalidFormMakesNoRequest(t *testing.T) {
	api := &fakeAuthAPI{}
	svc, _ := newService(t, api)

	form := validRegisterForm()
	form.ConfirmPassword = "different"

	err := svc.Register(context.Background(), form)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Passwords must match", verrs["confirm_password"])
	assert.Zero(t, api.RegisterCalls)
}

func TestRegister_ServerErrorFieldMapping(t *testing.T) {
	tests := []struct {
		name    string
		message string
		field   string
	}{
		{"username", "Username already exists", "username"},
		{"email", "Email already registered", "email"},
		{"other", "Something odd", "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAuthAPI{RegisterErr: &client.APIError{Status: 400, Message: tt.message}}
			svc, _ := newService(t, api)

			err := svc.Register(context.Background(), validRegisterForm())

			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.field, authErr.Field)
			assert.Equal(t, tt.message, authErr.Message)
		})
	}
}

func TestRegister_StartsSession(t *testing.T) {
	api := &fakeAuthAPI{RegisterRet: &models.AuthResponse{
		AccessToken: "a", RefreshToken: "r", User: models.User{ID: 9, Username: "alice_01"},
	}}
	svc, db := newService(t, api)

	require.NoError(t, svc.Register(context.Background(), validRegisterForm()))

	assert.Equal(t, "alice_01", api.LastRegister.Username)
	assert.Equal(t, "secret1", api.LastRegister.Password)
	assert.Equal(t, "r", getCredential(t, db, common.RefreshTokenKey))
	require.NotNil(t, svc.State().User)
	assert.Equal(t, int64(9), svc.State().User.ID)
}

func TestUpdateProfile_ReplacesIdentity(t *testing.T) {
	api := &fakeAuthAPI{
		LoginRet:  &models.AuthResponse{AccessToken: "a", RefreshToken: "r", User: models.User{ID: 1, FullName: "Old", Bio: "bio"}},
		UpdateRet: &models.User{ID: 1, FullName: "New"},
	}
	svc, _ := newService(t, api)
	require.NoError(t, svc.Login(context.Background(), "u", []byte("p")))

	name := "New"
	require.NoError(t, svc.UpdateProfile(context.Background(), models.ProfileUpdate{FullName: &name}))

	u := svc.State().User
	require.NotNil(t, u)
	assert.Equal(t, "New", u.FullName)
	assert.Empty(t, u.Bio)
}

func TestUpdateProfile_Failure(t *testing.T) {
	api := &fakeAuthAPI{UpdateErr: &client.APIError{Status: 500}}
	svc, _ := newService(t, api)

	err := svc.UpdateProfile(context.Background(), models.ProfileUpdate{})

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Profile update failed", authErr.Message)
	assert.ErrorIs(t, err, client.ErrUnavailable)
}

func TestToggleDarkMode(t *testing.T) {
	api := &fakeAuthAPI{
		LoginRet:  &models.AuthResponse{AccessToken: "a", RefreshToken: "r", User: models.User{ID: 1}},
		UpdateRet: &models.User{ID: 1, DarkMode: true},
	}
	svc, _ := newService(t, api)
	require.NoError(t, svc.Login(context.Background(), "u", []byte("p")))

	require.NoError(t, svc.ToggleDarkMode(context.Background()))

	require.NotNil(t, api.LastUpdate.DarkMode)
	assert.True(t, *api.LastUpdate.DarkMode)
	assert.True(t, svc.State().DarkMode)
}

func TestToggleDarkMode_FailureKeepsFlag(t *testing.T) {
	api := &fakeAuthAPI{
		LoginRet:  &models.AuthResponse{AccessToken: "a", RefreshToken: "r", User: models.User{ID: 1}},
		UpdateErr: errors.New("network"),
	}
	svc, _ := newService(t, api)
	require.NoError(t, svc.Login(context.Background(), "u", []byte("p")))

	require.Error(t, svc.ToggleDarkMode(context.Background()))
	assert.False(t, svc.State().DarkMode)
}

func TestToggleDarkMode_NotLoggedIn(t *testing.T) {
	svc, _ := newService(t, &fakeAuthAPI{})
	require.ErrorIs(t, svc.ToggleDarkMode(context.Background()), common.ErrNotLoggedIn)
}

func TestRefresh(t *testing.T) {
	api := &fakeAuthAPI{RefreshRet: "new-access"}
	svc, db := newService(t, api)
	putCredential(t, db, common.RefreshTokenKey, "r1")

	require.NoError(t, svc.Refresh(context.Background()))

	assert.Equal(t, "r1", api.LastRefreshToken)
	assert.Equal(t, "new-access", api.Token)
	assert.Equal(t, "new-access", getCredential(t, db, common.AccessTokenKey))
}

func TestRefresh_NoToken(t *testing.T) {
	svc, _ := newService(t, &fakeAuthAPI{})
	require.ErrorIs(t, svc.Refresh(context.Background()), common.ErrNoRefreshToken)
}

func TestRefresh_Rejected(t *testing.T) {
	api := &fakeAuthAPI{RefreshErr: &client.APIError{Status: 401}}
	svc, db := newService(t, api)
	putCredential(t, db, common.RefreshTokenKey, "r1")

	require.ErrorIs(t, svc.Refresh(context.Background()), common.ErrTokenExpired)
	assert.Empty(t, api.Token)
}

func TestState_ReturnsCopy(t *testing.T) {
	api := &fakeAuthAPI{LoginRet: &models.AuthResponse{AccessToken: "a", RefreshToken: "r", User: models.User{ID: 1, Username: "u"}}}
	svc, _ := newService(t, api)
	require.NoError(t, svc.Login(context.Background(), "u", []byte("p")))

	st := svc.State()
	st.User.Username = "changed"

	assert.Equal(t, "u", svc.State().User.Username)
}

func TestLogin_EmptySuccessBodyStartsNoSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{}"))
	}))
	t.Cleanup(srv.Close)

	api, err := client.NewHTTPClient(srv.URL)
	require.NoError(t, err)
	db := setupDB(t)
	svc := NewAuthService(api, db, logging.Discard())

	err = svc.Login(context.Background(), "alice", []byte("pw"))

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Login failed", authErr.Message)
	assert.ErrorIs(t, err, errIncompleteResponse)
	assert.Nil(t, svc.State().User)
	assert.Empty(t, api.AccessToken())
	assert.Empty(t, getCredential(t, db, common.AccessTokenKey))
}

func TestLogin_IncompleteResponse(t *testing.T) {
	tests := []struct {
		name string
		resp *models.AuthResponse
	}{
		{"no token", &models.AuthResponse{RefreshToken: "r", User: models.User{ID: 1, Username: "carol"}}},
		{"no identity", &models.AuthResponse{AccessToken: "a", RefreshToken: "r"}},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAuthAPI{LoginRet: tt.resp}
			svc, db := newService(t, api)
			putCredential(t, db, common.AccessTokenKey, "old")

			err := svc.Login(context.Background(), "carol", []byte("pw"))

			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, "login", authErr.Op)
			assert.Equal(t, "Login failed", authErr.Message)
			assert.Nil(t, svc.State().User)
			assert.Empty(t, api.Token)
			assert.Equal(t, "old", getCredential(t, db, common.AccessTokenKey))
			assert.Empty(t, getCredential(t, db, common.RefreshTokenKey))
		})
	}
}

func TestRegister_IncompleteResponse(t *testing.T) {
	api := &fakeAuthAPI{RegisterRet: &models.AuthResponse{}}
	svc, db := newService(t, api)

	err := svc.Register(context.Background(), validRegisterForm())

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Registration failed", authErr.Message)
	assert.ErrorIs(t, err, errIncompleteResponse)
	assert.Nil(t, svc.State().User)
	assert.Empty(t, getCredential(t, db, common.AccessTokenKey))
}

func TestInitialize_EmptyIdentityClearsSession(t *testing.T) {
	for name, me := range map[string]*models.User{
		"zero user": {},
		"nil user":  nil,
	} {
		t.Run(name, func(t *testing.T) {
			api := &fakeAuthAPI{MeRet: me}
			svc, db := newService(t, api)
			putCredential(t, db, common.AccessTokenKey, "opaque-token")
			putCredential(t, db, common.RefreshTokenKey, "r")

			require.NoError(t, svc.Initialize(context.Background()))

			st := svc.State()
			assert.Nil(t, st.User)
			assert.False(t, st.Loading)
			assert.Empty(t, api.Token)
			assert.Equal(t, 1, api.LogoutCalls)
			assert.Empty(t, getCredential(t, db, common.AccessTokenKey))
			assert.Empty(t, getCredential(t, db, common.RefreshTokenKey))
		})
	}
}
