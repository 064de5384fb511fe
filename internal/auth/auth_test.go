package auth_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"loam/internal/auth"
	"loam/internal/database"
)

func newTestService(t *testing.T) *auth.Service {
	t.Helper()
	db, err := database.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, auth.InitSessionStore(strings.Repeat("k", 32)))
	return auth.NewService(auth.NewRepository(db))
}

func TestInitSessionStoreRejectsShortKey(t *testing.T) {
	require.Error(t, auth.InitSessionStore("too-short"))
}

func TestRegisterAndLogin(t *testing.T) {
	service := newTestService(t)

	user, err := service.RegisterUser("gardener", "The Gardener", "s3cret-passphrase")
	require.NoError(t, err)
	require.Equal(t, "gardener", user.Username)
	require.False(t, user.CreatedAt.IsZero())

	_, err = service.RegisterUser("gardener", "Imposter", "other")
	require.Error(t, err, "duplicate usernames must be rejected")

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/login", nil)
	loggedIn, err := service.Login(w, r, "gardener", "s3cret-passphrase")
	require.NoError(t, err)
	require.Equal(t, user.ID, loggedIn.ID)

	// The session cookie identifies the user on later requests.
	next := httptest.NewRequest("GET", "/", nil)
	for _, cookie := range w.Result().Cookies() {
		next.AddCookie(cookie)
	}
	current := service.GetCurrentUser(next)
	require.NotNil(t, current)
	require.Equal(t, "gardener", current.Username)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	service := newTestService(t)

	_, err := service.RegisterUser("gardener", "The Gardener", "s3cret-passphrase")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/login", nil)
	_, err = service.Login(w, r, "gardener", "wrong")
	require.Error(t, err)
}

func TestSessionCookieSecureOverTLS(t *testing.T) {
	service := newTestService(t)

	_, err := service.RegisterUser("gardener", "The Gardener", "s3cret-passphrase")
	require.NoError(t, err)

	// httptest marks requests with an https target as TLS.
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "https://garden.example/login", nil)
	_, err = service.Login(w, r, "gardener", "s3cret-passphrase")
	require.NoError(t, err)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	require.True(t, cookies[0].Secure)

	w2 := httptest.NewRecorder()
	r2 := httptest.NewRequest("POST", "/login", nil)
	_, err = service.Login(w2, r2, "gardener", "s3cret-passphrase")
	require.NoError(t, err)
	cookies = w2.Result().Cookies()
	require.NotEmpty(t, cookies)
	require.False(t, cookies[0].Secure)
}

func TestLogoutClearsSession(t *testing.T) {
	service := newTestService(t)

	_, err := service.RegisterUser("gardener", "The Gardener", "s3cret-passphrase")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/login", nil)
	_, err = service.Login(w, r, "gardener", "s3cret-passphrase")
	require.NoError(t, err)

	authed := httptest.NewRequest("GET", "/", nil)
	for _, cookie := range w.Result().Cookies() {
		authed.AddCookie(cookie)
	}

	w2 := httptest.NewRecorder()
	service.Logout(w2, authed)

	after := httptest.NewRequest("GET", "/", nil)
	for _, cookie := range w2.Result().Cookies() {
		after.AddCookie(cookie)
	}
	require.Nil(t, service.GetCurrentUser(after))
}
