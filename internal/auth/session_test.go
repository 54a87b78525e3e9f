package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestWithCookies builds a follow-up request carrying the cookies a prior
// response set, the way a browser would.
func requestWithCookies(resp *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range resp.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestSessionManager_SignInAndResolve(t *testing.T) {
	m := NewSessionManager("test-secret")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", nil)
	require.NoError(t, m.SignIn(rec, req, "user-42"))

	next := requestWithCookies(rec)
	assert.Equal(t, "user-42", m.UserID(next))
}

func TestSessionManager_AnonymousWithoutCookie(t *testing.T) {
	m := NewSessionManager("test-secret")

	req := httptest.NewRequest("GET", "/", nil)
	assert.Equal(t, "", m.UserID(req))
}

func TestSessionManager_TamperedCookieIsAnonymous(t *testing.T) {
	m := NewSessionManager("test-secret")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", nil)
	require.NoError(t, m.SignIn(rec, req, "user-42"))

	// A cookie minted under a different secret does not validate
	other := NewSessionManager("another-secret")
	next := requestWithCookies(rec)
	assert.Equal(t, "", other.UserID(next))
}

func TestSessionManager_SignOut(t *testing.T) {
	m := NewSessionManager("test-secret")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", nil)
	require.NoError(t, m.SignIn(rec, req, "user-42"))

	signedIn := requestWithCookies(rec)
	outRec := httptest.NewRecorder()
	require.NoError(t, m.SignOut(outRec, signedIn))

	after := requestWithCookies(outRec)
	assert.Equal(t, "", m.UserID(after))
}

func TestSessionManager_Flashes(t *testing.T) {
	m := NewSessionManager("test-secret")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	m.AddFlash(rec, req, "hello")

	next := requestWithCookies(rec)
	nextRec := httptest.NewRecorder()
	assert.Equal(t, []string{"hello"}, m.Flashes(nextRec, next))

	// Drained after the first read
	again := requestWithCookies(nextRec)
	assert.Empty(t, m.Flashes(httptest.NewRecorder(), again))
}
