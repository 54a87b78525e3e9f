package auth

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "gotodo-session"

// SessionManager wraps the cookie store that carries the login session and
// flash messages. The cookie is authenticated by the store, so its contents
// cannot be tampered with by the client.
type SessionManager struct {
	store *sessions.CookieStore
}

func NewSessionManager(secret string) *SessionManager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30, // 30 days
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	return &SessionManager{store: store}
}

// SignIn binds the session cookie to userID.
func (m *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, userID string) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values["user_id"] = userID
	return session.Save(r, w)
}

// UserID returns the identity bound to the request's session cookie, or ""
// when the request is anonymous.
func (m *SessionManager) UserID(r *http.Request) string {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		return ""
	}
	userID, _ := session.Values["user_id"].(string)
	return userID
}

// SignOut clears the session so subsequent requests with the same cookie
// resolve as anonymous.
func (m *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// AddFlash queues a one-shot message for the next rendered page.
func (m *SessionManager) AddFlash(w http.ResponseWriter, r *http.Request, message string) {
	session, _ := m.store.Get(r, sessionName)
	session.AddFlash(message)
	_ = session.Save(r, w)
}

// Flashes drains the queued messages.
func (m *SessionManager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	session, _ := m.store.Get(r, sessionName)
	raw := session.Flashes()
	if len(raw) > 0 {
		_ = session.Save(r, w)
	}
	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
