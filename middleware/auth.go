package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"gotodo/internal/auth"
	"gotodo/internal/user"
	"gotodo/models"
)

type contextKey string

const userContextKey contextKey = "user"

// Middleware resolves the session identity before a protected handler runs.
// Pages redirect anonymous requests to the login form; API routes answer with
// 401 JSON. Handlers behind a guard read the identity from the request
// context only.
type Middleware struct {
	sessions *auth.SessionManager
	users    *user.Service
}

func NewMiddleware(sessions *auth.SessionManager, users *user.Service) *Middleware {
	return &Middleware{sessions: sessions, users: users}
}

// resolve returns the authenticated user for the request, or nil. A session
// bound to a user that no longer exists counts as anonymous.
func (m *Middleware) resolve(r *http.Request) *models.User {
	userID := m.sessions.UserID(r)
	if userID == "" {
		return nil
	}
	u, err := m.users.GetByID(r.Context(), userID)
	if err != nil {
		return nil
	}
	return u
}

// RequirePage guards a server-rendered route
func (m *Middleware) RequirePage(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u := m.resolve(r)
		if u == nil {
			m.sessions.AddFlash(w, r, "Please log in to continue.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), u)))
	}
}

// RequireAPI guards a JSON route
func (m *Middleware) RequireAPI(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u := m.resolve(r)
		if u == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "authentication required"})
			return
		}
		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), u)))
	}
}

func withUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, u)
}

// UserFromContext returns the authenticated user placed by a guard, or nil.
func UserFromContext(ctx context.Context) *models.User {
	u, _ := ctx.Value(userContextKey).(*models.User)
	return u
}
