package web

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"gotodo/internal/auth"
	"gotodo/internal/config"
	"gotodo/internal/todo"
	"gotodo/internal/user"
	"gotodo/middleware"
	"gotodo/models"
)

type WebHandler struct {
	userService *user.Service
	todoService *todo.Service
	sessions    *auth.SessionManager
	templates   *template.Template
	config      *config.Config
}

type PageData struct {
	Page     string
	User     *models.User
	Error    string
	Username string
	Flashes  []string
	Todos    []*models.Todo
}

func NewWebHandler(
	userService *user.Service,
	todoService *todo.Service,
	sessions *auth.SessionManager,
	cfg *config.Config,
) *WebHandler {
	funcMap := template.FuncMap{
		"formatTime": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("2006-01-02 15:04")
		},
	}

	pattern := filepath.Join(cfg.TemplatesDir, "*.html")
	tmpl, err := template.New("").Funcs(funcMap).ParseGlob(pattern)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse templates: %v", err))
	}

	return &WebHandler{
		userService: userService,
		todoService: todoService,
		sessions:    sessions,
		templates:   tmpl,
		config:      cfg,
	}
}

func (h *WebHandler) render(w http.ResponseWriter, name string, data PageData) {
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Page Handlers

func (h *WebHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html", PageData{
		Page:    "index",
		Flashes: h.sessions.Flashes(w, r),
	})
}

func (h *WebHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, "register.html", PageData{Page: "register"})
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	confirm := r.FormValue("confirm_password")

	if password != confirm {
		h.render(w, "register.html", PageData{
			Page:     "register",
			Error:    "Passwords do not match.",
			Username: username,
		})
		return
	}

	_, err := h.userService.Register(r.Context(), username, password)
	if err != nil {
		msg := "Registration failed. Please try again."
		switch {
		case errors.Is(err, user.ErrDuplicateUsername):
			msg = "This username is already taken."
		case errors.Is(err, user.ErrInvalidUsername), errors.Is(err, user.ErrInvalidPassword):
			msg = err.Error()
		}
		h.render(w, "register.html", PageData{
			Page:     "register",
			Error:    msg,
			Username: username,
		})
		return
	}

	h.sessions.AddFlash(w, r, "Successfully registered! Please log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *WebHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, "login.html", PageData{
			Page:    "login",
			Flashes: h.sessions.Flashes(w, r),
		})
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	u, err := h.userService.Authenticate(r.Context(), username, password)
	if err != nil {
		h.render(w, "login.html", PageData{
			Page:     "login",
			Error:    "Invalid username or password.",
			Username: username,
		})
		return
	}

	if err := h.sessions.SignIn(w, r, u.ID); err != nil {
		http.Error(w, "failed to start session", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/todo", http.StatusSeeOther)
}

func (h *WebHandler) Logout(w http.ResponseWriter, r *http.Request) {
	_ = h.sessions.SignOut(w, r)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *WebHandler) Todo(w http.ResponseWriter, r *http.Request) {
	u := middleware.UserFromContext(r.Context())

	if r.Method == http.MethodPost {
		title := r.FormValue("title")
		if _, err := h.todoService.Create(r.Context(), u.ID, title); err != nil {
			if errors.Is(err, todo.ErrInvalidTitle) {
				h.sessions.AddFlash(w, r, "A task needs a title.")
			} else {
				http.Error(w, "failed to create task", http.StatusInternalServerError)
				return
			}
		}
		http.Redirect(w, r, "/todo", http.StatusSeeOther)
		return
	}

	todos, err := h.todoService.List(r.Context(), u.ID)
	if err != nil {
		http.Error(w, "failed to load tasks", http.StatusInternalServerError)
		return
	}

	h.render(w, "todo.html", PageData{
		Page:    "todo",
		User:    u,
		Todos:   todos,
		Flashes: h.sessions.Flashes(w, r),
	})
}

func (h *WebHandler) TodoDone(w http.ResponseWriter, r *http.Request) {
	u := middleware.UserFromContext(r.Context())
	id := pathID(r)

	if err := h.todoService.MarkDone(r.Context(), u.ID, id); err != nil {
		if errors.Is(err, todo.ErrNotFound) {
			h.sessions.AddFlash(w, r, "Task not found.")
		} else {
			http.Error(w, "failed to update task", http.StatusInternalServerError)
			return
		}
	}

	http.Redirect(w, r, "/todo", http.StatusSeeOther)
}

func (h *WebHandler) TodoDelete(w http.ResponseWriter, r *http.Request) {
	u := middleware.UserFromContext(r.Context())
	id := pathID(r)

	if err := h.todoService.Delete(r.Context(), u.ID, id); err != nil {
		if errors.Is(err, todo.ErrNotFound) {
			h.sessions.AddFlash(w, r, "Task not found.")
		} else {
			http.Error(w, "failed to delete task", http.StatusInternalServerError)
			return
		}
	}

	http.Redirect(w, r, "/todo", http.StatusSeeOther)
}

// pathID extracts the {id} route variable. The route pattern restricts it to
// digits, so parsing cannot fail for matched requests.
func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}
