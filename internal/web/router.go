package web

import (
	"github.com/gorilla/mux"

	"gotodo/middleware"
)

func (h *WebHandler) SetupRoutes(m *middleware.Middleware) *mux.Router {
	r := mux.NewRouter()

	// Web pages
	r.HandleFunc("/", h.Index).Methods("GET")
	r.HandleFunc("/register", h.Register).Methods("GET", "POST")
	r.HandleFunc("/login", h.Login).Methods("GET", "POST")
	r.HandleFunc("/logout", m.RequirePage(h.Logout)).Methods("GET")
	r.HandleFunc("/todo", m.RequirePage(h.Todo)).Methods("GET", "POST")
	r.HandleFunc("/todo/done/{id:[0-9]+}", m.RequirePage(h.TodoDone)).Methods("GET")
	r.HandleFunc("/todo/delete/{id:[0-9]+}", m.RequirePage(h.TodoDelete)).Methods("GET")

	// JSON API endpoints
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.SetupCORS())
	api.HandleFunc("/todos", m.RequireAPI(h.APITodos)).Methods("GET")
	api.HandleFunc("/todos", m.RequireAPI(h.APICreateTodo)).Methods("POST")
	api.HandleFunc("/todos/{id:[0-9]+}", m.RequireAPI(h.APIUpdateTodo)).Methods("PUT")
	api.HandleFunc("/todos/{id:[0-9]+}", m.RequireAPI(h.APIDeleteTodo)).Methods("DELETE")

	return r
}
