package http

import (
	"net/http"

	"todoweb/internal/http/handler"
	"todoweb/internal/middleware"
	"todoweb/internal/service"
	"todoweb/internal/session"
)

func NewRouter(authSvc *service.AuthService, todoSvc *service.TodoService, sessions *session.Store) http.Handler {
	mux := http.NewServeMux()

	// Health check stays outside /api for load-balancer probes.
	health := handler.NewHealthHandler()
	mux.Handle("/health", health)

	authHandler := handler.NewAuthHandler(authSvc, sessions)
	mux.HandleFunc("/api/auth/register", authHandler.Register)
	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.HandleFunc("/api/auth/logout", authHandler.Logout)

	// Every todo route resolves the session before touching the store.
	todoHandler := handler.NewTodoHandler(todoSvc)
	requireSession := middleware.RequireSession(sessions)
	mux.Handle("/api/todos", requireSession(todoHandler))
	mux.Handle("/api/todos/", requireSession(todoHandler))

	return mux
}
