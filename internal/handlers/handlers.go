package handlers

import (
	"TodoKeeper/internal/config"
	"TodoKeeper/internal/middleware"
	"TodoKeeper/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	todoService *service.TodoService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	todoHandler := NewTodoHandler(todoService, logger, config)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Get("/api/user/logout", userHandler.Logout)
	r.Post("/api/user/test", userHandler.Status)

	// Todo routes
	r.Post("/api/todo/create", todoHandler.Create)
	r.Get("/api/todo/fetch", todoHandler.Fetch)
	r.Put("/api/todo/update/{id}", todoHandler.Update)
	r.Delete("/api/todo/delete/{id}", todoHandler.Delete)

	return &Handler{Router: r}
}

// writeJSON пишет JSON-ответ с указанным статусом.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
