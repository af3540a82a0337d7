package handlers

import (
	"TodoKeeper/internal/config"
	"TodoKeeper/internal/middleware"
	"TodoKeeper/internal/service"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию, вход и выход пользователя.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type credentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Register регистрирует пользователя и сразу логинит его (ставит куку).
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Login == "" || req.Password == "" {
		http.Error(w, "login and password required", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrLoginTaken) {
			writeJSON(w, http.StatusConflict, map[string]any{"message": "Login already taken"})
			return
		}
		h.Logger.Errorw("Register: service error", "login", req.Login, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"message": "Error in user registration",
			"error":   errDetail(err),
		})
		return
	}

	if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Register: failed to set cookie", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Registered successfully"})
}

// Login проверяет учётные данные и ставит auth-куку.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Invalid login or password"})
			return
		}
		h.Logger.Errorw("Login: service error", "login", req.Login, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"message": "Error in user login",
			"error":   errDetail(err),
		})
		return
	}

	if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Login: failed to set cookie", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Logged in successfully"})
}

// Logout сбрасывает auth-куку.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearLoginCookie(w)
	writeJSON(w, http.StatusOK, map[string]any{"message": "Logged out successfully"})
}

// Status отладочный эндпоинт: кто я по мнению сервера.
func (h *UserHandler) Status(w http.ResponseWriter, r *http.Request) {
	result := "anonymous"
	if uid, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		result = fmt.Sprintf("User ID = %d", uid)
	}
	writeJSON(w, http.StatusOK, map[string]any{"result": result})
}
