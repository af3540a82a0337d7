package handlers

import (
	"TodoKeeper/internal/config"
	"TodoKeeper/internal/middleware"
	"TodoKeeper/internal/model"
	"TodoKeeper/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// TodoHandler обрабатывает CRUD задач.
type TodoHandler struct {
	TodoService *service.TodoService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewTodoHandler(todoService *service.TodoService, logger *zap.SugaredLogger, cfg *config.Config) *TodoHandler {
	return &TodoHandler{TodoService: todoService, Logger: logger, Config: cfg}
}

// todoRequest — тело create/update. DueDate: RFC3339 или null.
// null при update не очищает сохранённый срок (легаси-контракт).
type todoRequest struct {
	Text       string     `json:"text"`
	IsComplete bool       `json:"isComplete"`
	DueDate    *time.Time `json:"dueDate"`
}

type todoResponse struct {
	Message string      `json:"message"`
	Todo    *model.Todo `json:"todo"`
}

type todoListResponse struct {
	Message  string       `json:"message"`
	TodoList []model.Todo `json:"todoList"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// errDetail возвращает безопасную деталь ошибки для клиента:
// для ошибок хранилища — операцию, без текста драйвера.
func errDetail(err error) string {
	var pe *service.PersistenceError
	if errors.As(err, &pe) {
		return pe.Op
	}
	return err.Error()
}

// Create добавляет задачу текущему пользователю. 201 + созданная запись.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req todoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	todo, err := h.TodoService.Create(r.Context(), userID, req.Text, req.DueDate)
	if err != nil {
		h.Logger.Errorw("Create: service error", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Message: "Error in todo creation",
			Error:   errDetail(err),
		})
		return
	}

	writeJSON(w, http.StatusCreated, todoResponse{Message: "Todo created successfully", Todo: todo})
}

// Fetch возвращает задачи текущего пользователя по возрастанию срока.
func (h *TodoHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	list, err := h.TodoService.List(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("Fetch: service error", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Message: "Error fetching todo list",
			Error:   errDetail(err),
		})
		return
	}

	writeJSON(w, http.StatusOK, todoListResponse{Message: "Todo list fetched successfully", TodoList: list})
}

// Update применяет patch к задаче по id. Неизвестный id — 200 с
// todo=null (легаси-контракт), в строгом режиме — 404.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id := chi.URLParam(r, "id")

	var req todoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Update: invalid request body", "id", id, "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	todo, err := h.TodoService.Update(r.Context(), userID, id, service.UpdatePatch{
		Text:       req.Text,
		IsComplete: req.IsComplete,
		DueDate:    req.DueDate,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "Todo not found"})
			return
		}
		h.Logger.Errorw("Update: service error", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Message: "Error updating todo",
			Error:   errDetail(err),
		})
		return
	}

	writeJSON(w, http.StatusOK, todoResponse{Message: "Todo updated successfully", Todo: todo})
}

// Delete удаляет задачу по id. Неизвестный id — 404.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id := chi.URLParam(r, "id")

	todo, err := h.TodoService.Delete(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "Todo not found"})
			return
		}
		h.Logger.Errorw("Delete: service error", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Message: "Error deleting todo",
			Error:   errDetail(err),
		})
		return
	}

	writeJSON(w, http.StatusOK, todoResponse{Message: "Todo deleted successfully", Todo: todo})
}
