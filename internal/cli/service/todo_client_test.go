package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"TodoKeeper/internal/cli/model"
	"TodoKeeper/internal/config"
)

func newTestClient(t *testing.T, handler http.Handler) *TodoClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokenPath := filepath.Join(t.TempDir(), "auth_token")
	if err := os.WriteFile(tokenPath, []byte("tok-1"), 0o600); err != nil {
		t.Fatalf("write token: %v", err)
	}
	cfg := &config.Config{ServerURL: srv.URL, TokenFile: tokenPath}

	c, err := NewTodoClient(cfg)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestTodoClient_Fetch(t *testing.T) {
	due := time.Date(2026, 9, 2, 17, 0, 0, 0, time.UTC)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/todo/fetch" || r.Method != http.MethodGet {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		// токен должен уходить в auth-куке
		if c, err := r.Cookie("auth_token"); err != nil || c.Value != "tok-1" {
			t.Fatalf("auth cookie missing or wrong")
		}
		_ = json.NewEncoder(w).Encode(model.TodoListResponse{
			Message: "Todo list fetched successfully",
			TodoList: []model.Todo{
				{ID: "t1", Text: "first", DueDate: &due},
			},
		})
	}))

	list, err := client.Fetch()
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(list) != 1 || list[0].Text != "first" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestTodoClient_Unauthorized(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))

	_, err := client.Fetch()
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

// Легаси-ответ сервера на update по неизвестному id: 200 с todo=null.
// Клиент переводит его в ErrTodoNotFound.
func TestTodoClient_Update_NullTodo(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Fatalf("expected PUT, got %s", r.Method)
		}
		_ = json.NewEncoder(w).Encode(model.TodoResponse{Message: "Todo updated successfully", Todo: nil})
	}))

	_, err := client.Update("missing", "x", false, nil)
	if !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
}

func TestTodoClient_Delete_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "Todo not found"})
	}))

	_, err := client.Delete("missing")
	if !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
}
