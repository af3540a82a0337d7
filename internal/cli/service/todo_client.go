package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"TodoKeeper/internal/cli/api"
	"TodoKeeper/internal/cli/auth"
	"TodoKeeper/internal/cli/model"
	"TodoKeeper/internal/config"
)

// ErrUnauthorized — сервер не принял токен: сессия истекла или логина не было.
var ErrUnauthorized = errors.New("not logged in (run: tdcli login <login> <password>)")

// ErrTodoNotFound — сервер ответил 404 на операцию с задачей.
var ErrTodoNotFound = errors.New("todo not found on server")

// TodoClient — REST-клиент задач поверх API сервера.
type TodoClient struct {
	baseURL string
	token   string
}

// NewTodoClient создаёт клиента с сохранённым auth-токеном.
func NewTodoClient(cfg *config.Config) (*TodoClient, error) {
	token, err := auth.LoadToken(cfg)
	if err != nil {
		return nil, ErrUnauthorized
	}
	return &TodoClient{
		baseURL: strings.TrimRight(cfg.ServerURL, "/"),
		token:   token,
	}, nil
}

// todoPayload — тело create/update. Сервер всегда применяет text и
// isComplete как есть; dueDate=null сохранённый срок не очищает.
type todoPayload struct {
	Text       string     `json:"text"`
	IsComplete bool       `json:"isComplete"`
	DueDate    *time.Time `json:"dueDate"`
}

// Fetch возвращает задачи пользователя (сервер сортирует по сроку).
func (c *TodoClient) Fetch() ([]model.Todo, error) {
	resp, body, err := api.GetJSON(c.baseURL+"/api/todo/fetch", c.token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if err := c.checkStatus(resp, body, http.StatusOK); err != nil {
		return nil, err
	}
	var lr model.TodoListResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return lr.TodoList, nil
}

// Create добавляет задачу, опционально со сроком.
func (c *TodoClient) Create(text string, due *time.Time) (*model.Todo, error) {
	payload := todoPayload{Text: text, DueDate: due}
	resp, body, err := api.PostJSON(c.baseURL+"/api/todo/create", payload, c.token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if err := c.checkStatus(resp, body, http.StatusCreated); err != nil {
		return nil, err
	}
	return decodeTodo(body)
}

// Update перезаписывает text и isComplete; due задаёт новый срок,
// nil оставляет прежний.
func (c *TodoClient) Update(id, text string, isComplete bool, due *time.Time) (*model.Todo, error) {
	payload := todoPayload{Text: text, IsComplete: isComplete, DueDate: due}
	resp, body, err := api.PutJSON(c.baseURL+"/api/todo/update/"+id, payload, c.token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if err := c.checkStatus(resp, body, http.StatusOK); err != nil {
		return nil, err
	}
	tr, err := decodeTodo(body)
	if err != nil {
		return nil, err
	}
	// легаси-контракт сервера: неизвестный id — это 200 с todo=null
	if tr == nil {
		return nil, ErrTodoNotFound
	}
	return tr, nil
}

// Toggle переключает признак выполнения задачи.
func (c *TodoClient) Toggle(t model.Todo) (*model.Todo, error) {
	return c.Update(t.ID, t.Text, !t.IsComplete, nil)
}

// Delete удаляет задачу и возвращает её прежнее состояние.
func (c *TodoClient) Delete(id string) (*model.Todo, error) {
	resp, body, err := api.Delete(c.baseURL+"/api/todo/delete/"+id, c.token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if err := c.checkStatus(resp, body, http.StatusOK); err != nil {
		return nil, err
	}
	return decodeTodo(body)
}

func (c *TodoClient) checkStatus(resp *http.Response, body []byte, want int) error {
	switch resp.StatusCode {
	case want:
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrTodoNotFound
	default:
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

func decodeTodo(body []byte) (*model.Todo, error) {
	var tr model.TodoResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return tr.Todo, nil
}
