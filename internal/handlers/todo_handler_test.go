package handlers_test

import (
	"TodoKeeper/internal/model"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestTodo_Create(t *testing.T) {
	m := new(mockTodoRepo)
	router := newTestRouter(t, nil, m)

	t.Run("created with defaults", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("Create", mock.Anything, mock.MatchedBy(func(todo *model.Todo) bool {
			return todo.UserID == 9 && todo.Text == "Buy milk" && !todo.IsComplete && todo.DueDate == nil
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Todo).ID = "t1"
		}).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/todo/create", strings.NewReader(`{"text":"Buy milk","dueDate":null}`))
		req.Header.Set("Content-Type", "application/json")
		addAuthCookie(t, req, 9, "test-secret")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var resp struct {
			Message string      `json:"message"`
			Todo    *model.Todo `json:"todo"`
		}
		_ = json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&resp)
		assert.Equal(t, "Todo created successfully", resp.Message)
		if assert.NotNil(t, resp.Todo) {
			assert.Equal(t, "t1", resp.Todo.ID)
			assert.False(t, resp.Todo.IsComplete)
		}
		m.AssertExpectations(t)
	})

	t.Run("unauthorized without token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/todo/create", strings.NewReader(`{"text":"x"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("storage failure is 500 with safe detail", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("Create", mock.Anything, mock.Anything).Return(assert.AnError).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/todo/create", strings.NewReader(`{"text":""}`))
		req.Header.Set("Content-Type", "application/json")
		addAuthCookie(t, req, 9, "test-secret")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		var resp struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		_ = json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&resp)
		assert.Equal(t, "Error in todo creation", resp.Message)
		// деталь — операция, не текст ошибки драйвера
		assert.Equal(t, "create todo", resp.Error)
	})
}

func TestTodo_Fetch(t *testing.T) {
	m := new(mockTodoRepo)
	router := newTestRouter(t, nil, m)

	due := time.Now().UTC().Add(time.Hour)
	m.On("ListByUser", mock.Anything, int64(9)).Return([]model.Todo{
		{ID: "a", UserID: 9, Text: "first", DueDate: &due},
		{ID: "b", UserID: 9, Text: "second"},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/todo/fetch", nil)
	addAuthCookie(t, req, 9, "test-secret")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Message  string       `json:"message"`
		TodoList []model.Todo `json:"todoList"`
	}
	_ = json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&resp)
	assert.Equal(t, "Todo list fetched successfully", resp.Message)
	assert.Len(t, resp.TodoList, 2)
	m.AssertExpectations(t)
}

func TestTodo_Update(t *testing.T) {
	m := new(mockTodoRepo)
	router := newTestRouter(t, nil, m)

	t.Run("ok", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("UpdateByID", mock.Anything, "t1", mock.MatchedBy(func(u map[string]any) bool {
			_, hasDue := u["due_date"]
			return u["text"] == "New" && u["is_complete"] == true && !hasDue
		})).Return(&model.Todo{ID: "t1", Text: "New", IsComplete: true}, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/todo/update/t1", strings.NewReader(`{"text":"New","isComplete":true,"dueDate":null}`))
		req.Header.Set("Content-Type", "application/json")
		addAuthCookie(t, req, 9, "test-secret")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		m.AssertExpectations(t)
	})

	// легаси-контракт: неизвестный id — 200 с todo=null, не 404
	t.Run("unknown id yields null todo", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("UpdateByID", mock.Anything, "missing", mock.Anything).Return(nil, gorm.ErrRecordNotFound).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/todo/update/missing", strings.NewReader(`{"text":"x","isComplete":false}`))
		req.Header.Set("Content-Type", "application/json")
		addAuthCookie(t, req, 9, "test-secret")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp map[string]any
		_ = json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&resp)
		todo, has := resp["todo"]
		assert.True(t, has)
		assert.Nil(t, todo)
	})
}

func TestTodo_Delete(t *testing.T) {
	m := new(mockTodoRepo)
	router := newTestRouter(t, nil, m)

	t.Run("ok returns prior state", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("DeleteByID", mock.Anything, "t1").Return(&model.Todo{ID: "t1", Text: "gone"}, nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/todo/delete/t1", nil)
		addAuthCookie(t, req, 9, "test-secret")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp struct {
			Todo *model.Todo `json:"todo"`
		}
		_ = json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&resp)
		if assert.NotNil(t, resp.Todo) {
			assert.Equal(t, "gone", resp.Todo.Text)
		}
		m.AssertExpectations(t)
	})

	// delete, в отличие от update, явно сообщает об отсутствии
	t.Run("unknown id is 404", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("DeleteByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/todo/delete/missing", nil)
		addAuthCookie(t, req, 9, "test-secret")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		var resp map[string]any
		_ = json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&resp)
		assert.Equal(t, "Todo not found", resp["message"])
	})
}
