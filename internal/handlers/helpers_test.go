package handlers_test

import (
	"TodoKeeper/internal/config"
	"TodoKeeper/internal/handlers"
	"TodoKeeper/internal/middleware"
	"TodoKeeper/internal/model"
	"TodoKeeper/internal/repo"
	"TodoKeeper/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// --- Minimal mocks ---

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockTodoRepo struct{ mock.Mock }

func (m *mockTodoRepo) Create(ctx context.Context, todo *model.Todo) error {
	return m.Called(ctx, todo).Error(0)
}

func (m *mockTodoRepo) ListByUser(ctx context.Context, userID int64) ([]model.Todo, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Todo); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTodoRepo) GetByID(ctx context.Context, id string) (*model.Todo, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Todo); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTodoRepo) UpdateByID(ctx context.Context, id string, updates map[string]any) (*model.Todo, error) {
	args := m.Called(ctx, id, updates)
	if v, ok := args.Get(0).(*model.Todo); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTodoRepo) DeleteByID(ctx context.Context, id string) (*model.Todo, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Todo); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.TodoRepository = (*mockTodoRepo)(nil)

// --- Helpers ---

func newTestRouter(t *testing.T, ur repo.UserRepository, tr repo.TodoRepository) http.Handler {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret"}
	logger := zap.NewNop().Sugar()

	if ur == nil {
		ur = &mockUserRepo{}
	}
	if tr == nil {
		tr = &mockTodoRepo{}
	}
	userSvc := service.NewUserService(ur)
	todoSvc := service.NewTodoService(tr, cfg.StrictOwnership)

	h := handlers.NewHandler(userSvc, todoSvc, logger, cfg)
	return h.Router
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
