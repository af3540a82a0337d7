package service

import (
	"TodoKeeper/internal/model"
	"TodoKeeper/internal/repo"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// UpdatePatch — поля частичного обновления задачи.
//
// Text и IsComplete применяются всегда как есть: клиент всегда шлёт
// оба ключа, в том числе пустой text и false. DueDate применяется
// только если задан и ненулевой — попытка очистить срок значением
// null молча игнорируется, сохранённый срок остаётся. Эта асимметрия
// воспроизводит легаси-контракт, см. DESIGN.md.
type UpdatePatch struct {
	Text       string
	IsComplete bool
	DueDate    *time.Time
}

// TodoService инкапсулирует жизненный цикл задачи: создание, выборку,
// частичное обновление и удаление.
type TodoService struct {
	repo            repo.TodoRepository
	strictOwnership bool
}

// NewTodoService создаёт сервис. strictOwnership=false воспроизводит
// легаси-контракт: update/delete находят задачу только по id, без
// проверки владельца. strictOwnership=true добавляет guard
// todo.UserID == callerID; чужая задача выглядит как отсутствующая.
func NewTodoService(r repo.TodoRepository, strictOwnership bool) *TodoService {
	return &TodoService{repo: r, strictOwnership: strictOwnership}
}

// Create сохраняет новую задачу: IsComplete=false, владелец — caller.
// Пустой text режется CHECK-ограничением схемы, не предвалидацией.
func (s *TodoService) Create(ctx context.Context, userID int64, text string, dueDate *time.Time) (*model.Todo, error) {
	t := &model.Todo{
		UserID:     userID,
		Text:       text,
		IsComplete: false,
		DueDate:    normalizeDue(dueDate),
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, &PersistenceError{Op: "create todo", Err: err}
	}
	return t, nil
}

// List возвращает задачи пользователя по возрастанию due_date
// (NULL первыми — порядок бекенда, см. repo.ListByUser).
func (s *TodoService) List(ctx context.Context, userID int64) ([]model.Todo, error) {
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, &PersistenceError{Op: "fetch todo list", Err: err}
	}
	return list, nil
}

// Update применяет patch к задаче по id.
// Неизвестный id — не ошибка: возвращается (nil, nil), хендлер отдаёт
// 200 с todo=null (легаси-контракт; у Delete поведение другое).
func (s *TodoService) Update(ctx context.Context, callerID int64, id string, patch UpdatePatch) (*model.Todo, error) {
	if s.strictOwnership {
		if err := s.checkOwner(ctx, callerID, id); err != nil {
			return nil, err
		}
	}

	updates := map[string]any{
		"text":        patch.Text,
		"is_complete": patch.IsComplete,
	}
	if due := normalizeDue(patch.DueDate); due != nil {
		updates["due_date"] = *due
	}

	t, err := s.repo.UpdateByID(ctx, id, updates)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "update todo", Err: err}
	}
	return t, nil
}

// Delete удаляет задачу по id и возвращает её прежнее состояние.
// Отсутствие задачи, в отличие от Update, явная ошибка ErrNotFound.
func (s *TodoService) Delete(ctx context.Context, callerID int64, id string) (*model.Todo, error) {
	if s.strictOwnership {
		if err := s.checkOwner(ctx, callerID, id); err != nil {
			return nil, err
		}
	}

	t, err := s.repo.DeleteByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &PersistenceError{Op: "delete todo", Err: err}
	}
	return t, nil
}

func (s *TodoService) checkOwner(ctx context.Context, callerID int64, id string) error {
	t, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return &PersistenceError{Op: "find todo", Err: err}
	}
	if t.UserID != callerID {
		return ErrNotFound
	}
	return nil
}

// normalizeDue приводит "нулевое" время к отсутствию срока.
func normalizeDue(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	return t
}
