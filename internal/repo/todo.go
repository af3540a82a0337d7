package repo

import (
	"TodoKeeper/internal/model"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TodoRepository определяет контракт доступа к Todo для слоя сервиса.
type TodoRepository interface {
	// Create сохраняет новую задачу. ID присваивается здесь (uuid),
	// created_at/updated_at проставляет gorm.
	Create(ctx context.Context, t *model.Todo) error

	// ListByUser возвращает задачи пользователя по возрастанию due_date.
	// Задачи без срока (NULL) идут первыми: и SQLite, и Postgres при
	// ASC по умолчанию ставят NULL в начало. Это наблюдаемое поведение
	// выдачи, закреплено тестом.
	ListByUser(ctx context.Context, userID int64) ([]model.Todo, error)

	// GetByID ищет задачу только по id, без владельца.
	// Если не найдена — gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (*model.Todo, error)

	// UpdateByID применяет частичное обновление по id и возвращает
	// обновлённую запись. updated_at обновляет gorm.
	// Если записи нет — gorm.ErrRecordNotFound.
	UpdateByID(ctx context.Context, id string, updates map[string]any) (*model.Todo, error)

	// DeleteByID удаляет задачу по id и возвращает её прежнее состояние.
	// Если записи нет — gorm.ErrRecordNotFound.
	DeleteByID(ctx context.Context, id string) (*model.Todo, error)
}

type todoRepo struct {
	db *gorm.DB
}

// NewTodoRepository создаёт реализацию репозитория для Todo.
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &todoRepo{db: db}
}

func (r *todoRepo) Create(ctx context.Context, t *model.Todo) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *todoRepo) ListByUser(ctx context.Context, userID int64) ([]model.Todo, error) {
	var list []model.Todo
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *todoRepo) GetByID(ctx context.Context, id string) (*model.Todo, error) {
	var t model.Todo
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *todoRepo) UpdateByID(ctx context.Context, id string, updates map[string]any) (*model.Todo, error) {
	tx := r.db.WithContext(ctx).Model(&model.Todo{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *todoRepo) DeleteByID(ctx context.Context, id string) (*model.Todo, error) {
	t, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.Todo{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return t, nil
}
