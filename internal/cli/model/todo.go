package model

import "time"

// Todo — клиентское представление задачи (как её отдаёт сервер).
type Todo struct {
	ID         string     `json:"id"`
	Text       string     `json:"text"`
	IsComplete bool       `json:"isComplete"`
	DueDate    *time.Time `json:"dueDate,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// TodoResponse — ответ сервера на create/update/delete.
type TodoResponse struct {
	Message string `json:"message"`
	Todo    *Todo  `json:"todo"`
}

// TodoListResponse — ответ сервера на fetch.
type TodoListResponse struct {
	Message  string `json:"message"`
	TodoList []Todo `json:"todoList"`
}
