package service

import (
	"errors"
	"fmt"
)

// Ошибки уровня сервиса. Хендлеры маппят их в HTTP-статусы и не
// полагаются на текст ошибок конкретного стораджа.
var (
	// ErrNotFound — задача с указанным id не существует (или в строгом
	// режиме принадлежит другому пользователю).
	ErrNotFound = errors.New("todo not found")

	// ErrLoginTaken — логин уже занят при регистрации.
	ErrLoginTaken = errors.New("login already taken")

	// ErrInvalidCredentials — неверная пара логин/пароль.
	ErrInvalidCredentials = errors.New("invalid login or password")
)

// PersistenceError — неожиданная ошибка хранилища, включая нарушение
// ограничений схемы (например, пустой text при создании). Наружу
// отдаётся безопасное Op, исходная ошибка доступна через Unwrap.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
