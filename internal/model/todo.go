package model

import "time"

// Todo — серверная модель задачи пользователя.
// DueDate опционален: nil означает, что срок не задан (не сентинельная дата).
type Todo struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID int64  `gorm:"not null;index" json:"-"` // ссылка на users.id

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Text       string     `gorm:"not null;check:text <> ''" json:"text"`
	IsComplete bool       `gorm:"not null;default:false" json:"isComplete"`
	DueDate    *time.Time `json:"dueDate,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
