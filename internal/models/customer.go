package models

import "time"

// Cliente simples, sem login, identificado pelo telefone
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;uniqueIndex" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
