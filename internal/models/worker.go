package models

import "time"

type Worker struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	PasswordHash string `gorm:"size:100" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
