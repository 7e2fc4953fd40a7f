package models

import "time"

// Adicional opcional anexado a um agendamento (ex: decoração, remoção de gel)
type Additional struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	WorkerID uint `json:"worker_id"`

	Name             string  `gorm:"size:100;not null" json:"name"`
	ExtraDurationMin int     `json:"extra_duration_min"`
	Price            float64 `json:"price"`
	Active           bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
