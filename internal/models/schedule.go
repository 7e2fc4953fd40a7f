package models

import "time"

// Horário semanal: uma linha por (worker, weekday 0-6)
type WorkerSchedule struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	WorkerID uint `gorm:"uniqueIndex:uq_worker_weekday" json:"worker_id"`

	Weekday int  `gorm:"uniqueIndex:uq_worker_weekday" json:"weekday"`
	Working bool `json:"working"`

	StartTime  string `gorm:"size:5" json:"start_time"`
	EndTime    string `gorm:"size:5" json:"end_time"`
	BreakStart string `gorm:"size:5" json:"break_start"`
	BreakEnd   string `gorm:"size:5" json:"break_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Data bloqueada sobrepõe o horário semanal (worker não atende nesse dia)
type BlockedDate struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	WorkerID uint `gorm:"uniqueIndex:uq_worker_blocked_date" json:"worker_id"`

	Date   time.Time `gorm:"uniqueIndex:uq_worker_blocked_date" json:"date"`
	Reason string    `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
