package handlers

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// --------------------------------------------------
// Timezone centralizado do salão
// --------------------------------------------------

func salonLocation(cfg *config.Config) *time.Location {
	return timezone.Location(cfg.Timezone)
}

// nowInSalon é o único ponto da API que lê o relógio;
// o engine recebe o instante como entrada
func nowInSalon(cfg *config.Config) time.Time {
	return timezone.NowIn(cfg.Timezone)
}

func parseDateInSalon(cfg *config.Config, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		salonLocation(cfg),
	)
}
