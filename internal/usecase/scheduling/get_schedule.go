package scheduling

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type GetSchedule struct {
	repo domain.Repository
}

func NewGetSchedule(repo domain.Repository) *GetSchedule {
	return &GetSchedule{repo: repo}
}

// Execute devolve o horário configurado; sem configuração,
// devolve a semana padrão (Seg-Sáb 09:00-18:00)
func (uc *GetSchedule) Execute(
	ctx context.Context,
	workerID uint,
) ([]models.WorkerSchedule, error) {

	entries, err := uc.repo.ListSchedule(ctx, workerID)
	if err != nil {
		return nil, err
	}

	if len(entries) > 0 {
		return entries, nil
	}

	defaults := make([]models.WorkerSchedule, 0, 7)
	for weekday := 0; weekday < 7; weekday++ {
		defaults = append(defaults, domain.DefaultScheduleEntry(workerID, weekday))
	}

	return defaults, nil
}
