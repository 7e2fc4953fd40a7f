package scheduling

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type UpdateSchedule struct {
	repo  domain.Repository
	cache *cache.Availability
	audit *audit.Dispatcher
}

func NewUpdateSchedule(
	repo domain.Repository,
	availCache *cache.Availability,
	auditDispatcher *audit.Dispatcher,
) *UpdateSchedule {
	return &UpdateSchedule{
		repo:  repo,
		cache: availCache,
		audit: auditDispatcher,
	}
}

// Execute valida e substitui a configuração semanal inteira.
// Escrita inválida não persiste nada.
func (uc *UpdateSchedule) Execute(
	ctx context.Context,
	workerID uint,
	entries []models.WorkerSchedule,
) error {

	if err := domain.ValidateWeeklySchedule(entries); err != nil {
		return err
	}

	for i := range entries {
		entries[i].WorkerID = workerID
	}

	if err := uc.repo.ReplaceSchedule(ctx, workerID, entries); err != nil {
		return err
	}

	uc.cache.InvalidateWorker(ctx, workerID)

	uc.audit.Dispatch(audit.Event{
		WorkerID: workerID,
		ActorID:  &workerID,
		Action:   "schedule_updated",
		Entity:   "worker_schedule",
	})

	return nil
}
