package scheduling

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// BLOCKED DATES
// ======================================================

type BlockedDates struct {
	repo  domain.Repository
	cache *cache.Availability
	audit *audit.Dispatcher
}

func NewBlockedDates(
	repo domain.Repository,
	availCache *cache.Availability,
	auditDispatcher *audit.Dispatcher,
) *BlockedDates {
	return &BlockedDates{
		repo:  repo,
		cache: availCache,
		audit: auditDispatcher,
	}
}

func (uc *BlockedDates) Add(
	ctx context.Context,
	workerID uint,
	date time.Time,
	reason string,
) (*models.BlockedDate, error) {

	day := domain.Midnight(date)

	existing, err := uc.repo.GetBlockedDate(ctx, workerID, day)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrConflict("date_already_blocked")
	}

	bd := &models.BlockedDate{
		WorkerID: workerID,
		Date:     day,
		Reason:   reason,
	}

	if err := uc.repo.CreateBlockedDate(ctx, bd); err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrConflict("date_already_blocked")
		}
		return nil, err
	}

	uc.cache.InvalidateWorker(ctx, workerID)

	uc.audit.Dispatch(audit.Event{
		WorkerID: workerID,
		ActorID:  &workerID,
		Action:   "date_blocked",
		Entity:   "blocked_date",
		EntityID: &bd.ID,
	})

	return bd, nil
}

func (uc *BlockedDates) Remove(
	ctx context.Context,
	workerID uint,
	id uint,
) error {

	if err := uc.repo.DeleteBlockedDate(ctx, workerID, id); err != nil {
		return httperr.ErrNotFound("blocked_date_not_found")
	}

	uc.cache.InvalidateWorker(ctx, workerID)

	uc.audit.Dispatch(audit.Event{
		WorkerID: workerID,
		ActorID:  &workerID,
		Action:   "date_unblocked",
		Entity:   "blocked_date",
		EntityID: &id,
	})

	return nil
}

func (uc *BlockedDates) List(
	ctx context.Context,
	workerID uint,
	from time.Time,
) ([]models.BlockedDate, error) {
	return uc.repo.ListBlockedDates(ctx, workerID, domain.Midnight(from))
}
