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

type CancelAppointment struct {
	repo  domain.Repository
	cache *cache.Availability
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	availCache *cache.Availability,
	auditDispatcher *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		cache: availCache,
		audit: auditDispatcher,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	now time.Time,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}

	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.InvalidateWorker(ctx, ap.WorkerID)

	uc.audit.Dispatch(audit.Event{
		WorkerID: ap.WorkerID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
