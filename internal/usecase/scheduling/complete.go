package scheduling

import (
	"context"
	"log"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	workerID uint,
	appointmentID uint,
	now time.Time,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil || ap.WorkerID != workerID {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}

	if err := domain.Complete(ap, now); err != nil {
		log.Printf("complete rejected: appointment=%d status=%s", ap.ID, ap.Status)
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		WorkerID: workerID,
		ActorID:  &workerID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
