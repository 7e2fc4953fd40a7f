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

type ConfirmAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	workerID uint,
	appointmentID uint,
	now time.Time,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil || ap.WorkerID != workerID {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}

	if err := domain.Confirm(ap, now); err != nil {
		// transição ilegal: provável bug do cliente da API
		log.Printf("confirm rejected: appointment=%d status=%s", ap.ID, ap.Status)
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		WorkerID: workerID,
		ActorID:  &workerID,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
