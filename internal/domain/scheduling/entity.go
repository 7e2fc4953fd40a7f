package scheduling

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Antecedência mínima para o cliente cancelar
const CancelNotice = 2 * time.Hour

// ===============================
// Domain Actions
// ===============================

// CanCancel é a regra pura de cancelamento: status ativo e
// início do agendamento a pelo menos CancelNotice de distância
func CanCancel(ap *models.Appointment, now time.Time) bool {
	if CanCancelStatus(Status(ap.Status)) != nil {
		return false
	}
	return !ap.StartTime.Before(now.Add(CancelNotice))
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancelStatus(Status(ap.Status)); err != nil {
		return err
	}

	if ap.StartTime.Before(now.Add(CancelNotice)) {
		return httperr.ErrPolicy("cancel_window_closed")
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}
