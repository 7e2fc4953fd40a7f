package scheduling

import "github.com/BruksfildServices01/salon-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// InitialStatus define o status inicial de todo agendamento
func InitialStatus() Status {
	return StatusPending
}

// IsActive indica se o agendamento ainda ocupa o horário
// (pending e confirmed contam para conflito e disponibilidade)
func IsActive(current Status) bool {
	return current == StatusPending || current == StatusConfirmed
}

// ===============================
// Transições (somente para frente)
// ===============================

// CanConfirm: pending → confirmed
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrTransition("invalid_state")
	}
	return nil
}

// CanComplete: pending/confirmed → completed
// (concluir direto de pending continua sendo transição para frente)
func CanComplete(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrTransition("invalid_state")
	}
	return nil
}

// CanCancelStatus: cancelled só é alcançável de pending/confirmed
func CanCancelStatus(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrTransition("invalid_state")
	}
	return nil
}
