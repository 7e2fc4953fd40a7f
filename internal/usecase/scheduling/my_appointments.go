package scheduling

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// MY APPOINTMENTS (cliente, lookup por telefone)
// ======================================================

type MyAppointmentsResult struct {
	Upcoming []models.Appointment `json:"upcoming"`
	History  []models.Appointment `json:"history"`
}

type GetMyAppointments struct {
	repo domain.Repository
}

func NewGetMyAppointments(repo domain.Repository) *GetMyAppointments {
	return &GetMyAppointments{repo: repo}
}

// Execute separa próximas citas de histórico: cancelados, concluídos
// e datas passadas vão para o histórico
func (uc *GetMyAppointments) Execute(
	ctx context.Context,
	phone string,
	now time.Time,
) (*MyAppointmentsResult, error) {

	appointments, err := uc.repo.ListAppointmentsByCustomerPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	result := &MyAppointmentsResult{
		Upcoming: []models.Appointment{},
		History:  []models.Appointment{},
	}

	for _, ap := range appointments {
		if domain.IsActive(domain.Status(ap.Status)) && ap.StartTime.After(now) {
			result.Upcoming = append(result.Upcoming, ap)
		} else {
			result.History = append(result.History, ap)
		}
	}

	return result, nil
}
