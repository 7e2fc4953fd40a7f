package scheduling

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) ByDate(
	ctx context.Context,
	workerID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	start, end := domain.DayWindow(date)
	return uc.list(ctx, workerID, start, end)
}

func (uc *ListAppointments) ByMonth(
	ctx context.Context,
	workerID uint,
	year int,
	month int,
	loc *time.Location,
) ([]dto.AppointmentListDTO, error) {

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)
	return uc.list(ctx, workerID, start, end)
}

func (uc *ListAppointments) list(
	ctx context.Context,
	workerID uint,
	start time.Time,
	end time.Time,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, workerID, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		item := dto.AppointmentListDTO{
			ID:           ap.ID,
			Code:         ap.Code,
			StartTime:    ap.StartTime,
			EndTime:      ap.EndTime,
			Status:       ap.Status,
			CustomerName: ap.Customer.Name,
			ServiceName:  ap.Service.Name,
		}
		if ap.Additional != nil {
			item.AdditionalName = ap.Additional.Name
		}
		out = append(out, item)
	}

	return out, nil
}
