package scheduling

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// ======================================================
// STATS
// ======================================================

type GetStats struct {
	repo domain.Repository
}

func NewGetStats(repo domain.Repository) *GetStats {
	return &GetStats{repo: repo}
}

// Daily reduz o dia e acrescenta o total global de trabalho aberto
// (pending+confirmed de hoje em diante) para o painel
func (uc *GetStats) Daily(
	ctx context.Context,
	workerID uint,
	date time.Time,
) (*domain.DailyStats, error) {

	start, end := domain.DayWindow(date)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, workerID, start, end)
	if err != nil {
		return nil, err
	}

	st := domain.SummarizeDay(start, appointments)

	globalPending, err := uc.repo.CountOpenAppointmentsFrom(ctx, workerID, start)
	if err != nil {
		return nil, err
	}
	st.GlobalPendingAppointments = globalPending

	return &st, nil
}

// Revenue reduz a semana ou o mês corrente da data de referência
func (uc *GetStats) Revenue(
	ctx context.Context,
	workerID uint,
	period string,
	ref time.Time,
) (*domain.RevenueStats, error) {

	var start, end time.Time

	switch period {
	case "week":
		start, end = domain.WeekWindow(ref)
	case "month":
		start, end = domain.MonthWindow(ref)
	default:
		return nil, httperr.ErrValidation("invalid_period", "period")
	}

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, workerID, start, end)
	if err != nil {
		return nil, err
	}

	st := domain.SummarizePeriod(period, appointments)
	return &st, nil
}

// PopularServices rankeia serviços por volume de agendamentos
func (uc *GetStats) PopularServices(
	ctx context.Context,
	workerID uint,
	limit int,
) ([]domain.ServicePopularity, error) {

	appointments, err := uc.repo.ListAllAppointments(ctx, workerID)
	if err != nil {
		return nil, err
	}

	return domain.RankServices(appointments, limit), nil
}
