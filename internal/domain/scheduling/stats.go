package scheduling

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Stats (redutores puros)
// ===============================

type DailyStats struct {
	Date string `json:"date"`

	TotalAppointments     int `json:"total_appointments"`
	PendingAppointments   int `json:"pending_appointments"`
	ConfirmedAppointments int `json:"confirmed_appointments"`
	CompletedAppointments int `json:"completed_appointments"`
	CancelledAppointments int `json:"cancelled_appointments"`

	EstimatedRevenue float64 `json:"estimated_revenue"`
	ActualRevenue    float64 `json:"actual_revenue"`

	GlobalPendingAppointments int64 `json:"global_pending_appointments"`
}

type RevenueStats struct {
	Period string `json:"period"`

	TotalAppointments int     `json:"total_appointments"`
	EstimatedRevenue  float64 `json:"estimated_revenue"`
	ActualRevenue     float64 `json:"actual_revenue"`
}

type ServicePopularity struct {
	ServiceID     uint    `json:"service_id"`
	ServiceName   string  `json:"service_name"`
	TotalBookings int     `json:"total_bookings"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// RevenueOf soma serviço + adicional de um agendamento
// (exige Service/Additional pré-carregados)
func RevenueOf(ap models.Appointment) float64 {
	total := ap.Service.Price
	if ap.Additional != nil {
		total += ap.Additional.Price
	}
	return total
}

// SummarizeDay reduz o snapshot de agendamentos de um dia.
// Receita estimada exclui cancelados; receita real só conta concluídos.
func SummarizeDay(date time.Time, appointments []models.Appointment) DailyStats {
	st := DailyStats{Date: date.Format("2006-01-02")}

	for _, ap := range appointments {
		st.TotalAppointments++

		switch Status(ap.Status) {
		case StatusPending:
			st.PendingAppointments++
		case StatusConfirmed:
			st.ConfirmedAppointments++
		case StatusCompleted:
			st.CompletedAppointments++
		case StatusCancelled:
			st.CancelledAppointments++
		}

		if Status(ap.Status) == StatusCancelled {
			continue
		}

		revenue := RevenueOf(ap)
		st.EstimatedRevenue += revenue
		if Status(ap.Status) == StatusCompleted {
			st.ActualRevenue += revenue
		}
	}

	return st
}

// SummarizePeriod reduz um snapshot arbitrário (semana, mês)
func SummarizePeriod(period string, appointments []models.Appointment) RevenueStats {
	st := RevenueStats{Period: period}

	for _, ap := range appointments {
		st.TotalAppointments++

		if Status(ap.Status) == StatusCancelled {
			continue
		}

		revenue := RevenueOf(ap)
		st.EstimatedRevenue += revenue
		if Status(ap.Status) == StatusCompleted {
			st.ActualRevenue += revenue
		}
	}

	return st
}

// RankServices ordena serviços por número de agendamentos,
// desempate por receita total, ambos decrescentes
func RankServices(appointments []models.Appointment, limit int) []ServicePopularity {
	byService := map[uint]*ServicePopularity{}

	for _, ap := range appointments {
		entry, ok := byService[ap.ServiceID]
		if !ok {
			entry = &ServicePopularity{
				ServiceID:   ap.ServiceID,
				ServiceName: ap.Service.Name,
			}
			byService[ap.ServiceID] = entry
		}

		entry.TotalBookings++
		entry.TotalRevenue += RevenueOf(ap)
	}

	ranking := make([]ServicePopularity, 0, len(byService))
	for _, entry := range byService {
		ranking = append(ranking, *entry)
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].TotalBookings != ranking[j].TotalBookings {
			return ranking[i].TotalBookings > ranking[j].TotalBookings
		}
		if ranking[i].TotalRevenue != ranking[j].TotalRevenue {
			return ranking[i].TotalRevenue > ranking[j].TotalRevenue
		}
		return ranking[i].ServiceID < ranking[j].ServiceID
	})

	if limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}

	return ranking
}

// ===============================
// Janelas de período
// ===============================

// WeekWindow retorna [segunda, segunda+7) da semana da data
func WeekWindow(date time.Time) (time.Time, time.Time) {
	base := Midnight(date)

	// Weekday(): Domingo=0 … Sábado=6; semana começa na segunda
	offset := (int(base.Weekday()) + 6) % 7
	start := base.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}

// MonthWindow retorna [dia 1, dia 1 do mês seguinte)
func MonthWindow(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 1, 0)
}

// DayWindow retorna [00:00, 00:00 do dia seguinte)
func DayWindow(date time.Time) (time.Time, time.Time) {
	start := Midnight(date)
	return start, start.AddDate(0, 0, 1)
}
