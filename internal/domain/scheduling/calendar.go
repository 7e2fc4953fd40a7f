package scheduling

import "time"

// ===============================
// Calendário de agendamento
// ===============================

const DefaultCalendarHorizon = 15

var (
	dayNames = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

	monthNames = [12]string{
		"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
		"Jul", "Ago", "Set", "Out", "Nov", "Dez",
	}
)

type CalendarDay struct {
	Date       time.Time `json:"date"`
	Day        int       `json:"day"`
	DayName    string    `json:"day_name"`
	MonthName  string    `json:"month_name"`
	IsToday    bool      `json:"is_today"`
	DateString string    `json:"date_string"`
}

// Midnight normaliza um instante para a meia-noite do mesmo dia
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// GenerateCalendar produz os próximos `horizon` dias a partir de `today`.
// Função pura: mesma entrada, mesma saída — o relógio é sempre do caller.
func GenerateCalendar(today time.Time, horizon int) []CalendarDay {
	if horizon <= 0 {
		horizon = DefaultCalendarHorizon
	}

	base := Midnight(today)

	days := make([]CalendarDay, 0, horizon)
	for i := 0; i < horizon; i++ {
		d := base.AddDate(0, 0, i)

		days = append(days, CalendarDay{
			Date:       d,
			Day:        d.Day(),
			DayName:    dayNames[int(d.Weekday())],
			MonthName:  monthNames[int(d.Month())-1],
			IsToday:    i == 0,
			DateString: d.Format("2006-01-02"),
		})
	}

	return days
}
