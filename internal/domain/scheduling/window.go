package scheduling

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Janela de atendimento
// ===============================

// WorkingWindow é o expediente resolvido para uma data concreta
type WorkingWindow struct {
	Working bool

	Start time.Time
	End   time.Time

	HasBreak   bool
	BreakStart time.Time
	BreakEnd   time.Time

	BlockReason string
}

func NotWorking(reason string) WorkingWindow {
	return WorkingWindow{Working: false, BlockReason: reason}
}

// ParseClock ancora um horário "HH:MM" na data alvo
func ParseClock(date time.Time, hm string) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), nil
}

// DefaultScheduleEntry é o horário usado quando o worker ainda não
// configurou o dia: Seg-Sáb 09:00-18:00, domingo de descanso
func DefaultScheduleEntry(workerID uint, weekday int) models.WorkerSchedule {
	return models.WorkerSchedule{
		WorkerID:  workerID,
		Weekday:   weekday,
		Working:   weekday != 0,
		StartTime: "09:00",
		EndTime:   "18:00",
	}
}

// ResolveWindow aplica a ordem de resolução: data bloqueada vence o
// horário semanal, dia não laboral vence tudo
func ResolveWindow(
	date time.Time,
	entry *models.WorkerSchedule,
	blocked *models.BlockedDate,
) WorkingWindow {

	if blocked != nil {
		return NotWorking(blocked.Reason)
	}

	if entry == nil || !entry.Working {
		return NotWorking("")
	}

	start, err := ParseClock(date, entry.StartTime)
	if err != nil {
		return NotWorking("")
	}
	end, err := ParseClock(date, entry.EndTime)
	if err != nil {
		return NotWorking("")
	}

	w := WorkingWindow{
		Working: true,
		Start:   start,
		End:     end,
	}

	if entry.BreakStart != "" && entry.BreakEnd != "" {
		bs, err1 := ParseClock(date, entry.BreakStart)
		be, err2 := ParseClock(date, entry.BreakEnd)
		if err1 == nil && err2 == nil {
			w.HasBreak = true
			w.BreakStart = bs
			w.BreakEnd = be
		}
	}

	return w
}

// ===============================
// Validação de escrita
// ===============================

// ValidateScheduleEntry garante start < end e pausa contida no expediente
func ValidateScheduleEntry(entry models.WorkerSchedule) error {
	if entry.Weekday < 0 || entry.Weekday > 6 {
		return httperr.ErrValidation("invalid_weekday", "weekday")
	}

	if !entry.Working {
		return nil
	}

	ref := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	start, err := ParseClock(ref, entry.StartTime)
	if err != nil {
		return httperr.ErrValidation("invalid_start_time", "start_time")
	}

	end, err := ParseClock(ref, entry.EndTime)
	if err != nil {
		return httperr.ErrValidation("invalid_end_time", "end_time")
	}

	if !start.Before(end) {
		return httperr.ErrValidation("window_inverted", "end_time")
	}

	hasBreakStart := entry.BreakStart != ""
	hasBreakEnd := entry.BreakEnd != ""
	if hasBreakStart != hasBreakEnd {
		return httperr.ErrValidation("incomplete_break", "break_end")
	}

	if hasBreakStart {
		bs, err := ParseClock(ref, entry.BreakStart)
		if err != nil {
			return httperr.ErrValidation("invalid_break_start", "break_start")
		}

		be, err := ParseClock(ref, entry.BreakEnd)
		if err != nil {
			return httperr.ErrValidation("invalid_break_end", "break_end")
		}

		// start <= breakStart < breakEnd <= end
		if bs.Before(start) || !bs.Before(be) || be.After(end) {
			return httperr.ErrValidation("break_outside_window", "break_start")
		}
	}

	return nil
}

// ValidateWeeklySchedule valida o conjunto e rejeita weekdays duplicados
func ValidateWeeklySchedule(entries []models.WorkerSchedule) error {
	seen := map[int]bool{}

	for i, e := range entries {
		if err := ValidateScheduleEntry(e); err != nil {
			return err
		}
		if seen[e.Weekday] {
			return httperr.ErrValidation(
				fmt.Sprintf("duplicated_weekday_%d", e.Weekday),
				fmt.Sprintf("days[%d].weekday", i),
			)
		}
		seen[e.Weekday] = true
	}

	return nil
}
