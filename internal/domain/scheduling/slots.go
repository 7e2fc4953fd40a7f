package scheduling

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Slots de disponibilidade
// ===============================

const DefaultSlotGranularityMin = 15

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type SlotGroup struct {
	Label string     `json:"label"`
	Slots []TimeSlot `json:"slots"`
}

// Overlaps compara intervalos semiabertos [aStart,aEnd) e [bStart,bEnd)
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// BuildSlots enumera os inícios candidatos no passo da granularidade e
// descarta os que cruzam a pausa ou algum agendamento ativo.
// `appointments` deve vir ordenado por start_time ascendente.
func BuildSlots(
	window WorkingWindow,
	totalDuration time.Duration,
	granularity time.Duration,
	appointments []models.Appointment,
) []TimeSlot {

	if !window.Working || totalDuration <= 0 {
		return []TimeSlot{}
	}

	if granularity <= 0 {
		granularity = DefaultSlotGranularityMin * time.Minute
	}

	slots := []TimeSlot{}
	apIdx := 0

	for cur := window.Start; !cur.Add(totalDuration).After(window.End); cur = cur.Add(granularity) {

		slotStart := cur
		slotEnd := cur.Add(totalDuration)

		// pausa
		if window.HasBreak && Overlaps(slotStart, slotEnd, window.BreakStart, window.BreakEnd) {
			continue
		}

		// avança agendamentos já encerrados antes do slot
		for apIdx < len(appointments) && !appointments[apIdx].EndTime.After(slotStart) {
			apIdx++
		}

		conflict := false
		for i := apIdx; i < len(appointments); i++ {
			ap := appointments[i]
			if !ap.StartTime.Before(slotEnd) {
				break
			}
			if Overlaps(slotStart, slotEnd, ap.StartTime, ap.EndTime) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, TimeSlot{
				Start: slotStart.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})
		}
	}

	return slots
}

// GroupSlots particiona os slots em Manhã (<12h), Tarde (12h-16h59)
// e Noite (>=17h); grupos vazios ficam de fora da resposta
func GroupSlots(slots []TimeSlot) []SlotGroup {
	groups := []SlotGroup{
		{Label: "Manhã"},
		{Label: "Tarde"},
		{Label: "Noite"},
	}

	for _, s := range slots {
		t, err := time.Parse("15:04", s.Start)
		if err != nil {
			continue
		}

		switch {
		case t.Hour() < 12:
			groups[0].Slots = append(groups[0].Slots, s)
		case t.Hour() < 17:
			groups[1].Slots = append(groups[1].Slots, s)
		default:
			groups[2].Slots = append(groups[2].Slots, s)
		}
	}

	out := make([]SlotGroup, 0, len(groups))
	for _, g := range groups {
		if len(g.Slots) > 0 {
			out = append(out, g)
		}
	}

	return out
}
