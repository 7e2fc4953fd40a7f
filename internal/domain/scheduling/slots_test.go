package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func window(date time.Time, start, end, breakStart, breakEnd string) WorkingWindow {
	entry := models.WorkerSchedule{
		Working:    true,
		StartTime:  start,
		EndTime:    end,
		BreakStart: breakStart,
		BreakEnd:   breakEnd,
	}
	return ResolveWindow(date, &entry, nil)
}

func appointment(date time.Time, start, end string) models.Appointment {
	s, _ := ParseClock(date, start)
	e, _ := ParseClock(date, end)
	return models.Appointment{StartTime: s, EndTime: e, Status: "confirmed"}
}

func starts(slots []TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start)
	}
	return out
}

func TestBuildSlotsWithBreakAndExistingAppointment(t *testing.T) {
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC) // segunda
	w := window(date, "09:00", "17:00", "12:00", "13:00")

	existing := []models.Appointment{appointment(date, "10:00", "11:00")}

	slots := BuildSlots(w, 60*time.Minute, 30*time.Minute, existing)

	assert.Equal(t, []string{
		"09:00",
		"11:00",
		"13:00", "13:30",
		"14:00", "14:30",
		"15:00", "15:30",
		"16:00",
	}, starts(slots))

	// fim do slot sempre início + duração
	for _, s := range slots {
		start, err := time.Parse("15:04", s.Start)
		require.NoError(t, err)
		end, err := time.Parse("15:04", s.End)
		require.NoError(t, err)
		assert.Equal(t, time.Hour, end.Sub(start))
	}
}

func TestBuildSlotsNeverCrossesWindowEnd(t *testing.T) {
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	w := window(date, "09:00", "10:00", "", "")

	slots := BuildSlots(w, 45*time.Minute, 15*time.Minute, nil)

	// 09:15+45 = 10:00 ainda cabe (fim coincide com o fechamento)
	assert.Equal(t, []string{"09:00", "09:15"}, starts(slots))
}

func TestBuildSlotsSlotEndingAtBreakStartIsAllowed(t *testing.T) {
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	w := window(date, "09:00", "14:00", "12:00", "13:00")

	slots := BuildSlots(w, 60*time.Minute, 60*time.Minute, nil)

	// intervalos semiabertos: terminar às 12:00 não invade a pausa,
	// retomar às 13:00 também não
	assert.Equal(t, []string{"09:00", "10:00", "11:00", "13:00"}, starts(slots))
}

func TestBuildSlotsDurationLongerThanWindow(t *testing.T) {
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	w := window(date, "09:00", "10:00", "", "")

	assert.Empty(t, BuildSlots(w, 2*time.Hour, 15*time.Minute, nil))
}

func TestBuildSlotsNotWorking(t *testing.T) {
	assert.Empty(t, BuildSlots(NotWorking("folga"), time.Hour, 15*time.Minute, nil))
}

func TestBuildSlotsIsIdempotent(t *testing.T) {
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	w := window(date, "09:00", "17:00", "12:00", "13:00")
	existing := []models.Appointment{
		appointment(date, "09:00", "09:45"),
		appointment(date, "14:00", "15:30"),
	}

	first := BuildSlots(w, 30*time.Minute, 15*time.Minute, existing)
	second := BuildSlots(w, 30*time.Minute, 15*time.Minute, existing)

	assert.Equal(t, first, second)
}

func TestOverlapsHalfOpen(t *testing.T) {
	base := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	at := func(hm string) time.Time {
		t2, _ := ParseClock(base, hm)
		return t2
	}

	// encostar não é sobrepor
	assert.False(t, Overlaps(at("09:00"), at("10:00"), at("10:00"), at("11:00")))
	assert.False(t, Overlaps(at("10:00"), at("11:00"), at("09:00"), at("10:00")))

	assert.True(t, Overlaps(at("09:00"), at("10:01"), at("10:00"), at("11:00")))
	assert.True(t, Overlaps(at("09:00"), at("12:00"), at("10:00"), at("11:00")))
	assert.True(t, Overlaps(at("10:15"), at("10:30"), at("10:00"), at("11:00")))
}

func TestGroupSlots(t *testing.T) {
	slots := []TimeSlot{
		{Start: "09:00", End: "10:00"},
		{Start: "11:30", End: "12:30"},
		{Start: "12:00", End: "13:00"},
		{Start: "16:30", End: "17:30"},
		{Start: "17:00", End: "18:00"},
	}

	groups := GroupSlots(slots)
	require.Len(t, groups, 3)

	assert.Equal(t, "Manhã", groups[0].Label)
	assert.Equal(t, []string{"09:00", "11:30"}, starts(groups[0].Slots))

	assert.Equal(t, "Tarde", groups[1].Label)
	assert.Equal(t, []string{"12:00", "16:30"}, starts(groups[1].Slots))

	assert.Equal(t, "Noite", groups[2].Label)
	assert.Equal(t, []string{"17:00"}, starts(groups[2].Slots))
}

func TestGroupSlotsOmitsEmptyGroups(t *testing.T) {
	groups := GroupSlots([]TimeSlot{{Start: "14:00", End: "15:00"}})

	require.Len(t, groups, 1)
	assert.Equal(t, "Tarde", groups[0].Label)

	assert.Empty(t, GroupSlots(nil))
}
