package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type availabilityFixture struct {
	repo    *fakeRepo
	uc      *GetAvailability
	worker  models.Worker
	service models.Service
	today   time.Time
}

func newAvailabilityFixture(t *testing.T) *availabilityFixture {
	t.Helper()

	repo := newFakeRepo()
	worker := repo.addWorker(models.Worker{Name: "Shady"})
	service := repo.addService(models.Service{
		WorkerID:    worker.ID,
		Name:        "Manicure",
		DurationMin: 60,
		Price:       30,
		Active:      true,
	})

	return &availabilityFixture{
		repo:    repo,
		uc:      NewGetAvailability(repo, nil, 30*time.Minute),
		worker:  worker,
		service: service,
		today:   time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC),
	}
}

func (f *availabilityFixture) input(date time.Time) AvailabilityInput {
	return AvailabilityInput{
		WorkerID:  f.worker.ID,
		ServiceID: f.service.ID,
		Date:      date,
		Today:     f.today,
	}
}

func TestGetAvailabilityWithBreakAndExistingAppointment(t *testing.T) {
	f := newAvailabilityFixture(t)
	ctx := context.Background()

	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	require.NoError(t, f.repo.ReplaceSchedule(ctx, f.worker.ID, []models.WorkerSchedule{
		{
			WorkerID:   f.worker.ID,
			Weekday:    1,
			Working:    true,
			StartTime:  "09:00",
			EndTime:    "17:00",
			BreakStart: "12:00",
			BreakEnd:   "13:00",
		},
	}))

	f.repo.addAppointment(models.Appointment{
		WorkerID:  f.worker.ID,
		StartTime: time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 9, 11, 0, 0, 0, time.UTC),
		Status:    "confirmed",
	})

	result, err := f.uc.Execute(ctx, f.input(date))
	require.NoError(t, err)

	assert.Equal(t, "2026-03-09", result.Date)
	assert.Equal(t, 60, result.TotalDurationMin)
	assert.False(t, result.IsBlocked)

	slotStarts := make([]string, 0, len(result.Slots))
	for _, s := range result.Slots {
		slotStarts = append(slotStarts, s.Start)
	}
	assert.Equal(t, []string{
		"09:00",
		"11:00",
		"13:00", "13:30",
		"14:00", "14:30",
		"15:00", "15:30",
		"16:00",
	}, slotStarts)

	// manhã e tarde apenas, noite fica de fora
	require.Len(t, result.Groups, 2)
	assert.Equal(t, "Manhã", result.Groups[0].Label)
	assert.Equal(t, "Tarde", result.Groups[1].Label)
}

func TestGetAvailabilityIsIdempotent(t *testing.T) {
	f := newAvailabilityFixture(t)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	first, err := f.uc.Execute(context.Background(), f.input(date))
	require.NoError(t, err)

	second, err := f.uc.Execute(context.Background(), f.input(date))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetAvailabilityUsesDefaultSchedule(t *testing.T) {
	f := newAvailabilityFixture(t)

	// sem configuração: Seg-Sáb 09:00-18:00
	monday, err := f.uc.Execute(context.Background(), f.input(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	require.NotEmpty(t, monday.Slots)
	assert.Equal(t, "09:00", monday.Slots[0].Start)
	assert.Equal(t, "17:00", monday.Slots[len(monday.Slots)-1].Start)

	// domingo é descanso
	sunday, err := f.uc.Execute(context.Background(), f.input(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Empty(t, sunday.Slots)
	assert.False(t, sunday.IsBlocked)
}

func TestGetAvailabilityPastDateReturnsEmpty(t *testing.T) {
	f := newAvailabilityFixture(t)

	result, err := f.uc.Execute(context.Background(), f.input(time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Empty(t, result.Slots)
	assert.Empty(t, result.Groups)
}

func TestGetAvailabilityBlockedDate(t *testing.T) {
	f := newAvailabilityFixture(t)
	ctx := context.Background()

	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.repo.CreateBlockedDate(ctx, &models.BlockedDate{
		WorkerID: f.worker.ID,
		Date:     date,
		Reason:   "feriado",
	}))

	result, err := f.uc.Execute(ctx, f.input(date))
	require.NoError(t, err)

	assert.True(t, result.IsBlocked)
	assert.Equal(t, "feriado", result.BlockReason)
	assert.Empty(t, result.Slots)
}

func TestGetAvailabilityUnknownService(t *testing.T) {
	f := newAvailabilityFixture(t)

	in := f.input(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC))
	in.ServiceID = 999

	_, err := f.uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestGetAvailabilityAdditionalExtendsDuration(t *testing.T) {
	f := newAvailabilityFixture(t)
	additional := f.repo.addAdditional(models.Additional{
		WorkerID:         f.worker.ID,
		Name:             "Decoração",
		ExtraDurationMin: 30,
		Active:           true,
	})

	in := f.input(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC))
	in.AdditionalID = &additional.ID

	result, err := f.uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 90, result.TotalDurationMin)
	// 90 min não cabem depois das 16:30
	assert.Equal(t, "16:30", result.Slots[len(result.Slots)-1].Start)
}
