package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func pendingAt(start time.Time) *models.Appointment {
	return &models.Appointment{
		Status:    string(StatusPending),
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}
}

func TestCancelNoticeBoundary(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	// exatamente 2h de antecedência ainda pode
	atLimit := pendingAt(now.Add(CancelNotice))
	assert.True(t, CanCancel(atLimit, now))
	require.NoError(t, Cancel(atLimit, now))
	assert.Equal(t, string(StatusCancelled), atLimit.Status)
	require.NotNil(t, atLimit.CancelledAt)
	assert.Equal(t, now, *atLimit.CancelledAt)

	// um minuto dentro da janela já não pode
	tooLate := pendingAt(now.Add(CancelNotice - time.Minute))
	assert.False(t, CanCancel(tooLate, now))

	err := Cancel(tooLate, now)
	require.Error(t, err)
	assert.Equal(t, "cancel_window_closed", err.Error())

	kind, ok := httperr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, httperr.KindPolicy, kind)

	// falha não mexe no estado
	assert.Equal(t, string(StatusPending), tooLate.Status)
	assert.Nil(t, tooLate.CancelledAt)
}

func TestCancelRejectsFinalStates(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	for _, status := range []Status{StatusCompleted, StatusCancelled} {
		ap := pendingAt(now.Add(24 * time.Hour))
		ap.Status = string(status)

		err := Cancel(ap, now)
		require.Error(t, err)

		kind, ok := httperr.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, httperr.KindTransition, kind)
	}
}

func TestConfirmTransitions(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	ap := pendingAt(now.Add(24 * time.Hour))
	require.NoError(t, Confirm(ap, now))
	assert.Equal(t, string(StatusConfirmed), ap.Status)
	require.NotNil(t, ap.ConfirmedAt)

	// confirmar duas vezes não é transição válida
	err := Confirm(ap, now)
	require.Error(t, err)
	kind, _ := httperr.KindOf(err)
	assert.Equal(t, httperr.KindTransition, kind)
}

func TestCompleteTransitions(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	// pending → completed (atendimento feito sem confirmação prévia)
	fromPending := pendingAt(now.Add(-time.Hour))
	require.NoError(t, Complete(fromPending, now))
	assert.Equal(t, string(StatusCompleted), fromPending.Status)
	require.NotNil(t, fromPending.CompletedAt)

	// confirmed → completed
	fromConfirmed := pendingAt(now.Add(-time.Hour))
	fromConfirmed.Status = string(StatusConfirmed)
	require.NoError(t, Complete(fromConfirmed, now))
	assert.Equal(t, string(StatusCompleted), fromConfirmed.Status)

	// estados finais não concluem de novo
	for _, status := range []Status{StatusCompleted, StatusCancelled} {
		ap := pendingAt(now)
		ap.Status = string(status)
		assert.Error(t, Complete(ap, now))
	}
}

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive(StatusPending))
	assert.True(t, IsActive(StatusConfirmed))
	assert.False(t, IsActive(StatusCompleted))
	assert.False(t, IsActive(StatusCancelled))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}
