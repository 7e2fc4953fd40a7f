package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	WorkerID   uint
	CustomerID uint

	ServiceID    uint
	AdditionalID *uint

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string

	// instante atual, fornecido pelo caller
	Now time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	locks *WorkerLocks
	cache *cache.Availability
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	locks *WorkerLocks,
	availCache *cache.Availability,
	auditDispatcher *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		locks: locks,
		cache: availCache,
		audit: auditDispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Data / hora no calendário do caller
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		in.Now.Location(),
	)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date_or_time", "date")
	}

	if start.Before(in.Now) {
		return nil, httperr.ErrValidation("in_the_past", "date")
	}

	// --------------------------------------------------
	// 2️⃣ Cliente já persistido
	// --------------------------------------------------
	customer, err := uc.repo.GetCustomerByID(ctx, in.CustomerID)
	if err != nil {
		return nil, httperr.ErrNotFound("customer_not_found")
	}

	// --------------------------------------------------
	// 3️⃣ Serviço + adicional → duração total
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrNotFound("service_not_found")
	}
	if !service.Active {
		return nil, httperr.ErrValidation("service_inactive", "service_id")
	}

	totalMin := service.DurationMin

	if in.AdditionalID != nil {
		additional, err := uc.repo.GetAdditional(ctx, *in.AdditionalID)
		if err != nil {
			return nil, httperr.ErrNotFound("additional_not_found")
		}
		totalMin += additional.ExtraDurationMin
	}

	end := start.Add(time.Duration(totalMin) * time.Minute)

	// --------------------------------------------------
	// 4️⃣ Janela de atendimento + pausa
	// --------------------------------------------------
	blocked, err := uc.repo.GetBlockedDate(ctx, in.WorkerID, domain.Midnight(start))
	if err != nil {
		return nil, err
	}

	entry, err := uc.repo.GetScheduleEntry(ctx, in.WorkerID, int(start.Weekday()))
	if err != nil {
		return nil, err
	}
	if entry == nil && blocked == nil {
		def := domain.DefaultScheduleEntry(in.WorkerID, int(start.Weekday()))
		entry = &def
	}

	window := domain.ResolveWindow(start, entry, blocked)

	if !window.Working {
		if blocked != nil {
			return nil, httperr.ErrValidation("date_blocked", "date")
		}
		return nil, httperr.ErrValidation("outside_working_hours", "time")
	}

	if start.Before(window.Start) || end.After(window.End) {
		return nil, httperr.ErrValidation("outside_working_hours", "time")
	}

	if window.HasBreak && domain.Overlaps(start, end, window.BreakStart, window.BreakEnd) {
		return nil, httperr.ErrValidation("overlaps_break", "time")
	}

	// --------------------------------------------------
	// 5️⃣ Revalidação + insert serializados por worker
	// --------------------------------------------------
	lock := uc.locks.ForWorker(in.WorkerID)
	lock.Lock()
	defer lock.Unlock()

	ap := &models.Appointment{
		Code:         uuid.NewString(),
		WorkerID:     in.WorkerID,
		CustomerID:   customer.ID,
		ServiceID:    service.ID,
		AdditionalID: in.AdditionalID,
		StartTime:    start,
		EndTime:      end,
		Status:       string(domain.InitialStatus()),
		Notes:        in.Notes,
	}

	if err := uc.repo.CreateAppointmentGuarded(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Invalidação de cache + auditoria
	// --------------------------------------------------
	uc.cache.InvalidateWorker(ctx, in.WorkerID)

	uc.audit.Dispatch(audit.Event{
		WorkerID: in.WorkerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
