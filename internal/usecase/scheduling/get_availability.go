package scheduling

import (
	"context"
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type AvailabilityInput struct {
	WorkerID     uint
	ServiceID    uint
	AdditionalID *uint
	Date         time.Time

	// "hoje" sempre vem do caller — o engine não lê relógio
	Today time.Time
}

type AvailabilityResult struct {
	Date             string             `json:"date"`
	WorkerID         uint               `json:"worker_id"`
	ServiceID        uint               `json:"service_id"`
	AdditionalID     *uint              `json:"additional_id"`
	TotalDurationMin int                `json:"total_duration_minutes"`
	Slots            []domain.TimeSlot  `json:"available_slots"`
	Groups           []domain.SlotGroup `json:"slot_groups"`
	IsBlocked        bool               `json:"is_blocked"`
	BlockReason      string             `json:"block_reason,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

type GetAvailability struct {
	repo        domain.Repository
	cache       *cache.Availability
	granularity time.Duration
}

func NewGetAvailability(
	repo domain.Repository,
	availCache *cache.Availability,
	granularity time.Duration,
) *GetAvailability {
	if granularity <= 0 {
		granularity = domain.DefaultSlotGranularityMin * time.Minute
	}
	return &GetAvailability{
		repo:        repo,
		cache:       availCache,
		granularity: granularity,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*AvailabilityResult, error) {

	// --------------------------------------------------
	// 1️⃣ Serviço + adicional → duração total
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrNotFound("service_not_found")
	}

	totalMin := service.DurationMin

	if in.AdditionalID != nil {
		additional, err := uc.repo.GetAdditional(ctx, *in.AdditionalID)
		if err != nil {
			return nil, httperr.ErrNotFound("additional_not_found")
		}
		totalMin += additional.ExtraDurationMin
	}

	result := &AvailabilityResult{
		Date:             in.Date.Format("2006-01-02"),
		WorkerID:         in.WorkerID,
		ServiceID:        in.ServiceID,
		AdditionalID:     in.AdditionalID,
		TotalDurationMin: totalMin,
		Slots:            []domain.TimeSlot{},
		Groups:           []domain.SlotGroup{},
	}

	// --------------------------------------------------
	// 2️⃣ Data no passado → lista vazia, nunca erro
	// --------------------------------------------------
	if domain.Midnight(in.Date).Before(domain.Midnight(in.Today)) {
		return result, nil
	}

	// --------------------------------------------------
	// 3️⃣ Cache (leitura)
	// --------------------------------------------------
	if payload, ok := uc.cache.Get(ctx, in.WorkerID, result.Date, in.ServiceID, in.AdditionalID); ok {
		var cached AvailabilityResult
		if err := json.Unmarshal([]byte(payload), &cached); err == nil {
			return &cached, nil
		}
	}

	// --------------------------------------------------
	// 4️⃣ Janela de atendimento (bloqueio > horário semanal)
	// --------------------------------------------------
	blocked, err := uc.repo.GetBlockedDate(ctx, in.WorkerID, domain.Midnight(in.Date))
	if err != nil {
		return nil, err
	}

	entry, err := uc.repo.GetScheduleEntry(ctx, in.WorkerID, int(in.Date.Weekday()))
	if err != nil {
		return nil, err
	}
	if entry == nil && blocked == nil {
		def := domain.DefaultScheduleEntry(in.WorkerID, int(in.Date.Weekday()))
		entry = &def
	}

	window := domain.ResolveWindow(in.Date, entry, blocked)
	if !window.Working {
		result.IsBlocked = blocked != nil
		result.BlockReason = window.BlockReason
		return result, nil
	}

	// --------------------------------------------------
	// 5️⃣ Agendamentos ativos do dia
	// --------------------------------------------------
	dayStart, dayEnd := domain.DayWindow(in.Date)
	appointments, err := uc.repo.ListActiveAppointmentsForDay(
		ctx,
		in.WorkerID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Slots + agrupamento por período
	// --------------------------------------------------
	result.Slots = domain.BuildSlots(
		window,
		time.Duration(totalMin)*time.Minute,
		uc.granularity,
		appointments,
	)
	result.Groups = domain.GroupSlots(result.Slots)

	// --------------------------------------------------
	// 7️⃣ Cache (escrita)
	// --------------------------------------------------
	if payload, err := json.Marshal(result); err == nil {
		uc.cache.Set(ctx, in.WorkerID, result.Date, in.ServiceID, in.AdditionalID, string(payload))
	}

	return result, nil
}
