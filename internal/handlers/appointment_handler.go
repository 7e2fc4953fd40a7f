package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	usecase "github.com/BruksfildServices01/salon-scheduler/internal/usecase/scheduling"
)

// AppointmentHandler atende a agenda do profissional autenticado.
type AppointmentHandler struct {
	config *config.Config
	repo   domain.Repository

	list     *usecase.ListAppointments
	confirm  *usecase.ConfirmAppointment
	complete *usecase.CompleteAppointment
	cancel   *usecase.CancelAppointment
}

func NewAppointmentHandler(
	cfg *config.Config,
	repo domain.Repository,
	list *usecase.ListAppointments,
	confirm *usecase.ConfirmAppointment,
	complete *usecase.CompleteAppointment,
	cancel *usecase.CancelAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		config:   cfg,
		repo:     repo,
		list:     list,
		confirm:  confirm,
		complete: complete,
		cancel:   cancel,
	}
}

// ======================================================
// LISTAGEM
// ======================================================

// ListByDate devolve a agenda de um dia (default: hoje no fuso do salão)
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextWorkerID).(uint)

	date := nowInSalon(h.config)
	if raw := c.Query("date"); raw != "" {
		parsed, err := parseDateInSalon(h.config, raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida, use YYYY-MM-DD")
			return
		}
		date = parsed
	}

	items, err := h.list.ByDate(c.Request.Context(), workerID, date)
	if err != nil {
		httperr.WriteBusiness(c, err, "Erro ao listar agendamentos")
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextWorkerID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Ano inválido")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido")
		return
	}

	items, err := h.list.ByMonth(
		c.Request.Context(),
		workerID,
		year,
		month,
		salonLocation(h.config),
	)
	if err != nil {
		httperr.WriteBusiness(c, err, "Erro ao listar agendamentos")
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// TRANSIÇÕES DE STATUS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextWorkerID).(uint)
	apID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	ap, err := h.confirm.Execute(c.Request.Context(), workerID, apID, nowInSalon(h.config))
	if err != nil {
		httperr.WriteBusiness(c, err, "Erro ao confirmar agendamento")
		return
	}

	httpresp.OK(c, gin.H{
		"id":           ap.ID,
		"status":       ap.Status,
		"confirmed_at": ap.ConfirmedAt,
	})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextWorkerID).(uint)
	apID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), workerID, apID, nowInSalon(h.config))
	if err != nil {
		httperr.WriteBusiness(c, err, "Erro ao concluir agendamento")
		return
	}

	httpresp.OK(c, gin.H{
		"id":           ap.ID,
		"status":       ap.Status,
		"completed_at": ap.CompletedAt,
	})
}

// Cancel submete o profissional à mesma janela mínima de
// antecedência aplicada ao cliente final.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextWorkerID).(uint)
	apID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	existing, err := h.repo.GetAppointment(c.Request.Context(), apID)
	if err != nil || existing.WorkerID != workerID {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), apID, nowInSalon(h.config))
	if err != nil {
		httperr.WriteBusiness(c, err, "Erro ao cancelar agendamento")
		return
	}

	httpresp.OK(c, gin.H{
		"id":           ap.ID,
		"status":       ap.Status,
		"cancelled_at": ap.CancelledAt,
	})
}
