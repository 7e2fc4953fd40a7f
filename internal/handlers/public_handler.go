package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	usecase "github.com/BruksfildServices01/salon-scheduler/internal/usecase/scheduling"
)

// PublicHandler atende o fluxo do cliente final: calendário,
// catálogo, disponibilidade, criação e cancelamento por telefone.
type PublicHandler struct {
	db     *gorm.DB
	config *config.Config
	repo   domain.Repository

	availability *usecase.GetAvailability
	create       *usecase.CreateAppointment
	cancel       *usecase.CancelAppointment
	myAppts      *usecase.GetMyAppointments
}

func NewPublicHandler(
	db *gorm.DB,
	cfg *config.Config,
	repo domain.Repository,
	availability *usecase.GetAvailability,
	create *usecase.CreateAppointment,
	cancel *usecase.CancelAppointment,
	myAppts *usecase.GetMyAppointments,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		config:       cfg,
		repo:         repo,
		availability: availability,
		create:       create,
		cancel:       cancel,
		myAppts:      myAppts,
	}
}

// ======================================================
// CALENDÁRIO
// ======================================================

// GetCalendar devolve os próximos dias a partir de hoje (fuso do salão)
func (h *PublicHandler) GetCalendar(c *gin.Context) {
	horizon := h.config.CalendarHorizonDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 60 {
			httperr.BadRequest(c, "invalid_days", "Horizonte inválido (1-60)")
			return
		}
		horizon = parsed
	}

	today := nowInSalon(h.config)
	httpresp.List(c, domain.GenerateCalendar(today, horizon))
}

// ======================================================
// CATÁLOGO
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	workerID, ok := paramUint(c, "workerId")
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("worker_id = ? AND active = ?", workerID, true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao listar serviços")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListAdditionals(c *gin.Context) {
	workerID, ok := paramUint(c, "workerId")
	if !ok {
		return
	}

	var additionals []models.Additional
	if err := h.db.
		Where("worker_id = ? AND active = ?", workerID, true).
		Order("name ASC").
		Find(&additionals).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao listar adicionais")
		return
	}

	httpresp.List(c, additionals)
}

// ======================================================
// DISPONIBILIDADE
// ======================================================

func (h *PublicHandler) GetAvailability(c *gin.Context) {
	workerID, ok := queryUint(c, "worker_id")
	if !ok {
		return
	}
	serviceID, ok := queryUint(c, "service_id")
	if !ok {
		return
	}

	date, err := parseDateInSalon(h.config, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida, use YYYY-MM-DD")
		return
	}

	var additionalID *uint
	if raw := c.Query("additional_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_additional_id", "Adicional inválido")
			return
		}
		v := uint(id)
		additionalID = &v
	}

	result, err := h.availability.Execute(c.Request.Context(), usecase.AvailabilityInput{
		WorkerID:     workerID,
		ServiceID:    serviceID,
		AdditionalID: additionalID,
		Date:         date,
		Today:        nowInSalon(h.config),
	})
	if err != nil {
		httperr.WriteBusiness(c, err, "Erro ao calcular disponibilidade")
		return
	}

	httpresp.OK(c, result)
}

// ======================================================
// AGENDAMENTO
// ======================================================

type PublicCreateAppointmentRequest struct {
	WorkerID     uint   `json:"worker_id" binding:"required"`
	ServiceID    uint   `json:"service_id" binding:"required"`
	AdditionalID *uint  `json:"additional_id"`
	Date         string `json:"date" binding:"required"` // YYYY-MM-DD
	Time         string `json:"time" binding:"required"` // HH:mm
	Notes        string `json:"notes"`

	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
}

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	customer, err := h.repo.GetOrCreateCustomer(
		c.Request.Context(),
		strings.TrimSpace(req.CustomerName),
		normalizePhone(req.CustomerPhone),
		strings.ToLower(strings.TrimSpace(req.CustomerEmail)),
	)
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro ao registrar cliente")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), usecase.CreateAppointmentInput{
		WorkerID:     req.WorkerID,
		CustomerID:   customer.ID,
		ServiceID:    req.ServiceID,
		AdditionalID: req.AdditionalID,
		Date:         req.Date,
		Time:         req.Time,
		Notes:        req.Notes,
		Now:          nowInSalon(h.config),
	})
	if err != nil {
		httperr.WriteBusiness(c, err, "Erro ao criar agendamento")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":       ap.Code,
		"start_time": ap.StartTime,
		"end_time":   ap.EndTime,
		"status":     ap.Status,
	})
}

// ======================================================
// MEUS AGENDAMENTOS (por telefone)
// ======================================================

func (h *PublicHandler) MyAppointments(c *gin.Context) {
	phone := normalizePhone(c.Query("phone"))
	if phone == "" {
		httperr.BadRequest(c, "missing_phone", "Informe o telefone")
		return
	}

	result, err := h.myAppts.Execute(c.Request.Context(), phone, nowInSalon(h.config))
	if err != nil {
		httperr.WriteBusiness(c, err, "Erro ao buscar agendamentos")
		return
	}

	httpresp.OK(c, result)
}

// ======================================================
// CANCELAMENTO PÚBLICO
// ======================================================

type PublicCancelRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// CancelAppointment cancela pelo código público, exigindo o telefone
// do cliente como prova de posse do agendamento.
func (h *PublicHandler) CancelAppointment(c *gin.Context) {
	code := c.Param("code")

	var req PublicCancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe o telefone")
		return
	}

	var ap models.Appointment
	if err := h.db.
		Preload("Customer").
		Where("code = ?", code).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado")
		return
	}

	if ap.Customer.Phone != normalizePhone(req.Phone) {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado")
		return
	}

	cancelled, err := h.cancel.Execute(c.Request.Context(), ap.ID, nowInSalon(h.config))
	if err != nil {
		httperr.WriteBusiness(c, err, "Erro ao cancelar agendamento")
		return
	}

	httpresp.OK(c, gin.H{
		"code":         cancelled.Code,
		"status":       cancelled.Status,
		"cancelled_at": cancelled.CancelledAt,
	})
}

// ======================================================
// Helpers
// ======================================================

func paramUint(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Identificador inválido")
		return 0, false
	}
	return uint(id), true
}

func queryUint(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Parâmetro inválido")
		return 0, false
	}
	return uint(id), true
}

func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
