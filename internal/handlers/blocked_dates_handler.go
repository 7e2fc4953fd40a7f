package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	usecase "github.com/BruksfildServices01/salon-scheduler/internal/usecase/scheduling"
)

type BlockedDatesHandler struct {
	config  *config.Config
	blocked *usecase.BlockedDates
}

func NewBlockedDatesHandler(
	cfg *config.Config,
	blocked *usecase.BlockedDates,
) *BlockedDatesHandler {
	return &BlockedDatesHandler{config: cfg, blocked: blocked}
}

func (h *BlockedDatesHandler) List(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextWorkerID).(uint)

	dates, err := h.blocked.List(c.Request.Context(), workerID, nowInSalon(h.config))
	if err != nil {
		httperr.WriteBusiness(c, err, "Erro ao listar bloqueios")
		return
	}

	httpresp.List(c, dates)
}

type BlockDateRequest struct {
	Date   string `json:"date" binding:"required"` // YYYY-MM-DD
	Reason string `json:"reason"`
}

func (h *BlockedDatesHandler) Create(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextWorkerID).(uint)

	var req BlockDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	date, err := parseDateInSalon(h.config, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida, use YYYY-MM-DD")
		return
	}

	bd, err := h.blocked.Add(c.Request.Context(), workerID, date, req.Reason)
	if err != nil {
		httperr.WriteBusiness(c, err, "Erro ao bloquear data")
		return
	}

	c.JSON(http.StatusCreated, bd)
}

func (h *BlockedDatesHandler) Delete(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextWorkerID).(uint)
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	if err := h.blocked.Remove(c.Request.Context(), workerID, id); err != nil {
		httperr.WriteBusiness(c, err, "Erro ao remover bloqueio")
		return
	}

	c.Status(http.StatusNoContent)
}
