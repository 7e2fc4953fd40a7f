package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List devolve os eventos mais recentes do profissional autenticado
func (h *AuditLogsHandler) List(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextWorkerID).(uint)

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 200 {
			httperr.BadRequest(c, "invalid_limit", "Limite inválido")
			return
		}
		limit = parsed
	}

	query := h.db.
		Where("worker_id = ?", workerID).
		Order("created_at DESC").
		Limit(limit)

	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}

	var logs []models.AuditLog
	if err := query.Find(&logs).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao listar auditoria")
		return
	}

	httpresp.List(c, logs)
}
