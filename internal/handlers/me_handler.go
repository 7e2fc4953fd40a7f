package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) Get(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextWorkerID).(uint)

	var worker models.Worker
	if err := h.db.First(&worker, workerID).Error; err != nil {
		httperr.NotFound(c, "worker_not_found", "Profissional não encontrado")
		return
	}

	httpresp.OK(c, worker)
}

type UpdateMeRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

func (h *MeHandler) Update(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextWorkerID).(uint)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var worker models.Worker
	if err := h.db.First(&worker, workerID).Error; err != nil {
		httperr.NotFound(c, "worker_not_found", "Profissional não encontrado")
		return
	}

	worker.Name = req.Name
	worker.Phone = req.Phone

	if err := h.db.Save(&worker).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao atualizar perfil")
		return
	}

	httpresp.OK(c, worker)
}
