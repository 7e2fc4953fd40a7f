package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AdditionalHandler struct {
	db    *gorm.DB
	cache *cache.Availability
}

func NewAdditionalHandler(db *gorm.DB, availCache *cache.Availability) *AdditionalHandler {
	return &AdditionalHandler{db: db, cache: availCache}
}

func (h *AdditionalHandler) List(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextWorkerID).(uint)

	var additionals []models.Additional
	if err := h.db.
		Where("worker_id = ?", workerID).
		Order("name ASC").
		Find(&additionals).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao listar adicionais")
		return
	}

	httpresp.List(c, additionals)
}

type AdditionalRequest struct {
	Name             string  `json:"name" binding:"required"`
	ExtraDurationMin int     `json:"extra_duration_minutes" binding:"gte=0"`
	Price            float64 `json:"price" binding:"gte=0"`
	Active           *bool   `json:"active"`
}

func (h *AdditionalHandler) Create(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextWorkerID).(uint)

	var req AdditionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	additional := models.Additional{
		WorkerID:         workerID,
		Name:             req.Name,
		ExtraDurationMin: req.ExtraDurationMin,
		Price:            req.Price,
		Active:           true,
	}
	if req.Active != nil {
		additional.Active = *req.Active
	}

	if err := h.db.Create(&additional).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao criar adicional")
		return
	}

	h.cache.InvalidateWorker(c.Request.Context(), workerID)
	c.JSON(http.StatusCreated, additional)
}

func (h *AdditionalHandler) Update(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextWorkerID).(uint)
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var additional models.Additional
	if err := h.db.
		Where("id = ? AND worker_id = ?", id, workerID).
		First(&additional).Error; err != nil {
		httperr.NotFound(c, "additional_not_found", "Adicional não encontrado")
		return
	}

	var req AdditionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	additional.Name = req.Name
	additional.ExtraDurationMin = req.ExtraDurationMin
	additional.Price = req.Price
	if req.Active != nil {
		additional.Active = *req.Active
	}

	if err := h.db.Save(&additional).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao atualizar adicional")
		return
	}

	h.cache.InvalidateWorker(c.Request.Context(), workerID)
	httpresp.OK(c, additional)
}

func (h *AdditionalHandler) Toggle(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextWorkerID).(uint)
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var additional models.Additional
	if err := h.db.
		Where("id = ? AND worker_id = ?", id, workerID).
		First(&additional).Error; err != nil {
		httperr.NotFound(c, "additional_not_found", "Adicional não encontrado")
		return
	}

	additional.Active = !additional.Active
	if err := h.db.Save(&additional).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao atualizar adicional")
		return
	}

	h.cache.InvalidateWorker(c.Request.Context(), workerID)
	httpresp.OK(c, additional)
}
