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

// ServiceHandler mantém o catálogo de serviços do profissional.
// Mudança de duração ou desativação invalida a disponibilidade em cache.
type ServiceHandler struct {
	db    *gorm.DB
	cache *cache.Availability
}

func NewServiceHandler(db *gorm.DB, availCache *cache.Availability) *ServiceHandler {
	return &ServiceHandler{db: db, cache: availCache}
}

func (h *ServiceHandler) List(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextWorkerID).(uint)

	var services []models.Service
	if err := h.db.
		Where("worker_id = ?", workerID).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao listar serviços")
		return
	}

	httpresp.List(c, services)
}

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_minutes" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"gte=0"`
	Active      *bool   `json:"active"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextWorkerID).(uint)

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	service := models.Service{
		WorkerID:    workerID,
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Active:      true,
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao criar serviço")
		return
	}

	h.cache.InvalidateWorker(c.Request.Context(), workerID)
	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextWorkerID).(uint)
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.
		Where("id = ? AND worker_id = ?", id, workerID).
		First(&service).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	service.Name = req.Name
	service.Description = req.Description
	service.DurationMin = req.DurationMin
	service.Price = req.Price
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao atualizar serviço")
		return
	}

	h.cache.InvalidateWorker(c.Request.Context(), workerID)
	httpresp.OK(c, service)
}

// Toggle liga/desliga o serviço sem apagar o histórico de agendamentos
func (h *ServiceHandler) Toggle(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextWorkerID).(uint)
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.
		Where("id = ? AND worker_id = ?", id, workerID).
		First(&service).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado")
		return
	}

	service.Active = !service.Active
	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao atualizar serviço")
		return
	}

	h.cache.InvalidateWorker(c.Request.Context(), workerID)
	httpresp.OK(c, service)
}
