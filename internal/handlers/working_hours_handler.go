package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	usecase "github.com/BruksfildServices01/salon-scheduler/internal/usecase/scheduling"
)

type WorkingHoursHandler struct {
	get    *usecase.GetSchedule
	update *usecase.UpdateSchedule
}

func NewWorkingHoursHandler(
	get *usecase.GetSchedule,
	update *usecase.UpdateSchedule,
) *WorkingHoursHandler {
	return &WorkingHoursHandler{get: get, update: update}
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextWorkerID).(uint)

	entries, err := h.get.Execute(c.Request.Context(), workerID)
	if err != nil {
		httperr.WriteBusiness(c, err, "Erro ao buscar horário de atendimento")
		return
	}

	httpresp.List(c, entries)
}

type WorkingHoursEntry struct {
	Weekday    int    `json:"weekday"`
	Working    bool   `json:"working"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
}

type UpdateWorkingHoursRequest struct {
	Entries []WorkingHoursEntry `json:"entries" binding:"required"`
}

// Update substitui a semana inteira de uma vez. Entrada inválida
// rejeita a requisição sem tocar a configuração atual.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextWorkerID).(uint)

	var req UpdateWorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	entries := make([]models.WorkerSchedule, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, models.WorkerSchedule{
			WorkerID:   workerID,
			Weekday:    e.Weekday,
			Working:    e.Working,
			StartTime:  e.StartTime,
			EndTime:    e.EndTime,
			BreakStart: e.BreakStart,
			BreakEnd:   e.BreakEnd,
		})
	}

	if err := h.update.Execute(c.Request.Context(), workerID, entries); err != nil {
		httperr.WriteBusiness(c, err, "Horário de atendimento inválido")
		return
	}

	updated, err := h.get.Execute(c.Request.Context(), workerID)
	if err != nil {
		httperr.WriteBusiness(c, err, "Erro ao buscar horário de atendimento")
		return
	}

	httpresp.List(c, updated)
}
