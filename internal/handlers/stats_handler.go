package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	usecase "github.com/BruksfildServices01/salon-scheduler/internal/usecase/scheduling"
)

const defaultPopularLimit = 5

type StatsHandler struct {
	config *config.Config
	stats  *usecase.GetStats
}

func NewStatsHandler(cfg *config.Config, stats *usecase.GetStats) *StatsHandler {
	return &StatsHandler{config: cfg, stats: stats}
}

// Today resume o dia corrente no fuso do salão
func (h *StatsHandler) Today(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextWorkerID).(uint)

	st, err := h.stats.Daily(c.Request.Context(), workerID, nowInSalon(h.config))
	if err != nil {
		httperr.WriteBusiness(c, err, "Erro ao calcular estatísticas")
		return
	}

	httpresp.OK(c, st)
}

func (h *StatsHandler) Week(c *gin.Context) {
	h.revenue(c, "week")
}

func (h *StatsHandler) Month(c *gin.Context) {
	h.revenue(c, "month")
}

func (h *StatsHandler) revenue(c *gin.Context, period string) {
	workerID := c.MustGet(middleware.ContextWorkerID).(uint)

	st, err := h.stats.Revenue(c.Request.Context(), workerID, period, nowInSalon(h.config))
	if err != nil {
		httperr.WriteBusiness(c, err, "Erro ao calcular receita")
		return
	}

	httpresp.OK(c, st)
}

func (h *StatsHandler) PopularServices(c *gin.Context) {
	workerID := c.MustGet(middleware.ContextWorkerID).(uint)

	limit := defaultPopularLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			httperr.BadRequest(c, "invalid_limit", "Limite inválido")
			return
		}
		limit = parsed
	}

	ranking, err := h.stats.PopularServices(c.Request.Context(), workerID, limit)
	if err != nil {
		httperr.WriteBusiness(c, err, "Erro ao rankear serviços")
		return
	}

	httpresp.List(c, ranking)
}
