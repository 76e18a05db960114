package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jfotso/immogest-backend/internal/handlers/dto"
	"github.com/jfotso/immogest-backend/internal/services"
)

// StatsHandler expõe as estatísticas públicas da API
type StatsHandler struct {
	statsService *services.StatsService
}

// NewStatsHandler cria um novo StatsHandler
func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// DashboardStats retorna os totais e a distribuição por status.
// Receita total é 0 quando não há vendas, nunca null.
func (h *StatsHandler) DashboardStats(c *gin.Context) {
	stats, err := h.statsService.Dashboard(c.Request.Context())
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}

// MonthlyRevenue retorna a receita dos últimos 12 meses-calendário
func (h *StatsHandler) MonthlyRevenue(c *gin.Context) {
	months, err := h.statsService.MonthlyRevenue(c.Request.Context(), time.Now().UTC())
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthRevenueResponses(months))
}
