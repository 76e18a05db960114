package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jfotso/immogest-backend/internal/handlers/dto"
	"github.com/jfotso/immogest-backend/internal/services"
)

// ManagerHandler expõe o painel de gestão: dashboard completo e a
// página de estatísticas com a receita mensal.
type ManagerHandler struct {
	statsService *services.StatsService
}

// NewManagerHandler cria um novo ManagerHandler
func NewManagerHandler(statsService *services.StatsService) *ManagerHandler {
	return &ManagerHandler{
		statsService: statsService,
	}
}

// Dashboard retorna os totais, a distribuição por status (com cor) e os
// registros recentes do painel de gestão
func (h *ManagerHandler) Dashboard(c *gin.Context) {
	stats, err := h.statsService.Dashboard(c.Request.Context())
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToManagerDashboardResponse(stats))
}

// Statistiques retorna a página de estatísticas: distribuição por
// status e a receita dos últimos 12 meses-calendário
func (h *ManagerHandler) Statistiques(c *gin.Context) {
	stats, err := h.statsService.Dashboard(c.Request.Context())
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	months, err := h.statsService.MonthlyRevenue(c.Request.Context(), time.Now().UTC())
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	dashboard := dto.ToManagerDashboardResponse(stats)
	c.JSON(http.StatusOK, gin.H{
		"total_proprietes":      dashboard.TotalProprietes,
		"total_ventes":          dashboard.TotalVentes,
		"total_revenus":         dashboard.TotalRevenus,
		"proprietes_par_statut": dashboard.ProprietesParStatut,
		"revenus_mensuels":      dto.ToMonthRevenueResponses(months),
	})
}
