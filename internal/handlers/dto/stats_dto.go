package dto

import (
	"github.com/jfotso/immogest-backend/internal/services"
)

// StatusCountResponse é a contagem de imóveis de um status.
// As chaves seguem o formato histórico da API (status__nom).
type StatusCountResponse struct {
	StatusNom     string `json:"status__nom"`
	StatusCouleur string `json:"status__couleur,omitempty"`
	Count         int64  `json:"count"`
}

// DashboardStatsResponse é a resposta de GET /api/dashboard/stats
type DashboardStatsResponse struct {
	TotalProprietes     int64                 `json:"total_proprietes"`
	TotalVentes         int64                 `json:"total_ventes"`
	RevenusTotal        int64                 `json:"revenus_total"`
	ProprietesParStatut []StatusCountResponse `json:"proprietes_par_statut"`
}

// ToDashboardStatsResponse monta a resposta pública de estatísticas
// (sem a cor: o payload histórico da API só traz nome e contagem)
func ToDashboardStatsResponse(stats *services.DashboardStats) DashboardStatsResponse {
	byStatus := make([]StatusCountResponse, len(stats.ByStatus))
	for i, sc := range stats.ByStatus {
		byStatus[i] = StatusCountResponse{StatusNom: sc.Nom, Count: sc.Count}
	}

	return DashboardStatsResponse{
		TotalProprietes:     stats.TotalProperties,
		TotalVentes:         stats.TotalSales,
		RevenusTotal:        stats.TotalRevenue,
		ProprietesParStatut: byStatus,
	}
}

// ManagerDashboardResponse é o painel completo do gestor
type ManagerDashboardResponse struct {
	TotalProprietes     int64                 `json:"total_proprietes"`
	TotalVentes         int64                 `json:"total_ventes"`
	TotalRevenus        int64                 `json:"total_revenus"`
	ProprietesParStatut []StatusCountResponse `json:"proprietes_par_statut"`
	VentesRecentes      []SaleResponse        `json:"ventes_recentes"`
	ProprietesRecentes  []PropertyResponse    `json:"proprietes_recentes"`
}

// ToManagerDashboardResponse monta o painel do gestor, com a cor de
// cada status para os gráficos
func ToManagerDashboardResponse(stats *services.DashboardStats) ManagerDashboardResponse {
	byStatus := make([]StatusCountResponse, len(stats.ByStatus))
	for i, sc := range stats.ByStatus {
		byStatus[i] = StatusCountResponse{
			StatusNom:     sc.Nom,
			StatusCouleur: sc.Couleur,
			Count:         sc.Count,
		}
	}

	return ManagerDashboardResponse{
		TotalProprietes:     stats.TotalProperties,
		TotalVentes:         stats.TotalSales,
		TotalRevenus:        stats.TotalRevenue,
		ProprietesParStatut: byStatus,
		VentesRecentes:      ToSaleResponses(stats.RecentSales),
		ProprietesRecentes:  ToPropertyResponses(stats.RecentProperties),
	}
}

// MonthRevenueResponse é a receita de um mês-calendário
type MonthRevenueResponse struct {
	Mois    string `json:"mois"`
	Revenus int64  `json:"revenus"`
}

// ToMonthRevenueResponses converte os buckets mensais
func ToMonthRevenueResponses(months []services.MonthRevenue) []MonthRevenueResponse {
	responses := make([]MonthRevenueResponse, len(months))
	for i, m := range months {
		responses[i] = MonthRevenueResponse{Mois: m.Label, Revenus: m.Revenue}
	}
	return responses
}

// AgentSummaryResponse são os números pessoais do painel do updater
type AgentSummaryResponse struct {
	TotalMesProprietes int64 `json:"total_mes_proprietes"`
	MesPhotos          int64 `json:"mes_photos"`
}

// ToAgentSummaryResponse converte o resumo do agente
func ToAgentSummaryResponse(summary *services.AgentSummary) AgentSummaryResponse {
	return AgentSummaryResponse{
		TotalMesProprietes: summary.Properties,
		MesPhotos:          summary.Photos,
	}
}
