package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
	"github.com/jfotso/immogest-backend/internal/domain/ports"
	"github.com/jfotso/immogest-backend/internal/domain/repositories"
)

// StatsService calcula as agregações dos dashboards. Tudo é recomputado
// a cada requisição: não há camada de cache nesta escala.
type StatsService struct {
	propertyRepo repositories.PropertyRepository
	saleRepo     repositories.SaleRepository
	logger       ports.Logger
}

// NewStatsService cria um novo StatsService
func NewStatsService(
	propertyRepo repositories.PropertyRepository,
	saleRepo repositories.SaleRepository,
	logger ports.Logger,
) *StatsService {
	return &StatsService{
		propertyRepo: propertyRepo,
		saleRepo:     saleRepo,
		logger:       logger,
	}
}

// DashboardStats agrega os números do painel de gestão
type DashboardStats struct {
	TotalProperties  int64
	TotalSales       int64
	TotalRevenue     int64
	ByStatus         []repositories.StatusCount
	RecentSales      []*entities.Sale
	RecentProperties []*entities.Property
}

// MonthRevenue é a receita de um mês-calendário. Label é a chave
// AAAA-MM do mês, neutra de locale; a formatação fica no cliente.
type MonthRevenue struct {
	Year    int
	Month   time.Month
	Label   string
	Revenue int64
}

// AgentSummary são os números pessoais do painel do photo updater
type AgentSummary struct {
	Properties int64
	Photos     int64
}

// Dashboard computa os totais gerais, a distribuição por status e os
// registros recentes. Receita total é zero quando não há vendas.
func (s *StatsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	totalProperties, err := s.propertyRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalSales, err := s.saleRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalRevenue, err := s.saleRepo.SumPrixVente(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.propertyRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	recentSales, err := s.saleRepo.List(ctx, 5)
	if err != nil {
		return nil, err
	}

	recentProperties, err := s.propertyRepo.List(ctx, repositories.PropertyFilters{Limit: 6})
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalProperties:  totalProperties,
		TotalSales:       totalSales,
		TotalRevenue:     totalRevenue,
		ByStatus:         byStatus,
		RecentSales:      recentSales,
		RecentProperties: recentProperties,
	}, nil
}

// MonthlyRevenue computa a receita dos últimos 12 meses-calendário,
// do mais antigo para o mais recente. Os limites dos buckets são sempre
// o primeiro dia do mês: uma venda no último dia de um mês fica nesse
// mês, nunca no seguinte.
func (s *StatsService) MonthlyRevenue(ctx context.Context, now time.Time) ([]MonthRevenue, error) {
	// time.Date normaliza meses fora do intervalo (janeiro-11 = fevereiro
	// do ano anterior), o que dá a aritmética de calendário correta.
	start := time.Date(now.Year(), now.Month()-11, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, time.UTC)

	sales, err := s.saleRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	buckets := make(map[int]int64)
	for _, sale := range sales {
		d := sale.DateVente.UTC()
		buckets[d.Year()*12+int(d.Month())-1] += sale.PrixVente
	}

	months := make([]MonthRevenue, 0, 12)
	for i := 0; i < 12; i++ {
		m := start.AddDate(0, i, 0)
		months = append(months, MonthRevenue{
			Year:    m.Year(),
			Month:   m.Month(),
			Label:   fmt.Sprintf("%04d-%02d", m.Year(), int(m.Month())),
			Revenue: buckets[m.Year()*12+int(m.Month())-1],
		})
	}

	return months, nil
}

// AgentSummary computa os números pessoais de um agente: imóveis
// cadastrados por ele e fotos nesses imóveis.
func (s *StatsService) AgentSummary(ctx context.Context, agentID string) (*AgentSummary, error) {
	properties, err := s.propertyRepo.CountByAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}

	photos, err := s.propertyRepo.CountImagesByAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}

	return &AgentSummary{Properties: properties, Photos: photos}, nil
}
