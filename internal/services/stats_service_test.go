package services

import (
	"context"
	"strings"
	"testing"
	"time"
)

func newStatsService(env *testEnv) *StatsService {
	return NewStatsService(env.propertyRepo, env.saleRepo, noopLogger{})
}

func TestStatsService_Dashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("catálogo vazio produz zeros, nunca null", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newStatsService(env)

		stats, err := svc.Dashboard(ctx)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if stats.TotalProperties != 0 || stats.TotalSales != 0 {
			t.Errorf("esperava totais zero: %+v", stats)
		}
		if stats.TotalRevenue != 0 {
			t.Errorf("receita sem vendas deveria ser 0, obteve %d", stats.TotalRevenue)
		}
		if len(stats.ByStatus) != 0 {
			t.Errorf("distribuição deveria ser vazia, obteve %v", stats.ByStatus)
		}
	})

	t.Run("agrega totais, receita e distribuição por status", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newStatsService(env)
		saleSvc := newSaleService(env)

		first := createProperty(t, env)
		createProperty(t, env)

		if _, err := saleSvc.Record(ctx, saleInput(first.ID), "vendeur-1"); err != nil {
			t.Fatalf("erro na venda: %v", err)
		}

		stats, err := svc.Dashboard(ctx)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if stats.TotalProperties != 2 {
			t.Errorf("esperava 2 imóveis, obteve %d", stats.TotalProperties)
		}
		if stats.TotalSales != 1 {
			t.Errorf("esperava 1 venda, obteve %d", stats.TotalSales)
		}
		if stats.TotalRevenue != 45_000_000 {
			t.Errorf("receita deveria somar prix_vente (45000000), obteve %d", stats.TotalRevenue)
		}

		counts := make(map[string]int64)
		for _, sc := range stats.ByStatus {
			counts[sc.Nom] = sc.Count
		}
		if counts["Vendu"] != 1 || counts["Disponible"] != 1 {
			t.Errorf("distribuição inesperada: %v", counts)
		}

		if len(stats.RecentSales) != 1 {
			t.Errorf("esperava 1 venda recente, obteve %d", len(stats.RecentSales))
		}
		if len(stats.RecentProperties) != 2 {
			t.Errorf("esperava 2 imóveis recentes, obteve %d", len(stats.RecentProperties))
		}
	})
}

func TestStatsService_MonthlyRevenue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	recordAt := func(t *testing.T, env *testEnv, prix int64, when time.Time) {
		t.Helper()
		property := createProperty(t, env)
		input := saleInput(property.ID)
		input.PrixVente = prix
		input.DateVente = when
		if _, err := newSaleService(env).Record(ctx, input, "vendeur-1"); err != nil {
			t.Fatalf("erro na venda: %v", err)
		}
	}

	t.Run("sem vendas produz 12 meses zerados", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newStatsService(env)

		months, err := svc.MonthlyRevenue(ctx, now)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if len(months) != 12 {
			t.Fatalf("esperava 12 meses, obteve %d", len(months))
		}
		if months[0].Year != 2025 || months[0].Month != time.September {
			t.Errorf("primeiro mês deveria ser setembro 2025, obteve %s %d", months[0].Month, months[0].Year)
		}
		if months[0].Label != "2025-09" || months[11].Label != "2026-08" {
			t.Errorf("labels deveriam ser chaves AAAA-MM: %s ... %s", months[0].Label, months[11].Label)
		}
		if months[11].Year != 2026 || months[11].Month != time.August {
			t.Errorf("último mês deveria ser agosto 2026, obteve %s %d", months[11].Month, months[11].Year)
		}
		for _, m := range months {
			if m.Revenue != 0 {
				t.Errorf("mês %s deveria ser zero, obteve %d", m.Label, m.Revenue)
			}
		}
	})

	t.Run("venda no último dia do mês fica no próprio mês", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newStatsService(env)

		// 23h59 de 31 de março: nada disso pode vazar para abril
		recordAt(t, env, 10_000_000, time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC))

		months, err := svc.MonthlyRevenue(ctx, now)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		byMonth := make(map[time.Month]int64)
		for _, m := range months {
			byMonth[m.Month] = m.Revenue
		}
		if byMonth[time.March] != 10_000_000 {
			t.Errorf("março deveria ter 10000000, obteve %d", byMonth[time.March])
		}
		if byMonth[time.April] != 0 {
			t.Errorf("abril deveria ser zero, obteve %d", byMonth[time.April])
		}
	})

	t.Run("soma as vendas do mesmo mês e ignora as fora da janela", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newStatsService(env)

		recordAt(t, env, 10_000_000, time.Date(2026, time.June, 5, 10, 0, 0, 0, time.UTC))
		recordAt(t, env, 5_000_000, time.Date(2026, time.June, 20, 10, 0, 0, 0, time.UTC))
		// Fora da janela de 12 meses
		recordAt(t, env, 99_000_000, time.Date(2025, time.July, 1, 10, 0, 0, 0, time.UTC))

		months, err := svc.MonthlyRevenue(ctx, now)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		var juin int64
		var total int64
		for _, m := range months {
			total += m.Revenue
			if m.Month == time.June && m.Year == 2026 {
				juin = m.Revenue
			}
		}
		if juin != 15_000_000 {
			t.Errorf("junho deveria somar 15000000, obteve %d", juin)
		}
		if total != 15_000_000 {
			t.Errorf("venda fora da janela vazou para os buckets: total %d", total)
		}
	})
}

func TestStatsService_AgentSummary(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	statsSvc := newStatsService(env)
	propertySvc := newPropertyService(env, &fakeBlobStore{})

	mine, err := propertySvc.Create(ctx, env.propertyInput(t), "agent-1")
	if err != nil {
		t.Fatalf("erro ao criar: %v", err)
	}
	theirs, err := propertySvc.Create(ctx, env.propertyInput(t), "agent-2")
	if err != nil {
		t.Fatalf("erro ao criar: %v", err)
	}

	attach := func(propertyID, name string) {
		t.Helper()
		if _, err := propertySvc.AttachImage(ctx, propertyID, name, strings.NewReader("x"), 1, "", false); err != nil {
			t.Fatalf("erro na foto: %v", err)
		}
	}
	attach(mine.ID, "a.jpg")
	attach(mine.ID, "b.jpg")
	attach(theirs.ID, "c.jpg")

	summary, err := statsSvc.AgentSummary(ctx, "agent-1")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if summary.Properties != 1 {
		t.Errorf("esperava 1 imóvel do agente, obteve %d", summary.Properties)
	}
	if summary.Photos != 2 {
		t.Errorf("esperava 2 fotos do agente, obteve %d", summary.Photos)
	}
}
