package services

import (
	"context"
	errs "errors"
	"testing"
	"time"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
	"github.com/jfotso/immogest-backend/internal/domain/errors"
	"github.com/jfotso/immogest-backend/internal/domain/repositories"
)

func newSaleService(env *testEnv) *SaleService {
	return NewSaleService(env.saleRepo, env.propertyRepo, env.refRepo, env.uow, noopLogger{})
}

func saleInput(propertyID string) RecordSaleInput {
	return RecordSaleInput{
		PropertyID:           propertyID,
		ClientNom:            "Aline Mbarga",
		ClientEmail:          "aline.mbarga@example.cm",
		ClientTelephone:      "+237699000000",
		PrixVente:            45_000_000,
		FraisSupplementaires: 3_500_000,
		Remise:               300_000,
		ModePaiement:         entities.PaymentMobileMoney,
	}
}

func createProperty(t *testing.T, env *testEnv) *entities.Property {
	t.Helper()
	svc := newPropertyService(env, &fakeBlobStore{})
	property, err := svc.Create(context.Background(), env.propertyInput(t), "agent-1")
	if err != nil {
		t.Fatalf("erro ao criar imóvel: %v", err)
	}
	return property
}

func TestSaleService_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("registra a venda e marca o imóvel como vendido", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newSaleService(env)
		property := createProperty(t, env)

		sale, err := svc.Record(ctx, saleInput(property.ID), "vendeur-1")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if sale.Total() != 48_200_000 {
			t.Errorf("esperava total 48200000, obteve %d", sale.Total())
		}
		if sale.VendeurID != "vendeur-1" {
			t.Errorf("vendeur deveria vir do chamador, obteve '%s'", sale.VendeurID)
		}
		if sale.DateVente.IsZero() {
			t.Error("date_vente deveria receber o instante atual")
		}

		updated, err := env.propertyRepo.FindByID(ctx, property.ID)
		if err != nil {
			t.Fatalf("erro ao reler imóvel: %v", err)
		}
		status, err := env.refRepo.FindStatusByID(ctx, updated.StatusID)
		if err != nil || status == nil {
			t.Fatalf("erro ao resolver status: %v", err)
		}
		if status.Code != entities.StatusSold {
			t.Errorf("esperava status 'sold', obteve '%s'", status.Code)
		}
		if status.Nom != "Vendu" {
			t.Errorf("esperava nome 'Vendu', obteve '%s'", status.Nom)
		}
	})

	t.Run("imóvel já vendido recusa nova venda", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newSaleService(env)
		property := createProperty(t, env)

		if _, err := svc.Record(ctx, saleInput(property.ID), "vendeur-1"); err != nil {
			t.Fatalf("primeira venda falhou: %v", err)
		}

		_, err := svc.Record(ctx, saleInput(property.ID), "vendeur-2")
		if !errs.Is(err, errors.ErrPropertyAlreadySold) {
			t.Fatalf("esperava ErrPropertyAlreadySold, obteve %v", err)
		}

		count, err := env.saleRepo.Count(ctx)
		if err != nil {
			t.Fatalf("erro ao contar vendas: %v", err)
		}
		if count != 1 {
			t.Errorf("esperava exatamente 1 venda, obteve %d", count)
		}
	})

	t.Run("imóvel suspenso também recusa venda", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newSaleService(env)

		input := env.propertyInput(t)
		input.StatusID = env.statusID(t, entities.StatusSuspended)
		propertySvc := newPropertyService(env, &fakeBlobStore{})
		property, err := propertySvc.Create(ctx, input, "agent-1")
		if err != nil {
			t.Fatalf("erro ao criar: %v", err)
		}

		_, err = svc.Record(ctx, saleInput(property.ID), "vendeur-1")
		if !errs.Is(err, errors.ErrPropertyAlreadySold) {
			t.Errorf("esperava ErrPropertyAlreadySold, obteve %v", err)
		}
	})

	t.Run("imóvel desconhecido retorna NotFound", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newSaleService(env)

		_, err := svc.Record(ctx, saleInput("00000000-0000-0000-0000-000000000000"), "vendeur-1")
		if !errs.Is(err, errors.ErrPropertyNotFound) {
			t.Errorf("esperava ErrPropertyNotFound, obteve %v", err)
		}
	})

	t.Run("email do cliente inválido recusa a venda", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newSaleService(env)
		property := createProperty(t, env)

		input := saleInput(property.ID)
		input.ClientEmail = "pas-un-email"

		_, err := svc.Record(ctx, input, "vendeur-1")
		if !errs.Is(err, errors.ErrInvalidEmail) {
			t.Errorf("esperava ErrInvalidEmail, obteve %v", err)
		}
	})

	t.Run("falha na transição de status desfaz a venda inteira", func(t *testing.T) {
		env := newTestEnv(t)
		property := createProperty(t, env)

		failing := &failingPropertyRepo{PropertyRepository: env.propertyRepo}
		svc := NewSaleService(env.saleRepo, failing, env.refRepo, env.uow, noopLogger{})

		_, err := svc.Record(ctx, saleInput(property.ID), "vendeur-1")
		if err == nil {
			t.Fatal("esperava erro na transição de status")
		}

		count, err := env.saleRepo.Count(ctx)
		if err != nil {
			t.Fatalf("erro ao contar vendas: %v", err)
		}
		if count != 0 {
			t.Errorf("a venda deveria ter sido desfeita, restam %d", count)
		}

		current, err := env.propertyRepo.FindByID(ctx, property.ID)
		if err != nil {
			t.Fatalf("erro ao reler imóvel: %v", err)
		}
		if current.StatusID != env.statusID(t, entities.StatusAvailable) {
			t.Error("o status do imóvel não deveria ter mudado")
		}
	})

	t.Run("respeita a data de venda informada", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newSaleService(env)
		property := createProperty(t, env)

		input := saleInput(property.ID)
		input.DateVente = time.Date(2026, time.March, 31, 18, 0, 0, 0, time.UTC)

		sale, err := svc.Record(ctx, input, "vendeur-1")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if !sale.DateVente.Equal(input.DateVente) {
			t.Errorf("date_vente não preservada: %v", sale.DateVente)
		}
	})
}

func TestSaleService_List(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := newSaleService(env)

	first := createProperty(t, env)
	second := createProperty(t, env)

	older := saleInput(first.ID)
	older.DateVente = time.Now().UTC().Add(-48 * time.Hour)
	if _, err := svc.Record(ctx, older, "vendeur-1"); err != nil {
		t.Fatalf("erro na primeira venda: %v", err)
	}

	newer := saleInput(second.ID)
	newer.DateVente = time.Now().UTC()
	if _, err := svc.Record(ctx, newer, "vendeur-1"); err != nil {
		t.Fatalf("erro na segunda venda: %v", err)
	}

	sales, err := svc.List(ctx, 0)
	if err != nil {
		t.Fatalf("erro ao listar: %v", err)
	}
	if len(sales) != 2 {
		t.Fatalf("esperava 2 vendas, obteve %d", len(sales))
	}
	if sales[0].PropertyID != second.ID {
		t.Error("a venda mais recente deveria vir primeiro")
	}
}

// failingPropertyRepo força erro na atualização do imóvel para exercitar
// o rollback da transação de venda
type failingPropertyRepo struct {
	repositories.PropertyRepository
}

func (f *failingPropertyRepo) Update(ctx context.Context, property *entities.Property) error {
	return errs.New("update rejected")
}
