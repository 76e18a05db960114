package repositories

import (
	"context"
	"time"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
)

// SaleRepository define a interface para persistência de vendas.
// Vendas são imutáveis: não há update nem delete.
type SaleRepository interface {
	Create(ctx context.Context, sale *entities.Sale) error
	// List retorna vendas da mais recente para a mais antiga; limit 0 = todas
	List(ctx context.Context, limit int) ([]*entities.Sale, error)
	Count(ctx context.Context) (int64, error)
	SumPrixVente(ctx context.Context) (int64, error)
	// ListBetween retorna vendas com date_vente em [from, to)
	ListBetween(ctx context.Context, from, to time.Time) ([]*entities.Sale, error)
}
