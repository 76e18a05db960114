package repositories

import (
	"context"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
)

// PropertyRepository define a interface para persistência de imóveis.
// As imagens vivem aqui também: o ciclo de vida delas pertence ao imóvel.
type PropertyRepository interface {
	Create(ctx context.Context, property *entities.Property) error
	FindByID(ctx context.Context, id string) (*entities.Property, error)
	Update(ctx context.Context, property *entities.Property) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters PropertyFilters) ([]*entities.Property, error)

	Count(ctx context.Context) (int64, error)
	CountByAgent(ctx context.Context, agentID string) (int64, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)

	AddImage(ctx context.Context, image *entities.PropertyImage) error
	FindImageByID(ctx context.Context, id uint) (*entities.PropertyImage, error)
	DeleteImage(ctx context.Context, id uint) error
	ListImages(ctx context.Context, propertyID string) ([]*entities.PropertyImage, error)
	MainImage(ctx context.Context, propertyID string) (*entities.PropertyImage, error)
	// ClearMainImage remove o flag is_main de todas as imagens do imóvel
	ClearMainImage(ctx context.Context, propertyID string) error
	CountImagesByAgent(ctx context.Context, agentID string) (int64, error)
}

// PropertyFilters contém filtros para listagem de imóveis.
// Filtros são predicados de igualdade combinados com AND; a ordenação
// padrão é created_at decrescente.
type PropertyFilters struct {
	StatusCode    *string
	CityID        *uint
	AgentID       *string
	AvailableOnly bool // exclui status terminais (vendido, suspenso)
	LocatedOnly   bool // somente imóveis com latitude e longitude
	Limit         int  // 0 = sem limite
}

// StatusCount é a contagem de imóveis por status, com a cor de exibição
type StatusCount struct {
	Nom     string
	Couleur string
	Count   int64
}
