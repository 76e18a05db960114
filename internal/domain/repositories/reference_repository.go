package repositories

import (
	"context"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
)

// ReferenceRepository dá acesso aos dados de referência: cidades,
// quartiers, tipos e o conjunto fechado de status.
type ReferenceRepository interface {
	ListCities(ctx context.Context) ([]*entities.City, error)
	ListDistricts(ctx context.Context, cityID uint) ([]*entities.District, error)
	// DistrictInCity verifica a relação quartier -> cidade
	DistrictInCity(ctx context.Context, districtID, cityID uint) (bool, error)

	ListTypes(ctx context.Context) ([]*entities.PropertyType, error)

	ListStatuses(ctx context.Context) ([]*entities.PropertyStatus, error)
	FindStatusByID(ctx context.Context, id uint) (*entities.PropertyStatus, error)
	FindStatusByCode(ctx context.Context, code string) (*entities.PropertyStatus, error)
}
