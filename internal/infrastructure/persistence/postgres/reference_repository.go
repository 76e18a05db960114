package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
	"github.com/jfotso/immogest-backend/internal/domain/repositories"
)

// ReferenceRepository implementa repositories.ReferenceRepository
type ReferenceRepository struct {
	db *gorm.DB
}

// NewReferenceRepository cria um novo ReferenceRepository
func NewReferenceRepository(db *gorm.DB) repositories.ReferenceRepository {
	return &ReferenceRepository{db: db}
}

func (r *ReferenceRepository) ListCities(ctx context.Context) ([]*entities.City, error) {
	var models []*CityModel

	if err := r.getDB(ctx).Order("nom ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	cities := make([]*entities.City, len(models))
	for i, model := range models {
		cities[i] = &entities.City{ID: model.ID, Nom: model.Nom, CreatedAt: model.CreatedAt}
	}
	return cities, nil
}

func (r *ReferenceRepository) ListDistricts(ctx context.Context, cityID uint) ([]*entities.District, error) {
	var models []*DistrictModel

	query := r.getDB(ctx).Order("nom ASC")
	if cityID > 0 {
		query = query.Where("city_id = ?", cityID)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	districts := make([]*entities.District, len(models))
	for i, model := range models {
		districts[i] = &entities.District{
			ID:        model.ID,
			Nom:       model.Nom,
			CityID:    model.CityID,
			CreatedAt: model.CreatedAt,
		}
	}
	return districts, nil
}

func (r *ReferenceRepository) DistrictInCity(ctx context.Context, districtID, cityID uint) (bool, error) {
	var count int64
	err := r.getDB(ctx).Model(&DistrictModel{}).
		Where("id = ? AND city_id = ?", districtID, cityID).
		Count(&count).Error
	return count > 0, err
}

func (r *ReferenceRepository) ListTypes(ctx context.Context) ([]*entities.PropertyType, error) {
	var models []*PropertyTypeModel

	if err := r.getDB(ctx).Order("nom ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	types := make([]*entities.PropertyType, len(models))
	for i, model := range models {
		types[i] = &entities.PropertyType{
			ID:          model.ID,
			Nom:         model.Nom,
			Description: model.Description,
		}
	}
	return types, nil
}

func (r *ReferenceRepository) ListStatuses(ctx context.Context) ([]*entities.PropertyStatus, error) {
	var models []*PropertyStatusModel

	if err := r.getDB(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	statuses := make([]*entities.PropertyStatus, len(models))
	for i, model := range models {
		statuses[i] = r.toStatusEntity(model)
	}
	return statuses, nil
}

func (r *ReferenceRepository) FindStatusByID(ctx context.Context, id uint) (*entities.PropertyStatus, error) {
	var model PropertyStatusModel

	if err := r.getDB(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toStatusEntity(&model), nil
}

func (r *ReferenceRepository) FindStatusByCode(ctx context.Context, code string) (*entities.PropertyStatus, error) {
	var model PropertyStatusModel

	if err := r.getDB(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toStatusEntity(&model), nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *ReferenceRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *ReferenceRepository) toStatusEntity(model *PropertyStatusModel) *entities.PropertyStatus {
	return &entities.PropertyStatus{
		ID:         model.ID,
		Code:       model.Code,
		Nom:        model.Nom,
		Couleur:    model.Couleur,
		IsTerminal: model.IsTerminal,
	}
}
