package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
	"github.com/jfotso/immogest-backend/internal/domain/repositories"
)

// PropertyRepository implementa repositories.PropertyRepository
type PropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository cria um novo PropertyRepository
func NewPropertyRepository(db *gorm.DB) repositories.PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) Create(ctx context.Context, property *entities.Property) error {
	model := r.toModel(property)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	property.CreatedAt = model.CreatedAt
	property.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*entities.Property, error) {
	var model PropertyModel

	db := r.getDB(ctx)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *PropertyRepository) Update(ctx context.Context, property *entities.Property) error {
	model := r.toModel(property)

	db := r.getDB(ctx)
	return db.Save(model).Error
}

// Delete remove o imóvel em cascata: imagens e vendas saem na mesma
// transação que a linha do imóvel.
func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	db := r.getDB(ctx)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&PropertyImageModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&SaleModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&PropertyModel{}).Error
	})
}

func (r *PropertyRepository) List(ctx context.Context, filters repositories.PropertyFilters) ([]*entities.Property, error) {
	var models []*PropertyModel

	db := r.getDB(ctx)
	query := db.Model(&PropertyModel{})

	if filters.StatusCode != nil || filters.AvailableOnly {
		query = query.Joins("JOIN status_propriete ON status_propriete.id = proprietes.status_id")
	}
	if filters.StatusCode != nil {
		query = query.Where("status_propriete.code = ?", *filters.StatusCode)
	}
	if filters.AvailableOnly {
		query = query.Where("status_propriete.is_terminal = ?", false)
	}
	if filters.CityID != nil {
		query = query.Where("proprietes.city_id = ?", *filters.CityID)
	}
	if filters.AgentID != nil {
		query = query.Where("proprietes.agent_id = ?", *filters.AgentID)
	}
	if filters.LocatedOnly {
		query = query.Where("proprietes.latitude IS NOT NULL AND proprietes.longitude IS NOT NULL")
	}

	query = query.Order("proprietes.created_at DESC")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *PropertyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&PropertyModel{}).Count(&count).Error
	return count, err
}

func (r *PropertyRepository) CountByAgent(ctx context.Context, agentID string) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&PropertyModel{}).Where("agent_id = ?", agentID).Count(&count).Error
	return count, err
}

func (r *PropertyRepository) CountByStatus(ctx context.Context) ([]repositories.StatusCount, error) {
	var rows []struct {
		Nom     string
		Couleur string
		Count   int64
	}

	err := r.getDB(ctx).Model(&PropertyModel{}).
		Select("status_propriete.nom AS nom, status_propriete.couleur AS couleur, COUNT(proprietes.id) AS count").
		Joins("JOIN status_propriete ON status_propriete.id = proprietes.status_id").
		Group("status_propriete.nom, status_propriete.couleur").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make([]repositories.StatusCount, len(rows))
	for i, row := range rows {
		counts[i] = repositories.StatusCount{Nom: row.Nom, Couleur: row.Couleur, Count: row.Count}
	}
	return counts, nil
}

func (r *PropertyRepository) AddImage(ctx context.Context, image *entities.PropertyImage) error {
	model := r.toImageModel(image)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	image.ID = model.ID
	image.UploadedAt = model.UploadedAt
	return nil
}

func (r *PropertyRepository) FindImageByID(ctx context.Context, id uint) (*entities.PropertyImage, error) {
	var model PropertyImageModel

	db := r.getDB(ctx)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toImageEntity(&model), nil
}

func (r *PropertyRepository) DeleteImage(ctx context.Context, id uint) error {
	return r.getDB(ctx).Where("id = ?", id).Delete(&PropertyImageModel{}).Error
}

func (r *PropertyRepository) ListImages(ctx context.Context, propertyID string) ([]*entities.PropertyImage, error) {
	var models []*PropertyImageModel

	err := r.getDB(ctx).
		Where("property_id = ?", propertyID).
		Order("uploaded_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	images := make([]*entities.PropertyImage, len(models))
	for i, model := range models {
		images[i] = r.toImageEntity(model)
	}
	return images, nil
}

func (r *PropertyRepository) MainImage(ctx context.Context, propertyID string) (*entities.PropertyImage, error) {
	var model PropertyImageModel

	err := r.getDB(ctx).
		Where("property_id = ? AND is_main = ?", propertyID, true).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toImageEntity(&model), nil
}

func (r *PropertyRepository) ClearMainImage(ctx context.Context, propertyID string) error {
	return r.getDB(ctx).Model(&PropertyImageModel{}).
		Where("property_id = ? AND is_main = ?", propertyID, true).
		Update("is_main", false).Error
}

func (r *PropertyRepository) CountImagesByAgent(ctx context.Context, agentID string) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&PropertyImageModel{}).
		Joins("JOIN proprietes ON proprietes.id = images_propriete.property_id").
		Where("proprietes.agent_id = ?", agentID).
		Count(&count).Error
	return count, err
}

// getDB extrai DB do contexto (para suportar transações)
func (r *PropertyRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func (r *PropertyRepository) toModel(property *entities.Property) *PropertyModel {
	return &PropertyModel{
		ID:          property.ID,
		Titre:       property.Titre,
		Description: property.Description,
		Prix:        property.Prix,
		Superficie:  property.Superficie,
		Chambres:    property.Chambres,
		SallesBain:  property.SallesBain,
		Adresse:     property.Adresse,
		CityID:      property.CityID,
		DistrictID:  property.DistrictID,
		Latitude:    property.Latitude,
		Longitude:   property.Longitude,
		TypeID:      property.TypeID,
		StatusID:    property.StatusID,
		AgentID:     property.AgentID,
		CreatedAt:   property.CreatedAt,
		UpdatedAt:   property.UpdatedAt,
	}
}

func (r *PropertyRepository) toEntity(model *PropertyModel) *entities.Property {
	return &entities.Property{
		ID:          model.ID,
		Titre:       model.Titre,
		Description: model.Description,
		Prix:        model.Prix,
		Superficie:  model.Superficie,
		Chambres:    model.Chambres,
		SallesBain:  model.SallesBain,
		Adresse:     model.Adresse,
		CityID:      model.CityID,
		DistrictID:  model.DistrictID,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		TypeID:      model.TypeID,
		StatusID:    model.StatusID,
		AgentID:     model.AgentID,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func (r *PropertyRepository) toEntities(models []*PropertyModel) []*entities.Property {
	result := make([]*entities.Property, len(models))
	for i, model := range models {
		result[i] = r.toEntity(model)
	}
	return result
}

func (r *PropertyRepository) toImageModel(image *entities.PropertyImage) *PropertyImageModel {
	return &PropertyImageModel{
		ID:         image.ID,
		PropertyID: image.PropertyID,
		ObjectKey:  image.ObjectKey,
		URL:        image.URL,
		Legende:    image.Legende,
		IsMain:     image.IsMain,
		UploadedAt: image.UploadedAt,
	}
}

func (r *PropertyRepository) toImageEntity(model *PropertyImageModel) *entities.PropertyImage {
	return &entities.PropertyImage{
		ID:         model.ID,
		PropertyID: model.PropertyID,
		ObjectKey:  model.ObjectKey,
		URL:        model.URL,
		Legende:    model.Legende,
		IsMain:     model.IsMain,
		UploadedAt: model.UploadedAt,
	}
}
