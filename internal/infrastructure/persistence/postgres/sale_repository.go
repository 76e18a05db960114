package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
	"github.com/jfotso/immogest-backend/internal/domain/repositories"
)

// SaleRepository implementa repositories.SaleRepository
type SaleRepository struct {
	db *gorm.DB
}

// NewSaleRepository cria um novo SaleRepository
func NewSaleRepository(db *gorm.DB) repositories.SaleRepository {
	return &SaleRepository{db: db}
}

func (r *SaleRepository) Create(ctx context.Context, sale *entities.Sale) error {
	model := r.toModel(sale)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	sale.ID = model.ID
	sale.CreatedAt = model.CreatedAt
	return nil
}

func (r *SaleRepository) List(ctx context.Context, limit int) ([]*entities.Sale, error) {
	var models []*SaleModel

	query := r.getDB(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *SaleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&SaleModel{}).Count(&count).Error
	return count, err
}

func (r *SaleRepository) SumPrixVente(ctx context.Context) (int64, error) {
	// COALESCE cobre o caso sem vendas: receita zero, não NULL
	var total int64
	err := r.getDB(ctx).Model(&SaleModel{}).
		Select("COALESCE(SUM(prix_vente), 0)").
		Scan(&total).Error
	return total, err
}

func (r *SaleRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*entities.Sale, error) {
	var models []*SaleModel

	err := r.getDB(ctx).
		Where("date_vente >= ? AND date_vente < ?", from, to).
		Order("date_vente ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *SaleRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func (r *SaleRepository) toModel(sale *entities.Sale) *SaleModel {
	return &SaleModel{
		ID:                   sale.ID,
		PropertyID:           sale.PropertyID,
		ClientNom:            sale.ClientNom,
		ClientEmail:          sale.ClientEmail,
		ClientTelephone:      sale.ClientTelephone,
		ClientIdentite:       sale.ClientIdentite,
		ClientAdresse:        sale.ClientAdresse,
		PrixVente:            sale.PrixVente,
		FraisSupplementaires: sale.FraisSupplementaires,
		Remise:               sale.Remise,
		ModePaiement:         string(sale.ModePaiement),
		DateVente:            sale.DateVente,
		VendeurID:            sale.VendeurID,
		Notes:                sale.Notes,
		CreatedAt:            sale.CreatedAt,
	}
}

func (r *SaleRepository) toEntity(model *SaleModel) *entities.Sale {
	return &entities.Sale{
		ID:                   model.ID,
		PropertyID:           model.PropertyID,
		ClientNom:            model.ClientNom,
		ClientEmail:          model.ClientEmail,
		ClientTelephone:      model.ClientTelephone,
		ClientIdentite:       model.ClientIdentite,
		ClientAdresse:        model.ClientAdresse,
		PrixVente:            model.PrixVente,
		FraisSupplementaires: model.FraisSupplementaires,
		Remise:               model.Remise,
		ModePaiement:         entities.PaymentMode(model.ModePaiement),
		DateVente:            model.DateVente,
		VendeurID:            model.VendeurID,
		Notes:                model.Notes,
		CreatedAt:            model.CreatedAt,
	}
}

func (r *SaleRepository) toEntities(models []*SaleModel) []*entities.Sale {
	result := make([]*entities.Sale, len(models))
	for i, model := range models {
		result[i] = r.toEntity(model)
	}
	return result
}
