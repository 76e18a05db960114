package services

import (
	"context"
	"time"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
	"github.com/jfotso/immogest-backend/internal/domain/errors"
	"github.com/jfotso/immogest-backend/internal/domain/ports"
	"github.com/jfotso/immogest-backend/internal/domain/repositories"
	"github.com/jfotso/immogest-backend/internal/domain/valueobjects"
)

// SaleService registra vendas e conduz a transição de status do imóvel
type SaleService struct {
	saleRepo     repositories.SaleRepository
	propertyRepo repositories.PropertyRepository
	refRepo      repositories.ReferenceRepository
	uow          ports.UnitOfWork
	logger       ports.Logger
}

// NewSaleService cria um novo SaleService
func NewSaleService(
	saleRepo repositories.SaleRepository,
	propertyRepo repositories.PropertyRepository,
	refRepo repositories.ReferenceRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		propertyRepo: propertyRepo,
		refRepo:      refRepo,
		uow:          uow,
		logger:       logger,
	}
}

// RecordSaleInput representa os dados para registrar uma venda.
// O vendedor nunca vem do cliente.
type RecordSaleInput struct {
	PropertyID           string
	ClientNom            string
	ClientEmail          string
	ClientTelephone      string
	ClientIdentite       string
	ClientAdresse        string
	PrixVente            int64
	FraisSupplementaires int64
	Remise               int64
	ModePaiement         entities.PaymentMode
	DateVente            time.Time
	Notes                string
}

// Record registra a venda e marca o imóvel como vendido em uma única
// transação: ou os dois efeitos acontecem, ou nenhum.
func (s *SaleService) Record(ctx context.Context, input RecordSaleInput, vendeurID string) (*entities.Sale, error) {
	email, err := valueobjects.NewEmail(input.ClientEmail)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	dateVente := input.DateVente
	if dateVente.IsZero() {
		dateVente = time.Now().UTC()
	}

	sale := &entities.Sale{
		PropertyID:           input.PropertyID,
		ClientNom:            input.ClientNom,
		ClientEmail:          email.String(),
		ClientTelephone:      input.ClientTelephone,
		ClientIdentite:       input.ClientIdentite,
		ClientAdresse:        input.ClientAdresse,
		PrixVente:            input.PrixVente,
		FraisSupplementaires: input.FraisSupplementaires,
		Remise:               input.Remise,
		ModePaiement:         input.ModePaiement,
		DateVente:            dateVente,
		VendeurID:            vendeurID,
		Notes:                input.Notes,
	}

	if err := sale.Validate(); err != nil {
		return nil, errors.ErrInvalidInput
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		property, err := s.propertyRepo.FindByID(txCtx, input.PropertyID)
		if err != nil {
			return err
		}
		if property == nil {
			return errors.ErrPropertyNotFound
		}

		// Uma venda ativa por imóvel: status terminal recusa nova venda
		current, err := s.refRepo.FindStatusByID(txCtx, property.StatusID)
		if err != nil {
			return err
		}
		if current != nil && current.IsTerminal {
			return errors.ErrPropertyAlreadySold
		}

		if err := s.saleRepo.Create(txCtx, sale); err != nil {
			return err
		}

		sold, err := s.refRepo.FindStatusByCode(txCtx, entities.StatusSold)
		if err != nil {
			return err
		}
		if sold == nil {
			return errors.ErrStatusNotFound
		}

		property.StatusID = sold.ID
		return s.propertyRepo.Update(txCtx, property)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("sale recorded",
		"sale", sale.ID,
		"property", sale.PropertyID,
		"total", sale.Total(),
		"vendeur", vendeurID,
	)
	return sale, nil
}

// List lista as vendas, da mais recente para a mais antiga
func (s *SaleService) List(ctx context.Context, limit int) ([]*entities.Sale, error) {
	return s.saleRepo.List(ctx, limit)
}
