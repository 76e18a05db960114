package services

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
	"github.com/jfotso/immogest-backend/internal/domain/errors"
	"github.com/jfotso/immogest-backend/internal/domain/ports"
	"github.com/jfotso/immogest-backend/internal/domain/repositories"
)

// PropertyService contém a lógica de negócio do catálogo de imóveis
type PropertyService struct {
	propertyRepo repositories.PropertyRepository
	refRepo      repositories.ReferenceRepository
	blobs        ports.BlobStore
	uow          ports.UnitOfWork
	logger       ports.Logger
}

// NewPropertyService cria um novo PropertyService
func NewPropertyService(
	propertyRepo repositories.PropertyRepository,
	refRepo repositories.ReferenceRepository,
	blobs ports.BlobStore,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		refRepo:      refRepo,
		blobs:        blobs,
		uow:          uow,
		logger:       logger,
	}
}

// PropertyInput representa os dados de criação/edição de um imóvel.
// Agent e timestamps nunca vêm do cliente.
type PropertyInput struct {
	Titre       string
	Description string
	Prix        int64
	Superficie  float64
	Chambres    int
	SallesBain  int
	Adresse     string
	CityID      uint
	DistrictID  uint
	Latitude    *float64
	Longitude   *float64
	TypeID      uint
	StatusID    uint
}

// Create cria um imóvel. O agente vem sempre da identidade do chamador.
func (s *PropertyService) Create(ctx context.Context, input PropertyInput, agentID string) (*entities.Property, error) {
	property := &entities.Property{
		ID:          uuid.NewString(),
		Titre:       input.Titre,
		Description: input.Description,
		Prix:        input.Prix,
		Superficie:  input.Superficie,
		Chambres:    input.Chambres,
		SallesBain:  input.SallesBain,
		Adresse:     input.Adresse,
		CityID:      input.CityID,
		DistrictID:  input.DistrictID,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		TypeID:      input.TypeID,
		StatusID:    input.StatusID,
		AgentID:     agentID,
	}

	if err := property.Validate(); err != nil {
		return nil, errors.ErrInvalidInput
	}

	if err := s.checkReferences(ctx, property); err != nil {
		return nil, err
	}

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	s.logger.Info("property created", "id", property.ID, "agent", agentID)
	return property, nil
}

// Update substitui os campos editáveis do imóvel.
// Agente e timestamps são preservados.
func (s *PropertyService) Update(ctx context.Context, id string, input PropertyInput) (*entities.Property, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, errors.ErrPropertyNotFound
	}

	property.Titre = input.Titre
	property.Description = input.Description
	property.Prix = input.Prix
	property.Superficie = input.Superficie
	property.Chambres = input.Chambres
	property.SallesBain = input.SallesBain
	property.Adresse = input.Adresse
	property.CityID = input.CityID
	property.DistrictID = input.DistrictID
	property.Latitude = input.Latitude
	property.Longitude = input.Longitude
	property.TypeID = input.TypeID
	property.StatusID = input.StatusID

	if err := property.Validate(); err != nil {
		return nil, errors.ErrInvalidInput
	}

	if err := s.checkReferences(ctx, property); err != nil {
		return nil, err
	}

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

// Get busca um imóvel por ID
func (s *PropertyService) Get(ctx context.Context, id string) (*entities.Property, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, errors.ErrPropertyNotFound
	}
	return property, nil
}

// Delete remove o imóvel em cascata: imagens e vendas vão junto.
// Os blobs das imagens são removidos best-effort depois do banco.
func (s *PropertyService) Delete(ctx context.Context, id string) error {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if property == nil {
		return errors.ErrPropertyNotFound
	}

	images, err := s.propertyRepo.ListImages(ctx, id)
	if err != nil {
		return err
	}

	if err := s.propertyRepo.Delete(ctx, id); err != nil {
		return err
	}

	for _, img := range images {
		if err := s.blobs.Remove(ctx, img.ObjectKey); err != nil {
			s.logger.Warn("failed to remove image blob", "key", img.ObjectKey, "error", err)
		}
	}

	s.logger.Info("property deleted", "id", id)
	return nil
}

// List lista imóveis com filtros opcionais, do mais recente para o mais antigo
func (s *PropertyService) List(ctx context.Context, filters repositories.PropertyFilters) ([]*entities.Property, error) {
	return s.propertyRepo.List(ctx, filters)
}

// Located retorna os imóveis com coordenadas completas, para a carte
func (s *PropertyService) Located(ctx context.Context) ([]*entities.Property, error) {
	return s.propertyRepo.List(ctx, repositories.PropertyFilters{LocatedOnly: true})
}

// AttachImage anexa uma foto ao imóvel. Quando isMain é true, a troca do
// flag é uma unidade atômica: nenhum leitor observa duas imagens principais.
func (s *PropertyService) AttachImage(ctx context.Context, propertyID, fileName string, reader io.Reader, size int64, legende string, isMain bool) (*entities.PropertyImage, error) {
	property, err := s.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, errors.ErrPropertyNotFound
	}

	objectKey, url, err := s.blobs.Upload(ctx, "proprietes/"+propertyID, fileName, reader, size)
	if err != nil {
		return nil, err
	}

	image := &entities.PropertyImage{
		PropertyID: propertyID,
		ObjectKey:  objectKey,
		URL:        url,
		Legende:    legende,
		IsMain:     isMain,
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if isMain {
			if err := s.propertyRepo.ClearMainImage(txCtx, propertyID); err != nil {
				return err
			}
		}
		return s.propertyRepo.AddImage(txCtx, image)
	})
	if err != nil {
		// O banco recusou: não deixar o blob órfão
		if rmErr := s.blobs.Remove(ctx, objectKey); rmErr != nil {
			s.logger.Warn("failed to remove orphan blob", "key", objectKey, "error", rmErr)
		}
		return nil, err
	}

	s.logger.Info("image attached", "property", propertyID, "image", image.ID, "main", isMain)
	return image, nil
}

// DeleteImage remove uma foto. Se era a principal, o imóvel fica sem
// imagem principal: não há promoção automática de outra foto.
func (s *PropertyService) DeleteImage(ctx context.Context, imageID uint) error {
	image, err := s.propertyRepo.FindImageByID(ctx, imageID)
	if err != nil {
		return err
	}
	if image == nil {
		return errors.ErrImageNotFound
	}

	if err := s.propertyRepo.DeleteImage(ctx, imageID); err != nil {
		return err
	}

	if err := s.blobs.Remove(ctx, image.ObjectKey); err != nil {
		s.logger.Warn("failed to remove image blob", "key", image.ObjectKey, "error", err)
	}

	return nil
}

// ListImages lista as fotos de um imóvel, upload mais recente primeiro
func (s *PropertyService) ListImages(ctx context.Context, propertyID string) ([]*entities.PropertyImage, error) {
	property, err := s.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, errors.ErrPropertyNotFound
	}
	return s.propertyRepo.ListImages(ctx, propertyID)
}

// MainImage retorna a imagem principal do imóvel, ou nil quando não há
func (s *PropertyService) MainImage(ctx context.Context, propertyID string) (*entities.PropertyImage, error) {
	return s.propertyRepo.MainImage(ctx, propertyID)
}

// checkReferences valida as referências de catálogo do imóvel:
// o quartier precisa pertencer à cidade e o status precisa existir.
func (s *PropertyService) checkReferences(ctx context.Context, property *entities.Property) error {
	ok, err := s.refRepo.DistrictInCity(ctx, property.DistrictID, property.CityID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrDistrictNotInCity
	}

	status, err := s.refRepo.FindStatusByID(ctx, property.StatusID)
	if err != nil {
		return err
	}
	if status == nil {
		return errors.ErrStatusNotFound
	}

	return nil
}
