package dto

import (
	"time"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
	"github.com/jfotso/immogest-backend/internal/services"
)

// PropertyRequest representa a criação/edição de um imóvel.
// Agent e timestamps nunca são aceitos do cliente.
type PropertyRequest struct {
	Titre       string   `json:"titre" binding:"required,max=200"`
	Description string   `json:"description" binding:"required"`
	Prix        int64    `json:"prix" binding:"min=0"`
	Superficie  float64  `json:"superficie" binding:"required,gt=0"`
	Chambres    int      `json:"chambres" binding:"min=0"`
	SallesBain  int      `json:"salles_bain" binding:"min=0"`
	Adresse     string   `json:"adresse" binding:"required,max=300"`
	VilleID     uint     `json:"ville_id" binding:"required"`
	QuartierID  uint     `json:"quartier_id" binding:"required"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,longitude"`
	TypeID      uint     `json:"type_id" binding:"required"`
	StatusID    uint     `json:"status_id" binding:"required"`
}

// ToInput converte a requisição para o input do serviço
func (r *PropertyRequest) ToInput() services.PropertyInput {
	return services.PropertyInput{
		Titre:       r.Titre,
		Description: r.Description,
		Prix:        r.Prix,
		Superficie:  r.Superficie,
		Chambres:    r.Chambres,
		SallesBain:  r.SallesBain,
		Adresse:     r.Adresse,
		CityID:      r.VilleID,
		DistrictID:  r.QuartierID,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		TypeID:      r.TypeID,
		StatusID:    r.StatusID,
	}
}

// PropertyResponse representa a resposta de um imóvel
type PropertyResponse struct {
	ID          string    `json:"id"`
	Titre       string    `json:"titre"`
	Description string    `json:"description"`
	Prix        int64     `json:"prix"`
	Superficie  float64   `json:"superficie"`
	Chambres    int       `json:"chambres"`
	SallesBain  int       `json:"salles_bain"`
	Adresse     string    `json:"adresse"`
	VilleID     uint      `json:"ville_id"`
	QuartierID  uint      `json:"quartier_id"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	TypeID      uint      `json:"type_id"`
	StatusID    uint      `json:"status_id"`
	AgentID     string    `json:"agent_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToPropertyResponse converte uma entidade Property para PropertyResponse
func ToPropertyResponse(property *entities.Property) PropertyResponse {
	return PropertyResponse{
		ID:          property.ID,
		Titre:       property.Titre,
		Description: property.Description,
		Prix:        property.Prix,
		Superficie:  property.Superficie,
		Chambres:    property.Chambres,
		SallesBain:  property.SallesBain,
		Adresse:     property.Adresse,
		VilleID:     property.CityID,
		QuartierID:  property.DistrictID,
		Latitude:    property.Latitude,
		Longitude:   property.Longitude,
		TypeID:      property.TypeID,
		StatusID:    property.StatusID,
		AgentID:     property.AgentID,
		CreatedAt:   property.CreatedAt,
		UpdatedAt:   property.UpdatedAt,
	}
}

// ToPropertyResponses converte uma lista de imóveis
func ToPropertyResponses(properties []*entities.Property) []PropertyResponse {
	responses := make([]PropertyResponse, len(properties))
	for i, property := range properties {
		responses[i] = ToPropertyResponse(property)
	}
	return responses
}

// ImageResponse representa a resposta de uma foto
type ImageResponse struct {
	ID           uint      `json:"id"`
	ProprieteID  string    `json:"propriete_id"`
	URL          string    `json:"url"`
	Legende      string    `json:"legende"`
	IsMain       bool      `json:"is_main"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// ToImageResponse converte uma entidade PropertyImage para ImageResponse
func ToImageResponse(image *entities.PropertyImage) ImageResponse {
	return ImageResponse{
		ID:          image.ID,
		ProprieteID: image.PropertyID,
		URL:         image.URL,
		Legende:     image.Legende,
		IsMain:      image.IsMain,
		UploadedAt:  image.UploadedAt,
	}
}

// ToImageResponses converte uma lista de fotos
func ToImageResponses(images []*entities.PropertyImage) []ImageResponse {
	responses := make([]ImageResponse, len(images))
	for i, image := range images {
		responses[i] = ToImageResponse(image)
	}
	return responses
}

// CartePointResponse é um imóvel geolocalizado para a carte
type CartePointResponse struct {
	ID        string   `json:"id"`
	Titre     string   `json:"titre"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Prix      int64    `json:"prix"`
	Image     *string  `json:"image,omitempty"`
}
