package dto

import (
	"github.com/jfotso/immogest-backend/internal/domain/entities"
)

// CityResponse representa uma cidade de referência
type CityResponse struct {
	ID  uint   `json:"id"`
	Nom string `json:"nom"`
}

// ToCityResponses converte a lista de cidades
func ToCityResponses(cities []*entities.City) []CityResponse {
	responses := make([]CityResponse, len(cities))
	for i, city := range cities {
		responses[i] = CityResponse{ID: city.ID, Nom: city.Nom}
	}
	return responses
}

// DistrictResponse representa um quartier
type DistrictResponse struct {
	ID      uint   `json:"id"`
	Nom     string `json:"nom"`
	VilleID uint   `json:"ville_id"`
}

// ToDistrictResponses converte a lista de quartiers
func ToDistrictResponses(districts []*entities.District) []DistrictResponse {
	responses := make([]DistrictResponse, len(districts))
	for i, district := range districts {
		responses[i] = DistrictResponse{
			ID:      district.ID,
			Nom:     district.Nom,
			VilleID: district.CityID,
		}
	}
	return responses
}

// TypeResponse representa um tipo de imóvel
type TypeResponse struct {
	ID          uint   `json:"id"`
	Nom         string `json:"nom"`
	Description string `json:"description,omitempty"`
}

// ToTypeResponses converte a lista de tipos
func ToTypeResponses(types []*entities.PropertyType) []TypeResponse {
	responses := make([]TypeResponse, len(types))
	for i, t := range types {
		responses[i] = TypeResponse{ID: t.ID, Nom: t.Nom, Description: t.Description}
	}
	return responses
}

// StatusResponse representa um status do conjunto fechado
type StatusResponse struct {
	ID         uint   `json:"id"`
	Code       string `json:"code"`
	Nom        string `json:"nom"`
	Couleur    string `json:"couleur"`
	IsTerminal bool   `json:"is_terminal"`
}

// ToStatusResponses converte a lista de status
func ToStatusResponses(statuses []*entities.PropertyStatus) []StatusResponse {
	responses := make([]StatusResponse, len(statuses))
	for i, s := range statuses {
		responses[i] = StatusResponse{
			ID:         s.ID,
			Code:       s.Code,
			Nom:        s.Nom,
			Couleur:    s.Couleur,
			IsTerminal: s.IsTerminal,
		}
	}
	return responses
}
