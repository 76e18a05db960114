package entities

import (
	"errors"
	"time"
)

// Property representa um imóvel do catálogo
type Property struct {
	ID          string
	Titre       string
	Description string
	Prix        int64 // francos CFA, sem subunidade
	Superficie  float64
	Chambres    int
	SallesBain  int

	// Localização
	Adresse    string
	CityID     uint
	DistrictID uint
	Latitude   *float64
	Longitude  *float64

	// Relações
	TypeID   uint
	StatusID uint
	AgentID  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PropertyImage é uma foto do imóvel; no máximo uma por imóvel tem IsMain
type PropertyImage struct {
	ID         uint
	PropertyID string
	ObjectKey  string // chave do blob no storage
	URL        string
	Legende    string
	IsMain     bool
	UploadedAt time.Time
}

// HasLocation verifica se o imóvel tem coordenadas completas
func (p *Property) HasLocation() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// Validate valida regras de negócio da entidade Property
func (p *Property) Validate() error {
	if p.Titre == "" {
		return errors.New("titre is required")
	}

	if p.Description == "" {
		return errors.New("description is required")
	}

	if p.Prix < 0 {
		return errors.New("prix must not be negative")
	}

	if p.Superficie <= 0 {
		return errors.New("superficie must be positive")
	}

	if p.CityID == 0 || p.DistrictID == 0 {
		return errors.New("ville and quartier are required")
	}

	if p.TypeID == 0 || p.StatusID == 0 {
		return errors.New("type and status are required")
	}

	return nil
}
