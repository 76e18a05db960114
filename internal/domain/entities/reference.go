package entities

import "time"

// City é uma cidade de referência (dados estáticos)
type City struct {
	ID        uint
	Nom       string
	CreatedAt time.Time
}

// District é um quartier, sempre ligado a exatamente uma cidade
type District struct {
	ID        uint
	Nom       string
	CityID    uint
	CreatedAt time.Time
}

// PropertyType é o tipo do imóvel (villa, appartement, terrain, ...)
type PropertyType struct {
	ID          uint
	Nom         string
	Description string
}

// Códigos estáveis do conjunto fechado de status.
// A filtragem do catálogo e a transição de venda usam sempre o código,
// nunca o nome de exibição.
const (
	StatusAvailable = "available"
	StatusReserved  = "reserved"
	StatusSold      = "sold"
	StatusSuspended = "suspended"
)

// PropertyStatus é um estágio do ciclo de vida do imóvel.
// IsTerminal marca os status que retiram o imóvel do catálogo disponível.
type PropertyStatus struct {
	ID         uint
	Code       string
	Nom        string
	Couleur    string // cor hex para exibição
	IsTerminal bool
}
