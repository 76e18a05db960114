package dto

import (
	"time"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
	"github.com/jfotso/immogest-backend/internal/services"
)

// SaleRequest representa o registro de uma venda.
// O vendedor nunca é aceito do cliente.
type SaleRequest struct {
	ProprieteID          string     `json:"propriete_id" binding:"required,uuid4"`
	ClientNom            string     `json:"client_nom" binding:"required,max=200"`
	ClientEmail          string     `json:"client_email" binding:"required,email"`
	ClientTelephone      string     `json:"client_telephone" binding:"required,max=20"`
	ClientIdentite       string     `json:"client_identite" binding:"max=50"`
	ClientAdresse        string     `json:"client_adresse"`
	PrixVente            int64      `json:"prix_vente" binding:"min=0"`
	FraisSupplementaires int64      `json:"frais_supplementaires" binding:"min=0"`
	Remise               int64      `json:"remise" binding:"min=0"`
	ModePaiement         string     `json:"mode_paiement" binding:"required,oneof=cash transfer mobile_money credit"`
	DateVente            *time.Time `json:"date_vente"`
	Notes                string     `json:"notes"`
}

// ToInput converte a requisição para o input do serviço
func (r *SaleRequest) ToInput() services.RecordSaleInput {
	input := services.RecordSaleInput{
		PropertyID:           r.ProprieteID,
		ClientNom:            r.ClientNom,
		ClientEmail:          r.ClientEmail,
		ClientTelephone:      r.ClientTelephone,
		ClientIdentite:       r.ClientIdentite,
		ClientAdresse:        r.ClientAdresse,
		PrixVente:            r.PrixVente,
		FraisSupplementaires: r.FraisSupplementaires,
		Remise:               r.Remise,
		ModePaiement:         entities.PaymentMode(r.ModePaiement),
		Notes:                r.Notes,
	}
	if r.DateVente != nil {
		input.DateVente = *r.DateVente
	}
	return input
}

// SaleResponse representa a resposta de uma venda
type SaleResponse struct {
	ID                   uint      `json:"id"`
	ProprieteID          string    `json:"propriete_id"`
	ClientNom            string    `json:"client_nom"`
	ClientEmail          string    `json:"client_email"`
	ClientTelephone      string    `json:"client_telephone"`
	ClientIdentite       string    `json:"client_identite,omitempty"`
	ClientAdresse        string    `json:"client_adresse,omitempty"`
	PrixVente            int64     `json:"prix_vente"`
	FraisSupplementaires int64     `json:"frais_supplementaires"`
	Remise               int64     `json:"remise"`
	Total                int64     `json:"total"`
	ModePaiement         string    `json:"mode_paiement"`
	DateVente            time.Time `json:"date_vente"`
	VendeurID            string    `json:"vendeur_id"`
	Notes                string    `json:"notes,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

// ToSaleResponse converte uma entidade Sale para SaleResponse
func ToSaleResponse(sale *entities.Sale) SaleResponse {
	return SaleResponse{
		ID:                   sale.ID,
		ProprieteID:          sale.PropertyID,
		ClientNom:            sale.ClientNom,
		ClientEmail:          sale.ClientEmail,
		ClientTelephone:      sale.ClientTelephone,
		ClientIdentite:       sale.ClientIdentite,
		ClientAdresse:        sale.ClientAdresse,
		PrixVente:            sale.PrixVente,
		FraisSupplementaires: sale.FraisSupplementaires,
		Remise:               sale.Remise,
		Total:                sale.Total(),
		ModePaiement:         string(sale.ModePaiement),
		DateVente:            sale.DateVente,
		VendeurID:            sale.VendeurID,
		Notes:                sale.Notes,
		CreatedAt:            sale.CreatedAt,
	}
}

// ToSaleResponses converte uma lista de vendas
func ToSaleResponses(sales []*entities.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i, sale := range sales {
		responses[i] = ToSaleResponse(sale)
	}
	return responses
}
