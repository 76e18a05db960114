package entities

import (
	"errors"
	"time"
)

// PaymentMode é o modo de pagamento de uma venda
type PaymentMode string

const (
	PaymentCash        PaymentMode = "cash"
	PaymentTransfer    PaymentMode = "transfer"
	PaymentMobileMoney PaymentMode = "mobile_money"
	PaymentCredit      PaymentMode = "credit"
)

// Valid verifica se o modo de pagamento é um dos declarados
func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentCash, PaymentTransfer, PaymentMobileMoney, PaymentCredit:
		return true
	}
	return false
}

// Sale registra a venda de um imóvel. Imutável depois de criada.
type Sale struct {
	ID         uint
	PropertyID string

	ClientNom       string
	ClientEmail     string
	ClientTelephone string
	ClientIdentite  string
	ClientAdresse   string

	PrixVente            int64 // francos CFA
	FraisSupplementaires int64
	Remise               int64
	ModePaiement         PaymentMode

	DateVente time.Time
	VendeurID string
	Notes     string

	CreatedAt time.Time
}

// Total é o valor final da venda: preço + frais - remise
func (s *Sale) Total() int64 {
	return s.PrixVente + s.FraisSupplementaires - s.Remise
}

// Validate valida regras de negócio da entidade Sale
func (s *Sale) Validate() error {
	if s.PropertyID == "" {
		return errors.New("propriete is required")
	}

	if s.ClientNom == "" {
		return errors.New("client_nom is required")
	}

	if s.ClientEmail == "" {
		return errors.New("client_email is required")
	}

	if s.ClientTelephone == "" {
		return errors.New("client_telephone is required")
	}

	if s.PrixVente < 0 || s.FraisSupplementaires < 0 || s.Remise < 0 {
		return errors.New("montants must not be negative")
	}

	if !s.ModePaiement.Valid() {
		return errors.New("invalid mode_paiement")
	}

	return nil
}
