package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound        = errors.New("error.user_not_found")
	ErrUsernameTaken       = errors.New("error.username_taken")
	ErrEmailAlreadyExists  = errors.New("error.email_already_exists")
	ErrInvalidCredentials  = errors.New("error.invalid_credentials")
	ErrUnauthorized        = errors.New("error.unauthorized")
	ErrForbidden           = errors.New("error.forbidden")
	ErrPropertyNotFound    = errors.New("error.property_not_found")
	ErrImageNotFound       = errors.New("error.image_not_found")
	ErrSaleNotFound        = errors.New("error.sale_not_found")
	ErrStatusNotFound      = errors.New("error.status_not_found")
	ErrDistrictNotInCity   = errors.New("error.district_not_in_city")
	ErrPropertyAlreadySold = errors.New("error.property_already_sold")
)

// Domain errors
var (
	ErrInvalidEmail = errors.New("error.invalid_email")
	ErrInvalidInput = errors.New("error.invalid_input")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
