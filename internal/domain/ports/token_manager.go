package ports

import "time"

// TokenClaims é a identidade extraída de um token válido
type TokenClaims struct {
	UserID   string
	Username string
	Role     string
}

// TokenManager emite e verifica os bearer tokens opacos da API
type TokenManager interface {
	Issue(claims TokenClaims, ttl time.Duration) (string, error)
	Verify(token string) (*TokenClaims, error)
}
