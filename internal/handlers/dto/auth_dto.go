package dto

import (
	"github.com/jfotso/immogest-backend/internal/domain/entities"
)

// LoginRequest representa a requisição de login da API
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest representa a requisição de criação de conta.
// O role é restrito ao enum declarado; nada mais é aceito.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=150"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"max=150"`
	LastName  string `json:"last_name" binding:"max=150"`
	Phone     string `json:"phone" binding:"max=20"`
	Role      string `json:"role" binding:"required,oneof=admin manager photo_updater"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
}

// AuthResponse é a resposta dos endpoints de autenticação
type AuthResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ToAuthResponse monta a resposta de autenticação
func ToAuthResponse(user *entities.User, token string) AuthResponse {
	return AuthResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	}
}
