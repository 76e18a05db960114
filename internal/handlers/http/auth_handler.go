package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
	"github.com/jfotso/immogest-backend/internal/domain/errors"
	"github.com/jfotso/immogest-backend/internal/handlers/dto"
	"github.com/jfotso/immogest-backend/internal/services"
)

// AuthHandler lida com login e criação de contas
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login autentica por username/senha e retorna um bearer token.
// Usuário desconhecido e senha errada produzem a mesma resposta 401.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.FieldErrors(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errs.Is(err, errors.ErrInvalidCredentials) {
			response := dto.UnauthorizedErrorResponseI18n(c)
			c.JSON(http.StatusUnauthorized, response)
			return
		}
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse(user, token))
}

// Register cria a conta e já retorna um token
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.FieldErrors(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      entities.Role(req.Role),
		Password:  req.Password,
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrUsernameTaken):
			response := dto.ConflictErrorResponseI18n(c, "error.username_taken")
			c.JSON(http.StatusConflict, response)
		case errs.Is(err, errors.ErrEmailAlreadyExists):
			response := dto.ConflictErrorResponseI18n(c, "error.email_already_exists")
			c.JSON(http.StatusConflict, response)
		case errs.Is(err, errors.ErrInvalidEmail), errs.Is(err, errors.ErrInvalidInput):
			response := dto.ValidationErrorResponseI18n(c, nil)
			c.JSON(http.StatusBadRequest, response)
		default:
			response := dto.InternalErrorResponseI18n(c)
			c.JSON(http.StatusInternalServerError, response)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAuthResponse(user, token))
}
