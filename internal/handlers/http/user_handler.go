package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jfotso/immogest-backend/internal/domain/errors"
	"github.com/jfotso/immogest-backend/internal/handlers/dto"
	"github.com/jfotso/immogest-backend/internal/handlers/middleware"
	"github.com/jfotso/immogest-backend/internal/services"
)

// Limite de upload de avatar
const maxAvatarSize = 5 << 20 // 5 MiB

// UserHandler lida com o diretório de usuários e as preferências
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers lista todos os usuários (diretório do gestor)
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// GetSettings retorna as preferências do usuário autenticado,
// criando as padrão quando ainda não existem
func (h *UserHandler) GetSettings(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response := dto.UnauthorizedErrorResponseI18n(c)
		c.JSON(http.StatusUnauthorized, response)
		return
	}

	settings, err := h.userService.GetSettings(c.Request.Context(), user.ID)
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// UpdateSettings aplica uma atualização parcial de preferências
func (h *UserHandler) UpdateSettings(c *gin.Context) {
	var req dto.SettingsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.FieldErrors(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		response := dto.UnauthorizedErrorResponseI18n(c)
		c.JSON(http.StatusUnauthorized, response)
		return
	}

	settings, err := h.userService.UpdateSettings(c.Request.Context(), user.ID, req.ToInput())
	if err != nil {
		if errs.Is(err, errors.ErrInvalidInput) {
			response := dto.ValidationErrorResponseI18n(c, nil)
			c.JSON(http.StatusBadRequest, response)
			return
		}
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// UpdateAvatar grava o avatar do usuário autenticado no blob storage
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response := dto.UnauthorizedErrorResponseI18n(c)
		c.JSON(http.StatusUnauthorized, response)
		return
	}

	header, err := c.FormFile("avatar")
	if err != nil || header.Size > maxAvatarSize {
		response := dto.ValidationErrorResponseI18n(c, nil)
		c.JSON(http.StatusBadRequest, response)
		return
	}

	file, err := header.Open()
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}
	defer file.Close()

	updated, err := h.userService.UpdateAvatar(c.Request.Context(), user.ID, header.Filename, file, header.Size)
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(updated))
}
