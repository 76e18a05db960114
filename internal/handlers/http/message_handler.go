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

// MessageHandler lida com o mural de mensagens interno
type MessageHandler struct {
	messageService *services.MessageService
}

// NewMessageHandler cria um novo MessageHandler
func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

// List lista as mensagens, da mais recente para a mais antiga
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.messageService.List(c.Request.Context())
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageResponses(messages))
}

// Post publica uma mensagem. O remetente é sempre o usuário autenticado.
func (h *MessageHandler) Post(c *gin.Context) {
	var req dto.MessageRequest

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

	msg, err := h.messageService.Post(c.Request.Context(), user.Email.String(), req.ToInput())
	if err != nil {
		if errs.Is(err, errors.ErrInvalidEmail) || errs.Is(err, errors.ErrInvalidInput) {
			response := dto.ValidationErrorResponseI18n(c, nil)
			c.JSON(http.StatusBadRequest, response)
			return
		}
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMessageResponse(msg))
}
