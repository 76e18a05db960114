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

// SaleHandler lida com o registro e a listagem de vendas
type SaleHandler struct {
	saleService *services.SaleService
}

// NewSaleHandler cria um novo SaleHandler
func NewSaleHandler(saleService *services.SaleService) *SaleHandler {
	return &SaleHandler{
		saleService: saleService,
	}
}

// List lista as vendas, da mais recente para a mais antiga
func (h *SaleHandler) List(c *gin.Context) {
	sales, err := h.saleService.List(c.Request.Context(), 0)
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponses(sales))
}

// Create registra a venda e marca o imóvel como vendido.
// Imóvel já vendido (ou suspenso) responde 409.
func (h *SaleHandler) Create(c *gin.Context) {
	var req dto.SaleRequest

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

	sale, err := h.saleService.Record(c.Request.Context(), req.ToInput(), user.ID)
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrPropertyNotFound):
			response := dto.NotFoundErrorResponseI18n(c, "Propriété")
			c.JSON(http.StatusNotFound, response)
		case errs.Is(err, errors.ErrPropertyAlreadySold):
			response := dto.ConflictErrorResponseI18n(c, "error.property_already_sold")
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

	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}
