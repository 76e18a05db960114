package http

import (
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jfotso/immogest-backend/internal/domain/errors"
	"github.com/jfotso/immogest-backend/internal/domain/repositories"
	"github.com/jfotso/immogest-backend/internal/handlers/dto"
	"github.com/jfotso/immogest-backend/internal/handlers/middleware"
	"github.com/jfotso/immogest-backend/internal/services"
)

// PropertyHandler lida com o catálogo de imóveis
type PropertyHandler struct {
	propertyService *services.PropertyService
}

// NewPropertyHandler cria um novo PropertyHandler
func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

// List lista imóveis, do mais recente para o mais antigo.
// Filtros por query: ?status=available&ville_id=1&agent_id=...&disponibles=true
func (h *PropertyHandler) List(c *gin.Context) {
	var filters repositories.PropertyFilters

	if status := c.Query("status"); status != "" {
		filters.StatusCode = &status
	}
	if villeID := c.Query("ville_id"); villeID != "" {
		id, err := strconv.ParseUint(villeID, 10, 32)
		if err != nil {
			response := dto.ValidationErrorResponseI18n(c, nil)
			c.JSON(http.StatusBadRequest, response)
			return
		}
		cityID := uint(id)
		filters.CityID = &cityID
	}
	if agentID := c.Query("agent_id"); agentID != "" {
		filters.AgentID = &agentID
	}
	filters.AvailableOnly = c.Query("disponibles") == "true"

	properties, err := h.propertyService.List(c.Request.Context(), filters)
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyResponses(properties))
}

// Get busca um imóvel por ID
func (h *PropertyHandler) Get(c *gin.Context) {
	property, err := h.propertyService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errs.Is(err, errors.ErrPropertyNotFound) {
			response := dto.NotFoundErrorResponseI18n(c, "Propriété")
			c.JSON(http.StatusNotFound, response)
			return
		}
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyResponse(property))
}

// Create cria um imóvel. O agente é sempre o usuário autenticado.
func (h *PropertyHandler) Create(c *gin.Context) {
	var req dto.PropertyRequest

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

	property, err := h.propertyService.Create(c.Request.Context(), req.ToInput(), user.ID)
	if err != nil {
		h.writeMutationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPropertyResponse(property))
}

// Update substitui os campos editáveis do imóvel
func (h *PropertyHandler) Update(c *gin.Context) {
	var req dto.PropertyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.FieldErrors(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	property, err := h.propertyService.Update(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		h.writeMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyResponse(property))
}

// Delete remove o imóvel com as fotos e vendas dele
func (h *PropertyHandler) Delete(c *gin.Context) {
	if err := h.propertyService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errs.Is(err, errors.ErrPropertyNotFound) {
			response := dto.NotFoundErrorResponseI18n(c, "Propriété")
			c.JSON(http.StatusNotFound, response)
			return
		}
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListImages lista as fotos de um imóvel
func (h *PropertyHandler) ListImages(c *gin.Context) {
	images, err := h.propertyService.ListImages(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errs.Is(err, errors.ErrPropertyNotFound) {
			response := dto.NotFoundErrorResponseI18n(c, "Propriété")
			c.JSON(http.StatusNotFound, response)
			return
		}
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToImageResponses(images))
}

func (h *PropertyHandler) writeMutationError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errors.ErrPropertyNotFound):
		response := dto.NotFoundErrorResponseI18n(c, "Propriété")
		c.JSON(http.StatusNotFound, response)
	case errs.Is(err, errors.ErrDistrictNotInCity):
		response := dto.NewErrorResponseI18n(
			c,
			errors.ProblemTypeValidation,
			"error.validation.title",
			"error.district_not_in_city",
			http.StatusBadRequest,
		)
		c.JSON(http.StatusBadRequest, response)
	case errs.Is(err, errors.ErrStatusNotFound), errs.Is(err, errors.ErrInvalidInput):
		response := dto.ValidationErrorResponseI18n(c, nil)
		c.JSON(http.StatusBadRequest, response)
	default:
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
	}
}
