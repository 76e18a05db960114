package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jfotso/immogest-backend/internal/domain/repositories"
	"github.com/jfotso/immogest-backend/internal/handlers/dto"
)

// ReferenceHandler expõe os dados de referência dos formulários:
// cidades, quartiers, tipos e o conjunto fechado de status.
type ReferenceHandler struct {
	refRepo repositories.ReferenceRepository
}

// NewReferenceHandler cria um novo ReferenceHandler
func NewReferenceHandler(refRepo repositories.ReferenceRepository) *ReferenceHandler {
	return &ReferenceHandler{
		refRepo: refRepo,
	}
}

// ListCities lista as cidades
func (h *ReferenceHandler) ListCities(c *gin.Context) {
	cities, err := h.refRepo.ListCities(c.Request.Context())
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToCityResponses(cities))
}

// ListDistricts lista os quartiers de uma cidade
func (h *ReferenceHandler) ListDistricts(c *gin.Context) {
	cityID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response := dto.ValidationErrorResponseI18n(c, nil)
		c.JSON(http.StatusBadRequest, response)
		return
	}

	districts, err := h.refRepo.ListDistricts(c.Request.Context(), uint(cityID))
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToDistrictResponses(districts))
}

// ListTypes lista os tipos de imóvel
func (h *ReferenceHandler) ListTypes(c *gin.Context) {
	types, err := h.refRepo.ListTypes(c.Request.Context())
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToTypeResponses(types))
}

// ListStatuses lista o conjunto fechado de status
func (h *ReferenceHandler) ListStatuses(c *gin.Context) {
	statuses, err := h.refRepo.ListStatuses(c.Request.Context())
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatusResponses(statuses))
}
