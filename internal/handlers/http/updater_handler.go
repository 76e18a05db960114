package http

import (
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jfotso/immogest-backend/internal/domain/errors"
	"github.com/jfotso/immogest-backend/internal/handlers/dto"
	"github.com/jfotso/immogest-backend/internal/handlers/middleware"
	"github.com/jfotso/immogest-backend/internal/services"
)

// Limite de upload de foto de imóvel
const maxPhotoSize = 10 << 20 // 10 MiB

// UpdaterHandler expõe o portal do photo updater: dashboard pessoal,
// carte dos imóveis geolocalizados e o fluxo AJAX de fotos.
type UpdaterHandler struct {
	propertyService *services.PropertyService
	statsService    *services.StatsService
}

// NewUpdaterHandler cria um novo UpdaterHandler
func NewUpdaterHandler(propertyService *services.PropertyService, statsService *services.StatsService) *UpdaterHandler {
	return &UpdaterHandler{
		propertyService: propertyService,
		statsService:    statsService,
	}
}

// Dashboard retorna os números pessoais do agente autenticado
func (h *UpdaterHandler) Dashboard(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response := dto.UnauthorizedErrorResponseI18n(c)
		c.JSON(http.StatusUnauthorized, response)
		return
	}

	summary, err := h.statsService.AgentSummary(c.Request.Context(), user.ID)
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.ToAgentSummaryResponse(summary))
}

// Carte retorna os imóveis com coordenadas completas, com a foto
// principal de cada um quando existe
func (h *UpdaterHandler) Carte(c *gin.Context) {
	properties, err := h.propertyService.Located(c.Request.Context())
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	points := make([]dto.CartePointResponse, 0, len(properties))
	for _, property := range properties {
		point := dto.CartePointResponse{
			ID:        property.ID,
			Titre:     property.Titre,
			Latitude:  *property.Latitude,
			Longitude: *property.Longitude,
			Prix:      property.Prix,
		}

		main, err := h.propertyService.MainImage(c.Request.Context(), property.ID)
		if err == nil && main != nil {
			point.Image = &main.URL
		}

		points = append(points, point)
	}

	c.JSON(http.StatusOK, points)
}

// UploadPhoto anexa uma foto via multipart (fluxo AJAX do portal).
// Campos: propriete_id, photo, legende, is_main. Resposta: {success, ...}.
func (h *UpdaterHandler) UploadPhoto(c *gin.Context) {
	propertyID := c.PostForm("propriete_id")
	if propertyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": dto.T(c, "error.validation.detail")})
		return
	}

	header, err := c.FormFile("photo")
	if err != nil || header.Size > maxPhotoSize {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": dto.T(c, "error.validation.detail")})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": dto.T(c, "error.internal.detail")})
		return
	}
	defer file.Close()

	legende := c.PostForm("legende")
	isMain := c.PostForm("is_main") == "true"

	image, err := h.propertyService.AttachImage(c.Request.Context(), propertyID, header.Filename, file, header.Size, legende, isMain)
	if err != nil {
		if errs.Is(err, errors.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": dto.T(c, "error.not_found.detail")})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": dto.T(c, "error.internal.detail")})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "image": dto.ToImageResponse(image)})
}

// DeletePhoto remove uma foto (fluxo AJAX do portal).
// Não há promoção automática de nova foto principal.
func (h *UpdaterHandler) DeletePhoto(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": dto.T(c, "error.validation.detail")})
		return
	}

	if err := h.propertyService.DeleteImage(c.Request.Context(), uint(id)); err != nil {
		if errs.Is(err, errors.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": dto.T(c, "error.not_found.detail")})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": dto.T(c, "error.internal.detail")})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
