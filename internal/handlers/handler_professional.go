package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/clinic_cash_app/internal/core/ports/services"
	"github.com/SscSPs/clinic_cash_app/internal/dto"
	"github.com/SscSPs/clinic_cash_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type professionalHandler struct {
	professionalService portssvc.ProfessionalSvcFacade
}

// RegisterProfessionalRoutes registers routes related to professionals.
func RegisterProfessionalRoutes(rg *gin.RouterGroup, professionalService portssvc.ProfessionalSvcFacade) {
	h := &professionalHandler{professionalService: professionalService}

	professionals := rg.Group("/professionals")
	{
		professionals.POST("", h.createProfessional)
		professionals.GET("", h.listProfessionals)
		professionals.GET("/:name", h.getProfessional)
	}
}

// createProfessional godoc
// @Summary Register a professional
// @Tags professionals
// @Accept  json
// @Produce  json
// @Param   professional body dto.CreateProfessionalRequest true "Professional"
// @Success 201 {object} dto.ProfessionalResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Name already registered"
// @Failure 500 {object} map[string]string "Failed to register professional"
// @Security BearerAuth
// @Router /professionals [post]
func (h *professionalHandler) createProfessional(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	var req dto.CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProfessional", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	professional, err := h.professionalService.CreateProfessional(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to register professional")
		return
	}
	c.JSON(http.StatusCreated, dto.ToProfessionalResponse(professional))
}

// listProfessionals godoc
// @Summary List professionals
// @Tags professionals
// @Produce  json
// @Success 200 {array} dto.ProfessionalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list professionals"
// @Security BearerAuth
// @Router /professionals [get]
func (h *professionalHandler) listProfessionals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	professionals, err := h.professionalService.ListProfessionals(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to list professionals")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfessionalResponses(professionals))
}

// getProfessional godoc
// @Summary Get a professional by name
// @Tags professionals
// @Produce  json
// @Param   name path string true "Professional name"
// @Success 200 {object} dto.ProfessionalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Professional not found"
// @Failure 500 {object} map[string]string "Failed to retrieve professional"
// @Security BearerAuth
// @Router /professionals/{name} [get]
func (h *professionalHandler) getProfessional(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}
	name := c.Param("name")

	professional, err := h.professionalService.GetProfessional(c.Request.Context(), ownerID, name)
	if err != nil {
		respondError(c, logger.With(slog.String("professional", name)), err, "Failed to retrieve professional")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfessionalResponse(professional))
}
