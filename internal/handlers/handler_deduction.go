package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/clinic_cash_app/internal/core/ports/services"
	"github.com/SscSPs/clinic_cash_app/internal/dto"
	"github.com/SscSPs/clinic_cash_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// deductionHandler handles HTTP requests related to the deduction ledger.
type deductionHandler struct {
	deductionService portssvc.DeductionSvcFacade
}

// RegisterDeductionRoutes registers routes related to deductions.
func RegisterDeductionRoutes(rg *gin.RouterGroup, deductionService portssvc.DeductionSvcFacade) {
	h := &deductionHandler{deductionService: deductionService}

	deductions := rg.Group("/deductions")
	{
		deductions.POST("", h.addDeduction)
		deductions.GET("", h.listDeductions)
		deductions.DELETE("/:deductionID", h.removeDeduction)
	}
}

// addDeduction godoc
// @Summary Record a deduction
// @Description Adds a manual adjustment subtracted from a professional's statement. Negative amounts are stored as their magnitude.
// @Tags deductions
// @Accept  json
// @Produce  json
// @Param   deduction body dto.CreateDeductionRequest true "Deduction"
// @Success 201 {object} dto.DeductionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to save deduction"
// @Security BearerAuth
// @Router /deductions [post]
func (h *deductionHandler) addDeduction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	var req dto.CreateDeductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddDeduction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	deduction, err := h.deductionService.AddDeduction(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to save deduction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDeductionResponse(deduction))
}

// listDeductions godoc
// @Summary List deductions
// @Tags deductions
// @Produce  json
// @Param   professional query string false "Professional name; all professionals when empty"
// @Param   from query string true "First date (YYYY-MM-DD)"
// @Param   to query string true "Last date (YYYY-MM-DD)"
// @Success 200 {array} dto.DeductionResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list deductions"
// @Security BearerAuth
// @Router /deductions [get]
func (h *deductionHandler) listDeductions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	var params dto.ListDeductionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListDeductions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	deductions, err := h.deductionService.ListDeductions(c.Request.Context(), ownerID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list deductions")
		return
	}
	c.JSON(http.StatusOK, dto.ToDeductionResponses(deductions))
}

// removeDeduction godoc
// @Summary Delete a deduction
// @Tags deductions
// @Param   deductionID path string true "Deduction ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deduction not found"
// @Failure 500 {object} map[string]string "Failed to delete deduction"
// @Security BearerAuth
// @Router /deductions/{deductionID} [delete]
func (h *deductionHandler) removeDeduction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}
	deductionID := c.Param("deductionID")

	if err := h.deductionService.RemoveDeduction(c.Request.Context(), ownerID, deductionID); err != nil {
		respondError(c, logger.With(slog.String("deduction_id", deductionID)), err, "Failed to delete deduction")
		return
	}
	c.Status(http.StatusNoContent)
}
