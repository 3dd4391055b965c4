package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/clinic_cash_app/internal/core/ports/services"
	"github.com/SscSPs/clinic_cash_app/internal/dto"
	"github.com/SscSPs/clinic_cash_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// liquidationHandler serves professional statements. Nothing here is persisted;
// every request recomputes from entries and deductions.
type liquidationHandler struct {
	liquidationService portssvc.LiquidationSvc
}

// RegisterLiquidationRoutes registers routes related to professional statements.
func RegisterLiquidationRoutes(rg *gin.RouterGroup, liquidationService portssvc.LiquidationSvc) {
	h := &liquidationHandler{liquidationService: liquidationService}

	liquidations := rg.Group("/liquidations")
	{
		liquidations.GET("", h.listStatements)
		liquidations.GET("/:professional", h.getStatement)
	}
}

// getStatement godoc
// @Summary Build a professional's statement
// @Description Lists the professional's lines in the range, net of transfers and deductions
// @Tags liquidations
// @Produce  json
// @Param   professional path string true "Professional name"
// @Param   from query string true "First date (YYYY-MM-DD)"
// @Param   to query string true "Last date (YYYY-MM-DD)"
// @Success 200 {object} domain.Statement
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build statement"
// @Security BearerAuth
// @Router /liquidations/{professional} [get]
func (h *liquidationHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}
	professional := c.Param("professional")

	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for BuildStatement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	statement, err := h.liquidationService.BuildStatement(c.Request.Context(), ownerID, professional, params.From, params.To)
	if err != nil {
		respondError(c, logger.With(slog.String("professional", professional)), err, "Failed to build statement")
		return
	}
	c.JSON(http.StatusOK, statement)
}

// listStatements godoc
// @Summary Build every professional's statement
// @Tags liquidations
// @Produce  json
// @Param   from query string true "First date (YYYY-MM-DD)"
// @Param   to query string true "Last date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListStatementsResponse
// @Failure 400 {object} map[string]string "Invalid date range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build statements"
// @Security BearerAuth
// @Router /liquidations [get]
func (h *liquidationHandler) listStatements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for BuildAllStatements", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	statements, err := h.liquidationService.BuildAllStatements(c.Request.Context(), ownerID, params.From, params.To)
	if err != nil {
		respondError(c, logger, err, "Failed to build statements")
		return
	}
	c.JSON(http.StatusOK, dto.ListStatementsResponse{
		DateFrom:   params.From,
		DateTo:     params.To,
		Statements: statements,
	})
}
