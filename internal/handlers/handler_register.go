package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	portssvc "github.com/SscSPs/clinic_cash_app/internal/core/ports/services"
	"github.com/SscSPs/clinic_cash_app/internal/core/settlement"
	"github.com/SscSPs/clinic_cash_app/internal/dto"
	"github.com/SscSPs/clinic_cash_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// registerHandler handles the day-level cash-register endpoints.
type registerHandler struct {
	entryService portssvc.EntrySvcFacade
}

// RegisterCashRegisterRoutes registers routes related to closing and summarizing a register day.
func RegisterCashRegisterRoutes(rg *gin.RouterGroup, entryService portssvc.EntrySvcFacade) {
	h := &registerHandler{entryService: entryService}

	register := rg.Group("/register")
	{
		register.POST("/close", h.closeRegister)
		register.GET("/:date/summary", h.summary)
	}
}

// closeRegister godoc
// @Summary Close the day's register
// @Description Saves every operation of a day in one transaction. Either all operations are saved or none.
// @Tags register
// @Accept  json
// @Produce  json
// @Param   register body dto.CloseRegisterRequest true "Day's operations"
// @Success 201 {object} dto.CloseRegisterResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to close register"
// @Security BearerAuth
// @Router /register/close [post]
func (h *registerHandler) closeRegister(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}

	var req dto.CloseRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CloseRegister", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entries, err := h.entryService.CloseRegister(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, logger.With(slog.String("date", req.Date)), err, "Failed to close register")
		return
	}

	c.JSON(http.StatusCreated, dto.CloseRegisterResponse{
		Date:    req.Date,
		Entries: dto.ToEntryResponses(entries),
		Summary: settlement.SummarizeRegister(req.Date, entries),
	})
}

// summary godoc
// @Summary Summarize a register day
// @Description Totals payments, shares and the clinic residual of every entry of a day
// @Tags register
// @Produce  json
// @Param   date path string true "Day (YYYY-MM-DD)"
// @Success 200 {object} domain.RegisterSummary
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to summarize register"
// @Security BearerAuth
// @Router /register/{date}/summary [get]
func (h *registerHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := ownerFromContext(c, logger)
	if !ok {
		return
	}
	date := c.Param("date")
	if !domain.IsValidDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date: " + date})
		return
	}

	summary, err := h.entryService.RegisterSummary(c.Request.Context(), ownerID, date)
	if err != nil {
		respondError(c, logger.With(slog.String("date", date)), err, "Failed to summarize register")
		return
	}
	c.JSON(http.StatusOK, summary)
}
