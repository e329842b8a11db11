package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
	"github.com/bizbooks/bizbooks_backend/internal/middleware"
)

// ledgerHandler handles HTTP requests related to ledgers.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// registerLedgerRoutes registers routes related to ledgers.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledgers := rg.Group("/ledgers")
	{
		ledgers.POST("", h.createLedger)
		ledgers.GET("", h.listLedgers)
		ledgers.GET("/:ledgerID", h.getLedgerByID)
		ledgers.DELETE("/:ledgerID", h.deleteLedger)
		ledgers.GET("/:ledgerID/balance", h.getLedgerBalance)
	}
}

// createLedger godoc
// @Summary Create a new ledger
// @Description Adds a new ledger account to the registry
// @Tags ledgers
// @Accept  json
// @Produce  json
// @Param   ledger body dto.CreateLedgerRequest true "Ledger details"
// @Success 201 {object} dto.LedgerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create ledger"
// @Router /ledgers [post]
func (h *ledgerHandler) createLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateLedger", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create ledger", slog.String("ledger_name", req.Name))

	createdLedger, err := h.ledgerService.CreateLedger(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating ledger", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create ledger in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ledger"})
		}
		return
	}

	logger.Info("Ledger created successfully", slog.String("ledger_id", createdLedger.LedgerID))
	c.JSON(http.StatusCreated, dto.ToLedgerResponse(createdLedger))
}

// getLedgerByID godoc
// @Summary Get a ledger by ID
// @Description Retrieves details for a specific ledger account
// @Tags ledgers
// @Produce  json
// @Param   ledgerID path string true "Ledger ID"
// @Success 200 {object} dto.LedgerResponse
// @Failure 404 {object} map[string]string "Ledger not found"
// @Failure 500 {object} map[string]string "Failed to retrieve ledger"
// @Router /ledgers/{ledgerID} [get]
func (h *ledgerHandler) getLedgerByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledgerID := c.Param("ledgerID")

	logger = logger.With(slog.String("ledger_id", ledgerID))
	logger.Info("Received request to get ledger by ID")

	ledger, err := h.ledgerService.GetLedgerByID(c.Request.Context(), ledgerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Ledger not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Ledger not found"})
		} else {
			logger.Error("Failed to get ledger from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ledger"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerResponse(ledger))
}

// listLedgers godoc
// @Summary List all ledgers
// @Description Retrieves every ledger account in registry insertion order
// @Tags ledgers
// @Produce  json
// @Success 200 {array} dto.LedgerResponse
// @Failure 500 {object} map[string]string "Failed to list ledgers"
// @Router /ledgers [get]
func (h *ledgerHandler) listLedgers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list ledgers")

	ledgers, err := h.ledgerService.ListLedgers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list ledgers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list ledgers"})
		return
	}

	logger.Info("Ledgers listed successfully", slog.Int("count", len(ledgers)))
	c.JSON(http.StatusOK, dto.ToListLedgersResponse(ledgers))
}

// deleteLedger godoc
// @Summary Delete a ledger
// @Description Removes a ledger account; vouchers referencing it are kept
// @Tags ledgers
// @Produce  json
// @Param   ledgerID path string true "Ledger ID"
// @Success 204 "Ledger deleted"
// @Failure 500 {object} map[string]string "Failed to delete ledger"
// @Router /ledgers/{ledgerID} [delete]
func (h *ledgerHandler) deleteLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledgerID := c.Param("ledgerID")

	logger = logger.With(slog.String("ledger_id", ledgerID))
	logger.Info("Received request to delete ledger")

	// Deleting an absent ledger is a no-op and still succeeds.
	if err := h.ledgerService.DeleteLedger(c.Request.Context(), ledgerID); err != nil {
		logger.Error("Failed to delete ledger in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete ledger"})
		return
	}

	c.Status(http.StatusNoContent)
}

// getLedgerBalance godoc
// @Summary Get a ledger's derived balance
// @Description Derives the net balance for one ledger from its opening balance and the voucher journal
// @Tags ledgers
// @Produce  json
// @Param   ledgerID path string true "Ledger ID"
// @Success 200 {object} dto.LedgerBalanceResponse
// @Failure 404 {object} map[string]string "Ledger not found"
// @Failure 500 {object} map[string]string "Failed to derive balance"
// @Router /ledgers/{ledgerID}/balance [get]
func (h *ledgerHandler) getLedgerBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledgerID := c.Param("ledgerID")

	logger = logger.With(slog.String("ledger_id", ledgerID))
	logger.Info("Received request to get ledger balance")

	balance, err := h.ledgerService.GetLedgerBalance(c.Request.Context(), ledgerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Ledger not found for balance derivation")
			c.JSON(http.StatusNotFound, gin.H{"error": "Ledger not found"})
		} else {
			logger.Error("Failed to derive ledger balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerBalanceResponse(balance))
}
