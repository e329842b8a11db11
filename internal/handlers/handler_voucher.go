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

// voucherHandler handles HTTP requests related to vouchers.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

// newVoucherHandler creates a new voucherHandler.
func newVoucherHandler(vs portssvc.VoucherSvcFacade) *voucherHandler {
	return &voucherHandler{
		voucherService: vs,
	}
}

// registerVoucherRoutes registers routes related to vouchers. There is no
// update route; vouchers are immutable once recorded.
func registerVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade) {
	h := newVoucherHandler(voucherService)

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", h.createVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.GET("/:voucherID", h.getVoucherByID)
		vouchers.DELETE("/:voucherID", h.deleteVoucher)
	}
}

// createVoucher godoc
// @Summary Record a new voucher
// @Description Appends a transaction voucher to the journal
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   voucher body dto.CreateVoucherRequest true "Voucher details"
// @Success 201 {object} dto.VoucherResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to record voucher"
// @Router /vouchers [post]
func (h *voucherHandler) createVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to record voucher",
		slog.String("type", string(req.Type)),
		slog.String("ledger_id", req.LedgerID))

	createdVoucher, err := h.voucherService.CreateVoucher(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording voucher", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record voucher in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record voucher"})
		}
		return
	}

	logger.Info("Voucher recorded successfully", slog.String("voucher_id", createdVoucher.VoucherID))
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(createdVoucher))
}

// getVoucherByID godoc
// @Summary Get a voucher by ID
// @Description Retrieves one voucher from the journal
// @Tags vouchers
// @Produce  json
// @Param   voucherID path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse
// @Failure 404 {object} map[string]string "Voucher not found"
// @Failure 500 {object} map[string]string "Failed to retrieve voucher"
// @Router /vouchers/{voucherID} [get]
func (h *voucherHandler) getVoucherByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")

	logger = logger.With(slog.String("voucher_id", voucherID))
	logger.Info("Received request to get voucher by ID")

	voucher, err := h.voucherService.GetVoucherByID(c.Request.Context(), voucherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Voucher not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
		} else {
			logger.Error("Failed to get voucher from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve voucher"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// listVouchers godoc
// @Summary List all vouchers
// @Description Retrieves the whole journal in insertion order
// @Tags vouchers
// @Produce  json
// @Success 200 {array} dto.VoucherResponse
// @Failure 500 {object} map[string]string "Failed to list vouchers"
// @Router /vouchers [get]
func (h *voucherHandler) listVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list vouchers")

	vouchers, err := h.voucherService.ListVouchers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list vouchers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vouchers"})
		return
	}

	logger.Info("Vouchers listed successfully", slog.Int("count", len(vouchers)))
	c.JSON(http.StatusOK, dto.ToListVouchersResponse(vouchers))
}

// deleteVoucher godoc
// @Summary Delete a voucher
// @Description Removes a voucher from the journal; derived balances change accordingly
// @Tags vouchers
// @Produce  json
// @Param   voucherID path string true "Voucher ID"
// @Success 204 "Voucher deleted"
// @Failure 500 {object} map[string]string "Failed to delete voucher"
// @Router /vouchers/{voucherID} [delete]
func (h *voucherHandler) deleteVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")

	logger = logger.With(slog.String("voucher_id", voucherID))
	logger.Info("Received request to delete voucher")

	if err := h.voucherService.DeleteVoucher(c.Request.Context(), voucherID); err != nil {
		logger.Error("Failed to delete voucher in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete voucher"})
		return
	}

	c.Status(http.StatusNoContent)
}
