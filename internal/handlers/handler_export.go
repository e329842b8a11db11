package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/middleware"
)

// exportHandler handles HTTP requests for the interchange export.
type exportHandler struct {
	exportService portssvc.TallyExportSvcFacade
}

// newExportHandler creates a new exportHandler.
func newExportHandler(es portssvc.TallyExportSvcFacade) *exportHandler {
	return &exportHandler{
		exportService: es,
	}
}

// registerExportRoutes registers the interchange export route.
func registerExportRoutes(rg *gin.RouterGroup, exportService portssvc.TallyExportSvcFacade) {
	h := newExportHandler(exportService)

	export := rg.Group("/export")
	{
		export.GET("/tally", h.exportTally)
	}
}

// exportTally godoc
// @Summary Export the journal as a Tally import document
// @Description Serializes every voucher into balanced double-entry pairs in the Tally XML interchange format
// @Tags export
// @Produce  application/xml
// @Success 200 {string} string "Tally import XML"
// @Failure 500 {object} map[string]string "Failed to export journal"
// @Router /export/tally [get]
func (h *exportHandler) exportTally(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to export journal for Tally")

	doc, err := h.exportService.ExportInterchange(c.Request.Context())
	if err != nil {
		logger.Error("Failed to export journal", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export journal"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="vouchers.xml"`)
	c.Data(http.StatusOK, "application/xml", []byte(doc))
}
