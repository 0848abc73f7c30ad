package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pveldman/studioadmin/internal/application/service"
	"github.com/pveldman/studioadmin/internal/presentation/http/dto/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles accountant export HTTP requests
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// CSV handles downloading the receipt export as CSV
func (h *ExportHandler) CSV(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	clientID, err := parseOptionalClientID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	artifact, err := h.exportService.CSV(c.Request.Context(), start, end, clientID)
	if err != nil {
		response.Error(c, err)
		return
	}

	sendArtifact(c, artifact, "text/csv; charset=utf-8")
}

// Excel handles downloading the receipt export as a spreadsheet
func (h *ExportHandler) Excel(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	clientID, err := parseOptionalClientID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	artifact, err := h.exportService.Excel(c.Request.Context(), start, end, clientID)
	if err != nil {
		response.Error(c, err)
		return
	}

	sendArtifact(c, artifact, xlsxContentType)
}
