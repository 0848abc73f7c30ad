package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pveldman/studioadmin/internal/application/service"
	"github.com/pveldman/studioadmin/internal/presentation/http/dto/response"
)

// ReportHandler handles revenue report and tax document HTTP requests
type ReportHandler struct {
	reportService   *service.ReportService
	documentService *service.DocumentService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService, documentService *service.DocumentService) *ReportHandler {
	return &ReportHandler{
		reportService:   reportService,
		documentService: documentService,
	}
}

// Period handles building a revenue report for a named period relative to
// today (day, week, month, year).
func (h *ReportHandler) Period(c *gin.Context) {
	start, end, err := service.PeriodRange(c.Param("period"), time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}
	clientID, err := parseOptionalClientID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.reportService.BuildRangeReport(c.Request.Context(), start, end, clientID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report built successfully", report)
}

// Range handles building a revenue report over a date range
func (h *ReportHandler) Range(c *gin.Context) {
	report, err := h.buildRangeReport(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report built successfully", report)
}

// RangeDocument handles rendering the range report as a downloadable document
func (h *ReportHandler) RangeDocument(c *gin.Context) {
	report, err := h.buildRangeReport(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	artifact, err := h.documentService.RenderRangeReport(c.Request.Context(), report)
	if err != nil {
		response.Error(c, err)
		return
	}

	sendArtifact(c, artifact, "text/plain; charset=utf-8")
}

// Tax handles building the year-to-date tax summary
func (h *ReportHandler) Tax(c *gin.Context) {
	doc, err := h.reportService.BuildTaxDocument(c.Request.Context(), time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tax document built successfully", doc)
}

// TaxDocument handles rendering the tax summary as a downloadable document
func (h *ReportHandler) TaxDocument(c *gin.Context) {
	doc, err := h.reportService.BuildTaxDocument(c.Request.Context(), time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	artifact, err := h.documentService.RenderTaxDocument(c.Request.Context(), doc)
	if err != nil {
		response.Error(c, err)
		return
	}

	sendArtifact(c, artifact, "text/plain; charset=utf-8")
}

func (h *ReportHandler) buildRangeReport(c *gin.Context) (*service.RangeReport, error) {
	start, end, err := parseDateRange(c)
	if err != nil {
		return nil, err
	}
	clientID, err := parseOptionalClientID(c)
	if err != nil {
		return nil, err
	}
	return h.reportService.BuildRangeReport(c.Request.Context(), start, end, clientID)
}
