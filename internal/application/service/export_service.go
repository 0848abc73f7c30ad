package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pveldman/studioadmin/internal/domain/repository"
	"github.com/pveldman/studioadmin/pkg/apperror"
	"github.com/pveldman/studioadmin/pkg/document"
	"github.com/pveldman/studioadmin/pkg/money"
	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{"number", "date", "client", "total", "document_path"}

// ExportService produces tabular receipt exports for accountants.
type ExportService struct {
	receiptRepo     repository.ReceiptRepository
	settingsService *SettingsService
}

// NewExportService creates a new export service
func NewExportService(receiptRepo repository.ReceiptRepository, settingsService *SettingsService) *ExportService {
	return &ExportService{receiptRepo: receiptRepo, settingsService: settingsService}
}

// ExportRow is one receipt in an export file.
type ExportRow struct {
	Number       string
	Date         string
	Client       string
	Total        string
	DocumentPath string
}

// Rows collects the export rows for the date range, optionally restricted to
// one client.
func (s *ExportService) Rows(ctx context.Context, start, end time.Time, clientID *uuid.UUID) ([]ExportRow, error) {
	receipts, err := s.receiptRepo.ListInRange(ctx, dateOnly(start), dateOnly(end), clientID)
	if err != nil {
		return nil, err
	}

	rows := make([]ExportRow, 0, len(receipts))
	for _, r := range receipts {
		row := ExportRow{
			Number: r.Number,
			Date:   r.Date.Format("2006-01-02"),
			Total:  money.Format(r.TotalCents),
		}
		if r.Client != nil {
			row.Client = r.Client.Name
		}
		if r.DocumentPath != nil {
			row.DocumentPath = *r.DocumentPath
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// CSV writes the receipts in the range as a CSV artifact. An empty range
// yields a header-only file.
func (s *ExportService) CSV(ctx context.Context, start, end time.Time, clientID *uuid.UUID) (*document.Artifact, error) {
	rows, err := s.Rows(ctx, start, end, clientID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, apperror.NewExternalError("Failed to write CSV export: " + err.Error())
	}
	for _, row := range rows {
		record := []string{row.Number, row.Date, row.Client, row.Total, row.DocumentPath}
		if err := w.Write(record); err != nil {
			return nil, apperror.NewExternalError("Failed to write CSV export: " + err.Error())
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperror.NewExternalError("Failed to write CSV export: " + err.Error())
	}

	return &document.Artifact{
		Filename: s.filename(ctx, start, end, "csv"),
		Data:     buf.Bytes(),
	}, nil
}

// Excel writes the receipts in the range as a spreadsheet artifact with a
// header row, an autofilter and readable column widths.
func (s *ExportService) Excel(ctx context.Context, start, end time.Time, clientID *uuid.UUID) (*document.Artifact, error) {
	rows, err := s.Rows(ctx, start, end, clientID)
	if err != nil {
		return nil, err
	}

	const sheet = "Receipts"
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, apperror.NewExternalError("Failed to build spreadsheet export: " + err.Error())
	}

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, apperror.NewExternalError("Failed to build spreadsheet export: " + err.Error())
		}
	}
	for i, row := range rows {
		values := []string{row.Number, row.Date, row.Client, row.Total, row.DocumentPath}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, apperror.NewExternalError("Failed to build spreadsheet export: " + err.Error())
			}
		}
	}

	filterRange := fmt.Sprintf("A1:E%d", len(rows)+1)
	if err := f.AutoFilter(sheet, filterRange, nil); err != nil {
		return nil, apperror.NewExternalError("Failed to build spreadsheet export: " + err.Error())
	}
	if err := f.SetColWidth(sheet, "A", "D", 18); err != nil {
		return nil, apperror.NewExternalError("Failed to build spreadsheet export: " + err.Error())
	}
	if err := f.SetColWidth(sheet, "E", "E", 48); err != nil {
		return nil, apperror.NewExternalError("Failed to build spreadsheet export: " + err.Error())
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, apperror.NewExternalError("Failed to build spreadsheet export: " + err.Error())
	}
	return &document.Artifact{
		Filename: s.filename(ctx, start, end, "xlsx"),
		Data:     buf.Bytes(),
	}, nil
}

func (s *ExportService) filename(ctx context.Context, start, end time.Time, ext string) string {
	company := "company"
	if settings, err := s.settingsService.Get(ctx); err == nil {
		company = settings.CompanyName
	}
	return fmt.Sprintf("%s_export_%s_%s.%s",
		document.Slug(company), start.Format("2006-01-02"), end.Format("2006-01-02"), ext)
}
