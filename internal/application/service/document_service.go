package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pveldman/studioadmin/internal/domain/repository"
	"github.com/pveldman/studioadmin/pkg/apperror"
	"github.com/pveldman/studioadmin/pkg/document"
	"github.com/pveldman/studioadmin/pkg/money"
	"github.com/pveldman/studioadmin/pkg/vat"
)

// DocumentService renders receipts, range reports and tax documents to
// fixed-width text artifacts and stores them under the configured storage
// directory. A render or write failure never rolls back persisted records.
type DocumentService struct {
	receiptRepo     repository.ReceiptRepository
	settingsService *SettingsService
	storageDir      string
}

// NewDocumentService creates a new document service
func NewDocumentService(
	receiptRepo repository.ReceiptRepository,
	settingsService *SettingsService,
	storageDir string,
) *DocumentService {
	return &DocumentService{
		receiptRepo:     receiptRepo,
		settingsService: settingsService,
		storageDir:      storageDir,
	}
}

// RenderReceipt renders the receipt to a text artifact, writes it to storage
// and records the stored path on the receipt.
func (s *DocumentService) RenderReceipt(ctx context.Context, id uuid.UUID) (*document.Artifact, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}

	settings, err := s.settingsService.Get(ctx)
	if err != nil {
		return nil, err
	}
	net, vatAmount := vat.Split(receipt.TotalCents, settings.VATRate)

	b := document.NewBuilder(document.DefaultWidth)
	if settings.CompanyName != "" {
		b.Center(settings.CompanyName)
	}
	if settings.AdminName != "" {
		b.Center(settings.AdminName)
	}
	b.Rule()
	b.Row("Receipt", receipt.Number)
	b.Row("Date", receipt.Date.Format("2006-01-02"))
	clientName := "-"
	if receipt.Client != nil {
		clientName = receipt.Client.Name
	}
	b.Row("Client", clientName)
	b.Rule()
	for _, item := range receipt.Items {
		name := item.ProcedureName
		if name == "" {
			name = "(removed)"
		}
		line := fmt.Sprintf("%s x%d", name, item.Quantity)
		b.Row(line, money.Format(item.UnitPriceCents*int64(item.Quantity)))
	}
	b.Rule()
	b.Row("TOTAL", money.Format(receipt.TotalCents))
	b.Row(fmt.Sprintf("  Net (excl. VAT %g%%)", settings.VATRate), money.Format(net))
	b.Row(fmt.Sprintf("  VAT %g%%", settings.VATRate), money.Format(vatAmount))
	b.Rule()
	b.Blank()
	b.Center("Thank you for your visit")

	artifact := &document.Artifact{
		Filename: fmt.Sprintf("%s_receipt_%s.txt", document.Slug(settings.CompanyName), receipt.Number),
		Data:     b.Bytes(),
	}

	path, err := s.store(artifact)
	if err != nil {
		return nil, err
	}
	if err := s.receiptRepo.UpdateDocumentPath(ctx, receipt.ID, path); err != nil {
		return nil, err
	}
	return artifact, nil
}

// RenderRangeReport renders a built range report and writes it to storage.
func (s *DocumentService) RenderRangeReport(ctx context.Context, report *RangeReport) (*document.Artifact, error) {
	settings, err := s.settingsService.Get(ctx)
	if err != nil {
		return nil, err
	}

	b := document.NewBuilder(document.DefaultWidth)
	if settings.CompanyName != "" {
		b.Center(settings.CompanyName)
	}
	b.Center(report.Title)
	b.Rule()
	for _, row := range report.Rows {
		left := fmt.Sprintf("%s  %s", row.Date, row.Number)
		if row.ClientName != "" {
			left += "  " + row.ClientName
		}
		b.Row(left, money.Format(row.GrossCents))
	}
	b.Rule()
	if len(report.ProcedureSubtotals) > 0 {
		b.Line("Per procedure")
		for _, sub := range report.ProcedureSubtotals {
			b.Row("  "+sub.Name, money.Format(sub.Cents))
		}
		b.Rule()
	}
	b.Row("TOTAL", money.Format(report.GrossCents))
	b.Row(fmt.Sprintf("  Net (excl. VAT %g%%)", report.VATRate), money.Format(report.NetCents))
	b.Row(fmt.Sprintf("  VAT %g%%", report.VATRate), money.Format(report.VATCents))

	scope := "ALL"
	if report.ClientName != "" {
		scope = document.Slug(report.ClientName)
	}
	artifact := &document.Artifact{
		Filename: fmt.Sprintf("%s_receipts_%s_%s_%s.txt",
			document.Slug(settings.CompanyName), report.Start, report.End, scope),
		Data: b.Bytes(),
	}
	if _, err := s.store(artifact); err != nil {
		return nil, err
	}
	return artifact, nil
}

// RenderTaxDocument renders a built tax document and writes it to storage.
func (s *DocumentService) RenderTaxDocument(ctx context.Context, doc *TaxDocument) (*document.Artifact, error) {
	b := document.NewBuilder(document.DefaultWidth)
	if doc.CompanyName != "" {
		b.Center(doc.CompanyName)
	}
	if doc.AdminName != "" {
		b.Center(doc.AdminName)
	}
	b.Center(fmt.Sprintf("Tax declaration %d", doc.Year))
	b.Rule()
	b.Row("Month", fmt.Sprintf("%12s %12s %12s", "Net", "VAT", "Gross"))
	for _, month := range doc.Months {
		b.Row(month.Month, fmt.Sprintf("%12s %12s %12s",
			money.Format(month.NetCents), money.Format(month.VATCents), money.Format(month.GrossCents)))
	}
	b.Rule()
	b.Row(fmt.Sprintf("TOTAL (VAT %g%%)", doc.VATRate), fmt.Sprintf("%12s %12s %12s",
		money.Format(doc.NetCents), money.Format(doc.VATCents), money.Format(doc.GrossCents)))

	artifact := &document.Artifact{
		Filename: fmt.Sprintf("%s_tax_declaration_%d.txt", document.Slug(doc.CompanyName), doc.Year),
		Data:     b.Bytes(),
	}
	if _, err := s.store(artifact); err != nil {
		return nil, err
	}
	return artifact, nil
}

// store writes the artifact under the storage directory and returns the path.
func (s *DocumentService) store(artifact *document.Artifact) (string, error) {
	if err := os.MkdirAll(s.storageDir, 0o755); err != nil {
		return "", apperror.NewExternalError("Failed to prepare document storage: " + err.Error())
	}
	path := filepath.Join(s.storageDir, artifact.Filename)
	if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
		return "", apperror.NewExternalError("Failed to write document: " + err.Error())
	}
	return path, nil
}
