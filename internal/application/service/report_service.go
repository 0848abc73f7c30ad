package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pveldman/studioadmin/internal/domain/repository"
	"github.com/pveldman/studioadmin/pkg/apperror"
	"github.com/pveldman/studioadmin/pkg/money"
	"github.com/pveldman/studioadmin/pkg/vat"
)

// dateOnly truncates a timestamp to midnight so date columns compare cleanly.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// PeriodRange resolves a named period to an inclusive date range relative to
// today. Weeks start on Monday.
func PeriodRange(period string, today time.Time) (time.Time, time.Time, error) {
	today = dateOnly(today)
	switch period {
	case "day":
		return today, today, nil
	case "week":
		offset := (int(today.Weekday()) + 6) % 7
		start := today.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 6), nil
	case "month":
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		end := time.Date(today.Year(), today.Month()+1, 0, 0, 0, 0, 0, today.Location())
		return start, end, nil
	case "year":
		start := time.Date(today.Year(), 1, 1, 0, 0, 0, 0, today.Location())
		return start, today, nil
	default:
		return time.Time{}, time.Time{}, apperror.NewBadRequestError("Period must be one of day, week, month, year")
	}
}

// ReportService builds revenue reports and the yearly tax document. All VAT
// figures are derived from tax-inclusive totals at reporting time.
type ReportService struct {
	receiptRepo     repository.ReceiptRepository
	clientRepo      repository.ClientRepository
	settingsService *SettingsService
}

// NewReportService creates a new report service
func NewReportService(
	receiptRepo repository.ReceiptRepository,
	clientRepo repository.ClientRepository,
	settingsService *SettingsService,
) *ReportService {
	return &ReportService{
		receiptRepo:     receiptRepo,
		clientRepo:      clientRepo,
		settingsService: settingsService,
	}
}

// ReportRow is one receipt line in a range report.
type ReportRow struct {
	Date       string  `json:"date"`
	Number     string  `json:"number"`
	ClientName string  `json:"client_name"`
	GrossCents int64   `json:"-"`
	Gross      float64 `json:"gross"`
}

// ProcedureSubtotal aggregates revenue per price-list entry.
type ProcedureSubtotal struct {
	Name   string  `json:"name"`
	Cents  int64   `json:"-"`
	Amount float64 `json:"amount"`
}

// RangeReport is a revenue report over an inclusive date range, with the VAT
// portion split out of the gross total at the configured rate.
type RangeReport struct {
	Title              string              `json:"title"`
	Start              string              `json:"start"`
	End                string              `json:"end"`
	ClientName         string              `json:"client_name,omitempty"`
	Rows               []ReportRow         `json:"rows"`
	ProcedureSubtotals []ProcedureSubtotal `json:"procedure_subtotals"`
	VATRate            float64             `json:"vat_rate"`
	NetCents           int64               `json:"-"`
	VATCents           int64               `json:"-"`
	GrossCents         int64               `json:"-"`
	Net                float64             `json:"net"`
	VAT                float64             `json:"vat"`
	Gross              float64             `json:"gross"`
}

// BuildRangeReport assembles the report for the date range, optionally
// restricted to one client. An empty range yields a report with no rows and
// zero totals.
func (s *ReportService) BuildRangeReport(ctx context.Context, start, end time.Time, clientID *uuid.UUID) (*RangeReport, error) {
	start, end = dateOnly(start), dateOnly(end)
	if end.Before(start) {
		return nil, apperror.NewBadRequestError("End date must not precede start date")
	}

	report := &RangeReport{
		Start: start.Format("2006-01-02"),
		End:   end.Format("2006-01-02"),
	}
	report.Title = fmt.Sprintf("Receipts %s to %s", report.Start, report.End)

	if clientID != nil {
		client, err := s.clientRepo.GetByID(ctx, *clientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, apperror.NewNotFoundError("Client")
		}
		report.ClientName = client.Name
		report.Title += " for " + client.Name
	}

	receipts, err := s.receiptRepo.ListInRange(ctx, start, end, clientID)
	if err != nil {
		return nil, err
	}

	report.Rows = make([]ReportRow, 0, len(receipts))
	var total int64
	for _, r := range receipts {
		row := ReportRow{
			Date:       r.Date.Format("2006-01-02"),
			Number:     r.Number,
			GrossCents: r.TotalCents,
			Gross:      money.FromCents(r.TotalCents),
		}
		if r.Client != nil {
			row.ClientName = r.Client.Name
		}
		report.Rows = append(report.Rows, row)
		total += r.TotalCents
	}

	sums, err := s.receiptRepo.SumByProcedureInRange(ctx, start, end, clientID)
	if err != nil {
		return nil, err
	}
	report.ProcedureSubtotals = make([]ProcedureSubtotal, 0, len(sums))
	for _, sum := range sums {
		report.ProcedureSubtotals = append(report.ProcedureSubtotals, ProcedureSubtotal{
			Name:   sum.Name,
			Cents:  sum.Cents,
			Amount: money.FromCents(sum.Cents),
		})
	}

	rate, err := s.settingsService.VATRate(ctx)
	if err != nil {
		return nil, err
	}
	net, vatAmount := vat.Split(total, rate)

	report.VATRate = rate
	report.GrossCents = total
	report.NetCents = net
	report.VATCents = vatAmount
	report.Gross = money.FromCents(total)
	report.Net = money.FromCents(net)
	report.VAT = money.FromCents(vatAmount)
	return report, nil
}

// MonthBucket is one calendar month in the tax document.
type MonthBucket struct {
	Month      string  `json:"month"` // YYYY-MM
	NetCents   int64   `json:"-"`
	VATCents   int64   `json:"-"`
	GrossCents int64   `json:"-"`
	Net        float64 `json:"net"`
	VAT        float64 `json:"vat"`
	Gross      float64 `json:"gross"`
}

// TaxDocument summarizes the current year per calendar month with net, VAT
// and gross per month and for the year. Months without receipts are omitted.
type TaxDocument struct {
	Year        int           `json:"year"`
	CompanyName string        `json:"company_name"`
	AdminName   string        `json:"admin_name"`
	VATRate     float64       `json:"vat_rate"`
	Months      []MonthBucket `json:"months"`
	NetCents    int64         `json:"-"`
	VATCents    int64         `json:"-"`
	GrossCents  int64         `json:"-"`
	Net         float64       `json:"net"`
	VAT         float64       `json:"vat"`
	Gross       float64       `json:"gross"`
}

// BuildTaxDocument assembles the year-to-date tax summary. The VAT split is
// applied per month, so the yearly figures are the sums of the month figures.
func (s *ReportService) BuildTaxDocument(ctx context.Context, today time.Time) (*TaxDocument, error) {
	today = dateOnly(today)
	start := time.Date(today.Year(), 1, 1, 0, 0, 0, 0, today.Location())

	settings, err := s.settingsService.Get(ctx)
	if err != nil {
		return nil, err
	}

	doc := &TaxDocument{
		Year:        today.Year(),
		CompanyName: settings.CompanyName,
		AdminName:   settings.AdminName,
		VATRate:     settings.VATRate,
		Months:      []MonthBucket{},
	}

	receipts, err := s.receiptRepo.ListInRange(ctx, start, today, nil)
	if err != nil {
		return nil, err
	}
	if len(receipts) == 0 {
		return doc, nil
	}

	grossByMonth := make(map[string]int64)
	for _, r := range receipts {
		grossByMonth[r.Date.Format("2006-01")] += r.TotalCents
	}
	months := make([]string, 0, len(grossByMonth))
	for month := range grossByMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	for _, month := range months {
		gross := grossByMonth[month]
		net, vatAmount := vat.Split(gross, settings.VATRate)
		doc.Months = append(doc.Months, MonthBucket{
			Month:      month,
			NetCents:   net,
			VATCents:   vatAmount,
			GrossCents: gross,
			Net:        money.FromCents(net),
			VAT:        money.FromCents(vatAmount),
			Gross:      money.FromCents(gross),
		})
		doc.NetCents += net
		doc.VATCents += vatAmount
		doc.GrossCents += gross
	}
	doc.Net = money.FromCents(doc.NetCents)
	doc.VAT = money.FromCents(doc.VATCents)
	doc.Gross = money.FromCents(doc.GrossCents)
	return doc, nil
}
