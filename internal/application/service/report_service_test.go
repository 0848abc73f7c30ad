package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pveldman/studioadmin/internal/domain/entity"
)

// 2026-08-28 is a Friday.
var testToday = time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

func TestPeriodRange(t *testing.T) {
	cases := []struct {
		period string
		start  time.Time
		end    time.Time
	}{
		{"day", testToday, testToday},
		{"week", time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)},
		{"month", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)},
		{"year", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), testToday},
	}
	for _, c := range cases {
		start, end, err := PeriodRange(c.period, testToday)
		if err != nil {
			t.Fatalf("%s: %v", c.period, err)
		}
		if !start.Equal(c.start) || !end.Equal(c.end) {
			t.Fatalf("%s: got [%s, %s] want [%s, %s]", c.period, start, end, c.start, c.end)
		}
	}
}

func TestPeriodRangeWeekStartsOnMonday(t *testing.T) {
	// A Sunday still belongs to the week that began the previous Monday.
	sunday := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	start, end, err := PeriodRange("week", sunday)
	if err != nil {
		t.Fatalf("week: %v", err)
	}
	if !start.Equal(time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected Monday 24th got %s", start)
	}
	if !end.Equal(sunday) {
		t.Fatalf("expected Sunday 30th got %s", end)
	}
}

func TestPeriodRangeRejectsUnknownPeriod(t *testing.T) {
	if _, _, err := PeriodRange("quarter", testToday); err == nil {
		t.Fatal("expected error for unknown period")
	}
}

func seedReceipt(t *testing.T, stack *testStack, date time.Time, clientID *uuid.UUID, procedure *entity.Procedure, quantity int) *entity.Receipt {
	t.Helper()
	receipt := &entity.Receipt{
		Date:       date,
		ClientID:   clientID,
		TotalCents: procedure.PriceCents * int64(quantity),
	}
	err := stack.receipts.CreateWithItems(context.Background(), receipt, []entity.ReceiptItem{
		{ProcedureID: procedure.ID, Quantity: quantity, UnitPriceCents: procedure.PriceCents},
	})
	if err != nil {
		t.Fatalf("seed receipt: %v", err)
	}
	return receipt
}

func TestBuildRangeReport(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	svc := NewReportService(stack.receipts, stack.clients, stack.settings)

	client := &entity.Client{Name: "Jane", Language: "nl"}
	if err := stack.clients.Create(ctx, client); err != nil {
		t.Fatalf("seed client: %v", err)
	}
	manicure := &entity.Procedure{Name: "Manicure", PriceCents: 3500}
	if err := stack.procedures.Create(ctx, manicure); err != nil {
		t.Fatalf("seed procedure: %v", err)
	}

	date := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	seedReceipt(t, stack, date, &client.ID, manicure, 1)
	seedReceipt(t, stack, date.AddDate(0, 0, 1), nil, manicure, 2)

	report, err := svc.BuildRangeReport(ctx, date, date.AddDate(0, 0, 7), nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(report.Rows) != 2 {
		t.Fatalf("expected 2 rows got %d", len(report.Rows))
	}
	if report.GrossCents != 10500 {
		t.Fatalf("expected gross 10500 got %d", report.GrossCents)
	}
	if report.NetCents+report.VATCents != report.GrossCents {
		t.Fatalf("net %d + vat %d != gross %d", report.NetCents, report.VATCents, report.GrossCents)
	}
	if len(report.ProcedureSubtotals) != 1 || report.ProcedureSubtotals[0].Cents != 10500 {
		t.Fatalf("unexpected subtotals %+v", report.ProcedureSubtotals)
	}

	// Client filter narrows rows and names the client in the report.
	filtered, err := svc.BuildRangeReport(ctx, date, date.AddDate(0, 0, 7), &client.ID)
	if err != nil {
		t.Fatalf("build filtered: %v", err)
	}
	if len(filtered.Rows) != 1 || filtered.GrossCents != 3500 {
		t.Fatalf("unexpected filtered report: %d rows, gross %d", len(filtered.Rows), filtered.GrossCents)
	}
	if filtered.ClientName != "Jane" {
		t.Fatalf("expected client name in report got %q", filtered.ClientName)
	}
}

func TestBuildRangeReportEmptyRange(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	svc := NewReportService(stack.receipts, stack.clients, stack.settings)

	date := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	report, err := svc.BuildRangeReport(ctx, date, date, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(report.Rows) != 0 || report.GrossCents != 0 || report.VATCents != 0 {
		t.Fatalf("expected empty report got %+v", report)
	}
}

func TestBuildRangeReportRejectsUnknownClient(t *testing.T) {
	stack := newTestStack(t)
	svc := NewReportService(stack.receipts, stack.clients, stack.settings)

	unknown := uuid.New()
	date := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	if _, err := svc.BuildRangeReport(context.Background(), date, date, &unknown); err == nil {
		t.Fatal("expected error for unknown client")
	}
}

func TestBuildTaxDocumentBucketsPerMonth(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	svc := NewReportService(stack.receipts, stack.clients, stack.settings)

	company := "Studio Eva"
	admin := "Eva"
	if _, err := stack.settings.Update(ctx, &UpdateSettingsInput{CompanyName: &company, AdminName: &admin}); err != nil {
		t.Fatalf("settings: %v", err)
	}

	// 121.00 gross at 21% splits exactly into 100.00 net + 21.00 VAT.
	procedure := &entity.Procedure{Name: "Treatment", PriceCents: 12100}
	if err := stack.procedures.Create(ctx, procedure); err != nil {
		t.Fatalf("seed procedure: %v", err)
	}
	seedReceipt(t, stack, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), nil, procedure, 1)
	seedReceipt(t, stack, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), nil, procedure, 2)

	doc, err := svc.BuildTaxDocument(ctx, testToday)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if doc.Year != 2026 || doc.CompanyName != "Studio Eva" || doc.AdminName != "Eva" {
		t.Fatalf("unexpected header %+v", doc)
	}
	// Months without receipts are omitted.
	if len(doc.Months) != 2 {
		t.Fatalf("expected 2 months got %d", len(doc.Months))
	}
	if doc.Months[0].Month != "2026-01" || doc.Months[1].Month != "2026-03" {
		t.Fatalf("unexpected months %+v", doc.Months)
	}
	if doc.Months[0].NetCents != 10000 || doc.Months[0].VATCents != 2100 {
		t.Fatalf("unexpected january split %+v", doc.Months[0])
	}
	if doc.Months[1].NetCents != 20000 || doc.Months[1].VATCents != 4200 {
		t.Fatalf("unexpected march split %+v", doc.Months[1])
	}

	// The yearly figures are the sums of the month figures.
	if doc.NetCents != 30000 || doc.VATCents != 6300 || doc.GrossCents != 36300 {
		t.Fatalf("unexpected year totals %+v", doc)
	}
	if doc.NetCents+doc.VATCents != doc.GrossCents {
		t.Fatalf("year totals do not reconcile: %+v", doc)
	}
}

func TestBuildTaxDocumentEmptyYear(t *testing.T) {
	stack := newTestStack(t)
	svc := NewReportService(stack.receipts, stack.clients, stack.settings)

	doc, err := svc.BuildTaxDocument(context.Background(), testToday)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(doc.Months) != 0 || doc.GrossCents != 0 {
		t.Fatalf("expected empty document got %+v", doc)
	}
}
