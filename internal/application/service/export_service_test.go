package service

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/pveldman/studioadmin/internal/domain/entity"
)

func TestExportCSV(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	svc := NewExportService(stack.receipts, stack.settings)

	company := "Studio Eva"
	if _, err := stack.settings.Update(ctx, &UpdateSettingsInput{CompanyName: &company}); err != nil {
		t.Fatalf("settings: %v", err)
	}

	client := &entity.Client{Name: "Jane", Language: "nl"}
	if err := stack.clients.Create(ctx, client); err != nil {
		t.Fatalf("seed client: %v", err)
	}
	procedure := &entity.Procedure{Name: "Manicure", PriceCents: 3500}
	if err := stack.procedures.Create(ctx, procedure); err != nil {
		t.Fatalf("seed procedure: %v", err)
	}
	date := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	receipt := seedReceipt(t, stack, date, &client.ID, procedure, 1)

	artifact, err := svc.CSV(ctx, date, date, nil)
	if err != nil {
		t.Fatalf("csv: %v", err)
	}
	if artifact.Filename != "studio_eva_export_2026-06-02_2026-06-02.csv" {
		t.Fatalf("unexpected filename %s", artifact.Filename)
	}

	records, err := csv.NewReader(strings.NewReader(string(artifact.Data))).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header plus 1 row got %d", len(records))
	}
	if records[0][0] != "number" {
		t.Fatalf("unexpected header %v", records[0])
	}
	row := records[1]
	if row[0] != receipt.Number || row[1] != "2026-06-02" || row[2] != "Jane" || row[3] != "35.00" {
		t.Fatalf("unexpected row %v", row)
	}
}

func TestExportCSVEmptyRangeKeepsHeader(t *testing.T) {
	stack := newTestStack(t)
	svc := NewExportService(stack.receipts, stack.settings)

	date := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	artifact, err := svc.CSV(context.Background(), date, date, nil)
	if err != nil {
		t.Fatalf("csv: %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(string(artifact.Data))).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected header only got %d rows", len(records))
	}
}

func TestExportExcel(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	svc := NewExportService(stack.receipts, stack.settings)

	procedure := &entity.Procedure{Name: "Manicure", PriceCents: 3500}
	if err := stack.procedures.Create(ctx, procedure); err != nil {
		t.Fatalf("seed procedure: %v", err)
	}
	date := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	seedReceipt(t, stack, date, nil, procedure, 1)

	artifact, err := svc.Excel(ctx, date, date, nil)
	if err != nil {
		t.Fatalf("excel: %v", err)
	}
	if !strings.HasSuffix(artifact.Filename, ".xlsx") {
		t.Fatalf("unexpected filename %s", artifact.Filename)
	}
	if len(artifact.Data) == 0 {
		t.Fatal("expected spreadsheet bytes")
	}
}
