package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pveldman/studioadmin/internal/domain/entity"
)

func TestRenderReceiptWritesAndRecordsDocument(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	storageDir := t.TempDir()
	svc := NewDocumentService(stack.receipts, stack.settings, storageDir)

	company := "Studio Eva"
	if _, err := stack.settings.Update(ctx, &UpdateSettingsInput{CompanyName: &company}); err != nil {
		t.Fatalf("settings: %v", err)
	}

	procedure := &entity.Procedure{Name: "Manicure", PriceCents: 3500}
	if err := stack.procedures.Create(ctx, procedure); err != nil {
		t.Fatalf("seed procedure: %v", err)
	}
	date := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	receipt := seedReceipt(t, stack, date, nil, procedure, 1)

	artifact, err := svc.RenderReceipt(ctx, receipt.ID)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if artifact.Filename != "studio_eva_receipt_"+receipt.Number+".txt" {
		t.Fatalf("unexpected filename %s", artifact.Filename)
	}

	text := string(artifact.Data)
	if !strings.Contains(text, receipt.Number) || !strings.Contains(text, "Manicure x1") {
		t.Fatalf("unexpected document body:\n%s", text)
	}
	if !strings.Contains(text, "35.00") {
		t.Fatalf("expected gross total in document:\n%s", text)
	}

	// The rendered file lands in storage and the receipt records its path.
	stored := filepath.Join(storageDir, artifact.Filename)
	if _, err := os.Stat(stored); err != nil {
		t.Fatalf("expected stored document: %v", err)
	}
	got, err := stack.receipts.GetByID(ctx, receipt.ID)
	if err != nil {
		t.Fatalf("get receipt: %v", err)
	}
	if got.DocumentPath == nil || *got.DocumentPath != stored {
		t.Fatalf("expected document path %s got %v", stored, got.DocumentPath)
	}
}

func TestRenderReceiptUnknownID(t *testing.T) {
	stack := newTestStack(t)
	svc := NewDocumentService(stack.receipts, stack.settings, t.TempDir())

	if _, err := svc.RenderReceipt(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected error for unknown receipt")
	}
}

func TestRenderTaxDocument(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()
	storageDir := t.TempDir()
	docSvc := NewDocumentService(stack.receipts, stack.settings, storageDir)
	reportSvc := NewReportService(stack.receipts, stack.clients, stack.settings)

	company := "Studio Eva"
	if _, err := stack.settings.Update(ctx, &UpdateSettingsInput{CompanyName: &company}); err != nil {
		t.Fatalf("settings: %v", err)
	}
	procedure := &entity.Procedure{Name: "Treatment", PriceCents: 12100}
	if err := stack.procedures.Create(ctx, procedure); err != nil {
		t.Fatalf("seed procedure: %v", err)
	}
	seedReceipt(t, stack, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), nil, procedure, 1)

	doc, err := reportSvc.BuildTaxDocument(ctx, testToday)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	artifact, err := docSvc.RenderTaxDocument(ctx, doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if artifact.Filename != "studio_eva_tax_declaration_2026.txt" {
		t.Fatalf("unexpected filename %s", artifact.Filename)
	}
	if !strings.Contains(string(artifact.Data), "2026-01") {
		t.Fatalf("expected month bucket in document:\n%s", artifact.Data)
	}
	if _, err := os.Stat(filepath.Join(storageDir, artifact.Filename)); err != nil {
		t.Fatalf("expected stored document: %v", err)
	}
}
