package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pveldman/studioadmin/internal/domain/entity"
	domainRepo "github.com/pveldman/studioadmin/internal/domain/repository"
)

func seedProcedure(t *testing.T, procedures domainRepo.ProcedureRepository, name string, cents int64) *entity.Procedure {
	t.Helper()
	p := &entity.Procedure{Name: name, PriceCents: cents}
	if err := procedures.Create(context.Background(), p); err != nil {
		t.Fatalf("seed procedure: %v", err)
	}
	return p
}

func TestCreateWithItemsAssignsSequentialNumbers(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	receipts := NewReceiptRepository(db)
	procedures := NewProcedureRepository(db)

	p := seedProcedure(t, procedures, "Manicure", 3500)
	date := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	first := &entity.Receipt{Date: date, TotalCents: 3500}
	if err := receipts.CreateWithItems(ctx, first, []entity.ReceiptItem{
		{ProcedureID: p.ID, Quantity: 1, UnitPriceCents: 3500},
	}); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if first.Number != "20260510-0001" {
		t.Fatalf("expected 20260510-0001 got %s", first.Number)
	}

	second := &entity.Receipt{Date: date, TotalCents: 7000}
	if err := receipts.CreateWithItems(ctx, second, []entity.ReceiptItem{
		{ProcedureID: p.ID, Quantity: 2, UnitPriceCents: 3500},
	}); err != nil {
		t.Fatalf("create second: %v", err)
	}
	if second.Number != "20260510-0002" {
		t.Fatalf("expected 20260510-0002 got %s", second.Number)
	}

	// A different day restarts the sequence.
	other := &entity.Receipt{Date: date.AddDate(0, 0, 1), TotalCents: 3500}
	if err := receipts.CreateWithItems(ctx, other, []entity.ReceiptItem{
		{ProcedureID: p.ID, Quantity: 1, UnitPriceCents: 3500},
	}); err != nil {
		t.Fatalf("create other day: %v", err)
	}
	if other.Number != "20260511-0001" {
		t.Fatalf("expected 20260511-0001 got %s", other.Number)
	}
}

func TestGetByIDResolvesItemNames(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	receipts := NewReceiptRepository(db)
	procedures := NewProcedureRepository(db)

	p := seedProcedure(t, procedures, "Pedicure", 4000)
	date := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	receipt := &entity.Receipt{Date: date, TotalCents: 4000}
	if err := receipts.CreateWithItems(ctx, receipt, []entity.ReceiptItem{
		{ProcedureID: p.ID, Quantity: 1, UnitPriceCents: 4000},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := receipts.GetByID(ctx, receipt.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected receipt")
	}
	if len(got.Items) != 1 || got.Items[0].ProcedureName != "Pedicure" {
		t.Fatalf("expected item name resolved, got %+v", got.Items)
	}

	missing, err := receipts.GetByID(ctx, uuid.New())
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for unknown id")
	}
}

func TestSumTotalInRange(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	receipts := NewReceiptRepository(db)
	procedures := NewProcedureRepository(db)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	total, err := receipts.SumTotalInRange(ctx, start, end)
	if err != nil {
		t.Fatalf("sum empty: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected 0 for empty range got %d", total)
	}

	p := seedProcedure(t, procedures, "Massage", 6000)
	inRange := &entity.Receipt{Date: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), TotalCents: 6000}
	if err := receipts.CreateWithItems(ctx, inRange, []entity.ReceiptItem{
		{ProcedureID: p.ID, Quantity: 1, UnitPriceCents: 6000},
	}); err != nil {
		t.Fatalf("create in range: %v", err)
	}
	outOfRange := &entity.Receipt{Date: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), TotalCents: 9999}
	if err := receipts.CreateWithItems(ctx, outOfRange, []entity.ReceiptItem{
		{ProcedureID: p.ID, Quantity: 1, UnitPriceCents: 9999},
	}); err != nil {
		t.Fatalf("create out of range: %v", err)
	}

	total, err = receipts.SumTotalInRange(ctx, start, end)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if total != 6000 {
		t.Fatalf("expected 6000 got %d", total)
	}
}

func TestSumByProcedureInRange(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	receipts := NewReceiptRepository(db)
	procedures := NewProcedureRepository(db)

	manicure := seedProcedure(t, procedures, "Manicure", 3500)
	pedicure := seedProcedure(t, procedures, "Pedicure", 4000)
	date := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)

	receipt := &entity.Receipt{Date: date, TotalCents: 11000}
	if err := receipts.CreateWithItems(ctx, receipt, []entity.ReceiptItem{
		{ProcedureID: manicure.ID, Quantity: 2, UnitPriceCents: 3500},
		{ProcedureID: pedicure.ID, Quantity: 1, UnitPriceCents: 4000},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	// A second receipt across the month boundary still lands in the same
	// per-procedure buckets.
	july := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	second := &entity.Receipt{Date: july, TotalCents: 3500}
	if err := receipts.CreateWithItems(ctx, second, []entity.ReceiptItem{
		{ProcedureID: manicure.ID, Quantity: 1, UnitPriceCents: 3500},
	}); err != nil {
		t.Fatalf("create second: %v", err)
	}

	sums, err := receipts.SumByProcedureInRange(ctx, date, july, nil)
	if err != nil {
		t.Fatalf("sum by procedure: %v", err)
	}
	if len(sums) != 2 {
		t.Fatalf("expected 2 rows got %d", len(sums))
	}
	// Ordered by name ascending.
	if sums[0].Name != "Manicure" || sums[0].Cents != 10500 {
		t.Fatalf("unexpected first row %+v", sums[0])
	}
	if sums[1].Name != "Pedicure" || sums[1].Cents != 4000 {
		t.Fatalf("unexpected second row %+v", sums[1])
	}
}

func TestListInRangeFiltersByClient(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	receipts := NewReceiptRepository(db)
	procedures := NewProcedureRepository(db)
	clients := NewClientRepository(db)

	client := &entity.Client{Name: "Jane", Language: "nl"}
	if err := clients.Create(ctx, client); err != nil {
		t.Fatalf("seed client: %v", err)
	}
	p := seedProcedure(t, procedures, "Manicure", 3500)
	date := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)

	withClient := &entity.Receipt{Date: date, ClientID: &client.ID, TotalCents: 3500}
	if err := receipts.CreateWithItems(ctx, withClient, []entity.ReceiptItem{
		{ProcedureID: p.ID, Quantity: 1, UnitPriceCents: 3500},
	}); err != nil {
		t.Fatalf("create with client: %v", err)
	}
	anonymous := &entity.Receipt{Date: date, TotalCents: 3500}
	if err := receipts.CreateWithItems(ctx, anonymous, []entity.ReceiptItem{
		{ProcedureID: p.ID, Quantity: 1, UnitPriceCents: 3500},
	}); err != nil {
		t.Fatalf("create anonymous: %v", err)
	}

	all, err := receipts.ListInRange(ctx, date, date, nil)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 receipts got %d", len(all))
	}

	filtered, err := receipts.ListInRange(ctx, date, date, &client.ID)
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].ID != withClient.ID {
		t.Fatalf("expected only the client's receipt, got %d", len(filtered))
	}
}

func TestUpdateDocumentPath(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	receipts := NewReceiptRepository(db)
	procedures := NewProcedureRepository(db)

	p := seedProcedure(t, procedures, "Manicure", 3500)
	receipt := &entity.Receipt{Date: time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC), TotalCents: 3500}
	if err := receipts.CreateWithItems(ctx, receipt, []entity.ReceiptItem{
		{ProcedureID: p.ID, Quantity: 1, UnitPriceCents: 3500},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := receipts.UpdateDocumentPath(ctx, receipt.ID, "/tmp/doc.txt"); err != nil {
		t.Fatalf("update path: %v", err)
	}
	got, err := receipts.GetByID(ctx, receipt.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.DocumentPath == nil || *got.DocumentPath != "/tmp/doc.txt" {
		t.Fatalf("expected document path recorded, got %+v", got.DocumentPath)
	}
}
