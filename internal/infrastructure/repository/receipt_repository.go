package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pveldman/studioadmin/internal/domain/entity"
	domainRepo "github.com/pveldman/studioadmin/internal/domain/repository"
	"gorm.io/gorm"
)

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{db: db}
}

// CreateWithItems assigns the day-sequence number and persists the receipt
// header together with all its line items in one transaction. The sequence is
// recomputed from the day's current receipt count; receipts are never deleted,
// so counts only grow and numbers stay unique.
func (r *receiptRepository) CreateWithItems(ctx context.Context, receipt *entity.Receipt, items []entity.ReceiptItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.Receipt{}).Where("date = ?", receipt.Date).Count(&count).Error; err != nil {
			return err
		}
		receipt.Number = fmt.Sprintf("%s-%04d", receipt.Date.Format("20060102"), count+1)

		if err := tx.Create(receipt).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ReceiptID = receipt.ID
		}
		return tx.Create(&items).Error
	})
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Items").
		Preload("Items.Procedure").
		First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	annotateItemNames(receipt.Items)
	return &receipt, nil
}

func (r *receiptRepository) ListInRange(ctx context.Context, start, end time.Time, clientID *uuid.UUID) ([]entity.Receipt, error) {
	var receipts []entity.Receipt
	query := r.db.WithContext(ctx).
		Preload("Client").
		Where("date >= ? AND date <= ?", start, end)
	if clientID != nil {
		query = query.Where("client_id = ?", *clientID)
	}
	err := query.Order("date ASC").Find(&receipts).Error
	return receipts, err
}

func (r *receiptRepository) SumTotalInRange(ctx context.Context, start, end time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_cents), 0)
		FROM receipts
		WHERE date >= ? AND date <= ?
	`, start, end).Scan(&total).Error
	return total, err
}

func (r *receiptRepository) SumByProcedureInRange(ctx context.Context, start, end time.Time, clientID *uuid.UUID) ([]domainRepo.ProcedureSum, error) {
	var results []domainRepo.ProcedureSum

	query := `
		SELECT p.name AS name, COALESCE(SUM(ri.quantity * ri.unit_price_cents), 0) AS cents
		FROM receipts r
		JOIN receipt_items ri ON ri.receipt_id = r.id
		JOIN procedures p ON p.id = ri.procedure_id
		WHERE r.date >= ? AND r.date <= ?`
	args := []interface{}{start, end}
	if clientID != nil {
		query += " AND r.client_id = ?"
		args = append(args, *clientID)
	}
	query += `
		GROUP BY p.name
		ORDER BY p.name ASC`

	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&results).Error
	return results, err
}

func (r *receiptRepository) UpdateDocumentPath(ctx context.Context, id uuid.UUID, path string) error {
	return r.db.WithContext(ctx).Model(&entity.Receipt{}).
		Where("id = ?", id).
		Update("document_path", path).Error
}

// annotateItemNames resolves each line item's display name from its procedure
// at query time. Items of a since-deleted procedure keep an empty name.
func annotateItemNames(items []entity.ReceiptItem) {
	for i := range items {
		if items[i].Procedure != nil {
			items[i].ProcedureName = items[i].Procedure.Name
		}
	}
}
