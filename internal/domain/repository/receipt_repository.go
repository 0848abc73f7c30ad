package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pveldman/studioadmin/internal/domain/entity"
)

// ProcedureSum is one per-procedure revenue row of a range aggregation.
type ProcedureSum struct {
	Name  string `json:"name"`
	Cents int64  `json:"cents"`
}

// ReceiptRepository defines the interface for receipt data access. Receipts
// are immutable: the only write after creation is recording the rendered
// document path.
type ReceiptRepository interface {
	// CreateWithItems assigns the receipt number (day sequence, recomputed
	// from the day's receipt count) and persists header plus items in a
	// single transaction: either the whole receipt is durable or none of it.
	CreateWithItems(ctx context.Context, receipt *entity.Receipt, items []entity.ReceiptItem) error
	// GetByID returns the receipt with its items, item names resolved from
	// the procedures at query time. Unknown ids yield (nil, nil).
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	// ListInRange returns receipts with date in [start, end], optionally
	// filtered by client, ordered by date ascending.
	ListInRange(ctx context.Context, start, end time.Time, clientID *uuid.UUID) ([]entity.Receipt, error)
	// SumTotalInRange returns the summed gross totals in cents, 0 when the
	// range holds no receipts.
	SumTotalInRange(ctx context.Context, start, end time.Time) (int64, error)
	// SumByProcedureInRange aggregates line-item revenue per procedure name,
	// ordered by name ascending.
	SumByProcedureInRange(ctx context.Context, start, end time.Time, clientID *uuid.UUID) ([]ProcedureSum, error)
	UpdateDocumentPath(ctx context.Context, id uuid.UUID, path string) error
}
