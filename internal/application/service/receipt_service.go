package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pveldman/studioadmin/internal/domain/entity"
	"github.com/pveldman/studioadmin/internal/domain/repository"
	"github.com/pveldman/studioadmin/pkg/apperror"
)

// ReceiptService handles receipt creation and lookup. Receipts are immutable
// once written; there is no update or delete path.
type ReceiptService struct {
	receiptRepo   repository.ReceiptRepository
	procedureRepo repository.ProcedureRepository
	clientRepo    repository.ClientRepository
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	receiptRepo repository.ReceiptRepository,
	procedureRepo repository.ProcedureRepository,
	clientRepo repository.ClientRepository,
) *ReceiptService {
	return &ReceiptService{
		receiptRepo:   receiptRepo,
		procedureRepo: procedureRepo,
		clientRepo:    clientRepo,
	}
}

// ItemSelection is one requested line: a price-list entry and a quantity.
type ItemSelection struct {
	ProcedureID uuid.UUID
	Quantity    int
}

// CreateReceiptInput represents the create receipt input
type CreateReceiptInput struct {
	ClientID *uuid.UUID
	Items    []ItemSelection
}

// CreateReceipt validates the selections, freezes the current unit price of
// every chosen procedure into the line items and persists the receipt with a
// sequential day-scoped number. Nothing is persisted when validation fails.
func (s *ReceiptService) CreateReceipt(ctx context.Context, input *CreateReceiptInput) (*entity.Receipt, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("A receipt needs at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, apperror.NewBadRequestError("Item quantity must be at least 1")
		}
	}

	if input.ClientID != nil {
		client, err := s.clientRepo.GetByID(ctx, *input.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, apperror.NewNotFoundError("Client")
		}
	}

	ids := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		ids = append(ids, item.ProcedureID)
	}
	procedures, err := s.procedureRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*entity.Procedure, len(procedures))
	for i := range procedures {
		byID[procedures[i].ID] = &procedures[i]
	}

	var total int64
	items := make([]entity.ReceiptItem, 0, len(input.Items))
	for _, sel := range input.Items {
		procedure, ok := byID[sel.ProcedureID]
		if !ok {
			return nil, apperror.NewNotFoundError("Procedure")
		}
		items = append(items, entity.ReceiptItem{
			ProcedureID:    procedure.ID,
			Quantity:       sel.Quantity,
			UnitPriceCents: procedure.PriceCents,
		})
		total += procedure.PriceCents * int64(sel.Quantity)
	}

	receipt := &entity.Receipt{
		ClientID:   input.ClientID,
		Date:       dateOnly(time.Now()),
		TotalCents: total,
	}
	if err := s.receiptRepo.CreateWithItems(ctx, receipt, items); err != nil {
		return nil, err
	}

	return s.GetReceipt(ctx, receipt.ID)
}

// GetReceipt retrieves a receipt with its line items and client
func (s *ReceiptService) GetReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return receipt, nil
}

// ListReceiptsInRange returns receipts within the inclusive date range,
// optionally restricted to one client.
func (s *ReceiptService) ListReceiptsInRange(ctx context.Context, start, end time.Time, clientID *uuid.UUID) ([]entity.Receipt, error) {
	return s.receiptRepo.ListInRange(ctx, dateOnly(start), dateOnly(end), clientID)
}
