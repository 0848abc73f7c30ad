package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pveldman/studioadmin/internal/domain/entity"
	"github.com/pveldman/studioadmin/internal/domain/repository"
	"github.com/pveldman/studioadmin/pkg/apperror"
	"github.com/pveldman/studioadmin/pkg/money"
)

// ProcedureService handles price-list operations
type ProcedureService struct {
	procedureRepo repository.ProcedureRepository
}

// NewProcedureService creates a new procedure service
func NewProcedureService(procedureRepo repository.ProcedureRepository) *ProcedureService {
	return &ProcedureService{procedureRepo: procedureRepo}
}

// CreateProcedureInput represents the create procedure input. Price is the
// major-unit amount as entered by the operator (e.g. 35.00).
type CreateProcedureInput struct {
	Name  string
	Price float64
}

// CreateProcedure creates a new price-list entry
func (s *ProcedureService) CreateProcedure(ctx context.Context, input *CreateProcedureInput) (*entity.Procedure, error) {
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price must not be negative")
	}

	procedure := &entity.Procedure{
		Name:       input.Name,
		PriceCents: money.ToCents(input.Price),
	}
	if err := s.procedureRepo.Create(ctx, procedure); err != nil {
		return nil, err
	}
	return procedure, nil
}

// ListProcedures lists the price list ordered by name
func (s *ProcedureService) ListProcedures(ctx context.Context) ([]entity.Procedure, error) {
	return s.procedureRepo.List(ctx)
}

// UpdateProcedureInput represents the update procedure input
type UpdateProcedureInput struct {
	ID    uuid.UUID
	Name  *string
	Price *float64
}

// UpdateProcedure updates a price-list entry. The new price applies to future
// receipts only; historical line items keep their frozen price. Updating an
// unknown id is a no-op.
func (s *ProcedureService) UpdateProcedure(ctx context.Context, input *UpdateProcedureInput) (*entity.Procedure, error) {
	if input.Price != nil && *input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price must not be negative")
	}

	procedure, err := s.procedureRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if procedure == nil {
		return nil, nil
	}

	if input.Name != nil {
		procedure.Name = *input.Name
	}
	if input.Price != nil {
		procedure.PriceCents = money.ToCents(*input.Price)
	}

	if err := s.procedureRepo.Update(ctx, procedure); err != nil {
		return nil, err
	}
	return procedure, nil
}

// DeleteProcedure deletes a price-list entry without touching historical
// receipt line items. Deleting an unknown id is a no-op.
func (s *ProcedureService) DeleteProcedure(ctx context.Context, id uuid.UUID) error {
	return s.procedureRepo.Delete(ctx, id)
}
