package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pveldman/studioadmin/internal/domain/entity"
)

// ProcedureRepository defines the interface for price-list data access
type ProcedureRepository interface {
	Create(ctx context.Context, procedure *entity.Procedure) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Procedure, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Procedure, error)
	// List returns all procedures ordered by name ascending.
	List(ctx context.Context) ([]entity.Procedure, error)
	Update(ctx context.Context, procedure *entity.Procedure) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
