package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pveldman/studioadmin/internal/domain/entity"
)

// ClientRepository defines the interface for client data access
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	// List returns all clients ordered by name ascending.
	List(ctx context.Context) ([]entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	// Delete removes the client and nulls out the client reference on its
	// receipts and appointments in the same transaction. Deleting an unknown
	// id is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
