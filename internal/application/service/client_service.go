package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pveldman/studioadmin/internal/domain/entity"
	"github.com/pveldman/studioadmin/internal/domain/repository"
	"github.com/pveldman/studioadmin/pkg/apperror"
)

// ClientService handles client-related operations
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// CreateClientInput represents the create client input
type CreateClientInput struct {
	Name     string
	Email    *string
	Phone    *string
	Language string
	Notes    *string
}

// CreateClient creates a new client
func (s *ClientService) CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error) {
	language := input.Language
	if language == "" {
		language = DefaultLanguage
	}

	client := &entity.Client{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Language: language,
		Notes:    input.Notes,
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// ListClients lists all clients ordered by name
func (s *ClientService) ListClients(ctx context.Context) ([]entity.Client, error) {
	return s.clientRepo.List(ctx)
}

// UpdateClientInput represents the update client input
type UpdateClientInput struct {
	ID       uuid.UUID
	Name     *string
	Email    *string
	Phone    *string
	Language *string
	Notes    *string
}

// UpdateClient updates a client. Updating an unknown id is a no-op.
func (s *ClientService) UpdateClient(ctx context.Context, input *UpdateClientInput) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Email != nil {
		client.Email = input.Email
	}
	if input.Phone != nil {
		client.Phone = input.Phone
	}
	if input.Language != nil {
		client.Language = *input.Language
	}
	if input.Notes != nil {
		client.Notes = input.Notes
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient deletes a client. Receipts and appointments that reference the
// client keep existing with the reference nulled out. Deleting an unknown id
// is a no-op.
func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	return s.clientRepo.Delete(ctx, id)
}
