package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pveldman/studioadmin/internal/domain/entity"
	domainRepo "github.com/pveldman/studioadmin/internal/domain/repository"
	"gorm.io/gorm"
)

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) domainRepo.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var client entity.Client
	err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) List(ctx context.Context) ([]entity.Client, error) {
	var clients []entity.Client
	err := r.db.WithContext(ctx).Order("name ASC").Find(&clients).Error
	return clients, err
}

func (r *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

// Delete nulls the client reference on receipts and appointments before
// removing the client, all in one transaction. Receipts are never cascaded.
func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Receipt{}).Where("client_id = ?", id).Update("client_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&entity.Appointment{}).Where("client_id = ?", id).Update("client_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Client{}, "id = ?", id).Error
	})
}

func (r *clientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Client{}).Count(&count).Error
	return count, err
}
