package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pveldman/studioadmin/internal/domain/entity"
	domainRepo "github.com/pveldman/studioadmin/internal/domain/repository"
	"gorm.io/gorm"
)

type procedureRepository struct {
	db *gorm.DB
}

// NewProcedureRepository creates a new procedure repository
func NewProcedureRepository(db *gorm.DB) domainRepo.ProcedureRepository {
	return &procedureRepository{db: db}
}

func (r *procedureRepository) Create(ctx context.Context, procedure *entity.Procedure) error {
	return r.db.WithContext(ctx).Create(procedure).Error
}

func (r *procedureRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Procedure, error) {
	var procedure entity.Procedure
	err := r.db.WithContext(ctx).First(&procedure, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &procedure, nil
}

func (r *procedureRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Procedure, error) {
	var procedures []entity.Procedure
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&procedures).Error
	return procedures, err
}

func (r *procedureRepository) List(ctx context.Context) ([]entity.Procedure, error) {
	var procedures []entity.Procedure
	err := r.db.WithContext(ctx).Order("name ASC").Find(&procedures).Error
	return procedures, err
}

func (r *procedureRepository) Update(ctx context.Context, procedure *entity.Procedure) error {
	return r.db.WithContext(ctx).Save(procedure).Error
}

func (r *procedureRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Procedure{}, "id = ?", id).Error
}

func (r *procedureRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Procedure{}).Count(&count).Error
	return count, err
}
