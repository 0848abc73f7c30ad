package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pveldman/studioadmin/internal/domain/entity"
)

// AppointmentRepository defines the interface for appointment data access
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	// ListInRange returns appointments whose date lies in [start, end]
	// (inclusive bounds), client preloaded for display, ordered by date then
	// time of day.
	ListInRange(ctx context.Context, start, end time.Time) ([]entity.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountInRange(ctx context.Context, start, end time.Time) (int64, error)
}
