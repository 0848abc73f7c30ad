package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pveldman/studioadmin/internal/domain/entity"
	"github.com/pveldman/studioadmin/internal/domain/repository"
	"github.com/pveldman/studioadmin/pkg/apperror"
)

// AppointmentService handles calendar bookings. Appointments never create
// receipts; the two are independent.
type AppointmentService struct {
	appointmentRepo repository.AppointmentRepository
	clientRepo      repository.ClientRepository
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	clientRepo repository.ClientRepository,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
	}
}

// CreateAppointmentInput represents the create appointment input
type CreateAppointmentInput struct {
	ClientID    *uuid.UUID
	Date        time.Time
	Time        string // HH:MM
	DurationMin int
	Notes       *string
}

// CreateAppointment books an appointment
func (s *AppointmentService) CreateAppointment(ctx context.Context, input *CreateAppointmentInput) (*entity.Appointment, error) {
	if _, err := time.Parse("15:04", input.Time); err != nil {
		return nil, apperror.NewBadRequestError("Time must be in HH:MM format")
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

	duration := input.DurationMin
	if duration <= 0 {
		duration = 30
	}

	appointment := &entity.Appointment{
		ClientID:    input.ClientID,
		Date:        dateOnly(input.Date),
		Time:        input.Time,
		DurationMin: duration,
		Notes:       input.Notes,
	}
	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// ListAppointmentsInRange returns appointments within the inclusive date
// range, ordered by date and time, with the client name joined for display.
func (s *AppointmentService) ListAppointmentsInRange(ctx context.Context, start, end time.Time) ([]entity.Appointment, error) {
	return s.appointmentRepo.ListInRange(ctx, dateOnly(start), dateOnly(end))
}

// DeleteAppointment deletes an appointment. Deleting an unknown id is a no-op.
func (s *AppointmentService) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	return s.appointmentRepo.Delete(ctx, id)
}
