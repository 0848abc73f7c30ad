package service

import (
	"context"
	"time"

	"github.com/pveldman/studioadmin/internal/domain/repository"
	"github.com/pveldman/studioadmin/pkg/money"
)

// DashboardService aggregates the headline numbers for the landing screen.
type DashboardService struct {
	receiptRepo     repository.ReceiptRepository
	clientRepo      repository.ClientRepository
	procedureRepo   repository.ProcedureRepository
	appointmentRepo repository.AppointmentRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	receiptRepo repository.ReceiptRepository,
	clientRepo repository.ClientRepository,
	procedureRepo repository.ProcedureRepository,
	appointmentRepo repository.AppointmentRepository,
) *DashboardService {
	return &DashboardService{
		receiptRepo:     receiptRepo,
		clientRepo:      clientRepo,
		procedureRepo:   procedureRepo,
		appointmentRepo: appointmentRepo,
	}
}

// DashboardStats holds tax-inclusive revenue per period plus entity counts.
type DashboardStats struct {
	RevenueDay        float64 `json:"revenue_day"`
	RevenueWeek       float64 `json:"revenue_week"`
	RevenueMonth      float64 `json:"revenue_month"`
	RevenueYear       float64 `json:"revenue_year"`
	TotalClients      int64   `json:"total_clients"`
	TotalProcedures   int64   `json:"total_procedures"`
	AppointmentsToday int64   `json:"appointments_today"`
}

// GetStats computes the dashboard figures relative to today.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	today := dateOnly(time.Now())
	stats := &DashboardStats{}

	for _, p := range []struct {
		period string
		target *float64
	}{
		{"day", &stats.RevenueDay},
		{"week", &stats.RevenueWeek},
		{"month", &stats.RevenueMonth},
		{"year", &stats.RevenueYear},
	} {
		start, end, err := PeriodRange(p.period, today)
		if err != nil {
			return nil, err
		}
		cents, err := s.receiptRepo.SumTotalInRange(ctx, start, end)
		if err != nil {
			return nil, err
		}
		*p.target = money.FromCents(cents)
	}

	var err error
	if stats.TotalClients, err = s.clientRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalProcedures, err = s.procedureRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.AppointmentsToday, err = s.appointmentRepo.CountInRange(ctx, today, today); err != nil {
		return nil, err
	}
	return stats, nil
}
