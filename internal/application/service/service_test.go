package service

import (
	"fmt"
	"testing"

	"github.com/pveldman/studioadmin/internal/domain/entity"
	domainRepo "github.com/pveldman/studioadmin/internal/domain/repository"
	infraRepo "github.com/pveldman/studioadmin/internal/infrastructure/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testStack bundles the repositories and services backed by one in-memory
// database for a single test.
type testStack struct {
	db           *gorm.DB
	clients      domainRepo.ClientRepository
	procedures   domainRepo.ProcedureRepository
	appointments domainRepo.AppointmentRepository
	receipts     domainRepo.ReceiptRepository
	settings     *SettingsService
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	err = db.AutoMigrate(
		&entity.Setting{},
		&entity.Client{},
		&entity.Procedure{},
		&entity.Appointment{},
		&entity.Receipt{},
		&entity.ReceiptItem{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return &testStack{
		db:           db,
		clients:      infraRepo.NewClientRepository(db),
		procedures:   infraRepo.NewProcedureRepository(db),
		appointments: infraRepo.NewAppointmentRepository(db),
		receipts:     infraRepo.NewReceiptRepository(db),
		settings:     NewSettingsService(infraRepo.NewSettingsRepository(db)),
	}
}
