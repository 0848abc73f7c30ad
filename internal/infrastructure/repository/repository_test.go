package repository

import (
	"fmt"
	"testing"

	"github.com/pveldman/studioadmin/internal/domain/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
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
	return db
}
