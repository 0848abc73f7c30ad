package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pveldman/studioadmin/pkg/money"
	"gorm.io/gorm"
)

// Procedure represents an entry in the service price list. Its price is the
// current unit price; receipts freeze the price at time of sale, so editing or
// deleting a procedure never rewrites historical line items.
type Procedure struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name       string         `gorm:"size:255;not null;index" json:"name"`
	PriceCents int64          `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Procedure) MarshalJSON() ([]byte, error) {
	type Alias Procedure
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(p),
		Price: money.FromCents(p.PriceCents),
	})
}

// BeforeCreate generates a UUID before creating a new procedure
func (p *Procedure) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Procedure model
func (Procedure) TableName() string {
	return "procedures"
}
