package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pveldman/studioadmin/pkg/money"
	"gorm.io/gorm"
)

// Receipt is an immutable record of a completed sale. Once created it is never
// updated, except for DocumentPath which is filled in after a document has been
// rendered for it. Receipts have no delete surface.
type Receipt struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Number       string     `gorm:"size:100;unique;not null" json:"number"` // YYYYMMDD-NNNN
	ClientID     *uuid.UUID `gorm:"type:uuid;index" json:"client_id,omitempty"`
	Date         time.Time  `gorm:"type:date;not null;index" json:"date"`
	TotalCents   int64      `gorm:"not null;default:0" json:"-"` // Gross, VAT-inclusive, in cents
	DocumentPath *string    `gorm:"size:512" json:"document_path,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`

	// Relationships
	Client *Client       `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Items  []ReceiptItem `gorm:"foreignKey:ReceiptID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (r Receipt) MarshalJSON() ([]byte, error) {
	type Alias Receipt
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(r),
		Total: money.FromCents(r.TotalCents),
	})
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// ReceiptItem is a line item belonging to exactly one receipt. UnitPriceCents
// is the procedure price frozen at time of sale; the display name is resolved
// from the procedure at query time.
type ReceiptItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptID      uuid.UUID `gorm:"type:uuid;not null;index" json:"receipt_id"`
	ProcedureID    uuid.UUID `gorm:"type:uuid;not null;index" json:"procedure_id"`
	Quantity       int       `gorm:"not null;default:1" json:"quantity"`
	UnitPriceCents int64     `gorm:"not null" json:"-"` // Frozen price at time of sale, in cents
	CreatedAt      time.Time `json:"created_at"`

	// Relationships
	Procedure *Procedure `gorm:"foreignKey:ProcedureID" json:"-"`

	// ProcedureName is the procedure's name at query time (empty if the
	// procedure has since been deleted).
	ProcedureName string `gorm:"-" json:"procedure_name"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (ri ReceiptItem) MarshalJSON() ([]byte, error) {
	type Alias ReceiptItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(ri),
		UnitPrice: money.FromCents(ri.UnitPriceCents),
		Total:     money.FromCents(ri.UnitPriceCents * int64(ri.Quantity)),
	})
}

// BeforeCreate generates a UUID before creating a new receipt item
func (ri *ReceiptItem) BeforeCreate(tx *gorm.DB) error {
	if ri.ID == uuid.Nil {
		ri.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReceiptItem model
func (ReceiptItem) TableName() string {
	return "receipt_items"
}
