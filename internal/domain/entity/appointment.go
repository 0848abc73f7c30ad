package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment represents a calendar booking. Appointments are independent of
// receipts: booking never creates a sale.
type Appointment struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ClientID    *uuid.UUID     `gorm:"type:uuid;index" json:"client_id,omitempty"`
	Date        time.Time      `gorm:"type:date;not null;index" json:"date"`
	Time        string         `gorm:"size:5;not null" json:"time"` // HH:MM
	DurationMin int            `gorm:"default:30" json:"duration_min"`
	Notes       *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	// ClientName is the joined client display name, filled at query time.
	ClientName string `gorm:"-" json:"client_name,omitempty"`
}

// BeforeCreate generates a UUID before creating a new appointment
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Appointment model
func (Appointment) TableName() string {
	return "appointments"
}
