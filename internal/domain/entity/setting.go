package entity

import "time"

// Setting is one row of the flat key-value business configuration store
// (company name, administrator, base language, VAT rate). Values are written
// immediately on change; there is no staged configuration.
type Setting struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}
