package models

import (
	"github.com/shopspring/decimal"
)

// Asset is a physical owned equipment unit identified by an internal code.
// Assets exist independently of requests and may be referenced by many
// fulfillment records over time.
type Asset struct {
	BaseModel
	InternalID string          `json:"internal_id" gorm:"not null;size:50;uniqueIndex" validate:"required,max=50"`
	Brand      string          `json:"brand" gorm:"not null;size:100" validate:"required,max=100"`
	Model      string          `json:"model" gorm:"not null;size:100" validate:"required,max=100"`
	UsageHours decimal.Decimal `json:"usage_hours" gorm:"type:numeric(12,2);default:0"`
}

// TableName returns the table name for Asset
func (Asset) TableName() string {
	return "assets"
}
