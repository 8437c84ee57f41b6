package models

import (
	"time"

	"github.com/google/uuid"
)

// Request represents a need for N units of equipment raised by an operative unit
type Request struct {
	BaseModel
	RequestDate     time.Time     `json:"request_date" gorm:"not null" validate:"required"`
	OperativeUnitID uuid.UUID     `json:"operative_unit_id" gorm:"type:uuid;not null;index" validate:"required"`
	CategoryID      uuid.UUID     `json:"category_id" gorm:"type:uuid;not null;index" validate:"required"`
	Description     string        `json:"description" gorm:"not null;size:300" validate:"required,max=300"`
	Capacity        string        `json:"capacity" gorm:"size:200" validate:"max=200"`
	Quantity        int           `json:"quantity" gorm:"not null" validate:"required,min=1"`
	NeedDate        time.Time     `json:"need_date" gorm:"not null" validate:"required"`
	Comments        string        `json:"comments" gorm:"type:text"`
	Status          RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING';index"`

	// Relationships
	OperativeUnit      OperativeUnit       `json:"operative_unit,omitempty" gorm:"foreignKey:OperativeUnitID"`
	Category           Category            `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	FulfillmentRecords []FulfillmentRecord `json:"fulfillment_records,omitempty" gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Request
func (Request) TableName() string {
	return "requests"
}

// FulfilledQuantity sums the quantities covered by the loaded fulfillment records
func (r *Request) FulfilledQuantity() int {
	total := 0
	for _, rec := range r.FulfillmentRecords {
		total += rec.Quantity
	}
	return total
}

// RemainingQuantity returns the unfulfilled portion of the request, never negative
func (r *Request) RemainingQuantity() int {
	remaining := r.Quantity - r.FulfilledQuantity()
	if remaining < 0 {
		return 0
	}
	return remaining
}
