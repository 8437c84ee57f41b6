package models

import (
	"time"

	"github.com/google/uuid"
)

// FulfillmentRecord represents one committed resolution of part of a request's
// quantity through a single channel. Channel-specific fields are nil for the
// channels that do not use them; the accessor methods expose them as a tagged
// variant per channel.
type FulfillmentRecord struct {
	BaseModel
	RequestID uuid.UUID          `json:"request_id" gorm:"type:uuid;not null;index" validate:"required"`
	Channel   FulfillmentChannel `json:"channel" gorm:"type:varchar(20);not null" validate:"required"`
	Quantity  int                `json:"quantity" gorm:"not null" validate:"required,min=1"`
	ManagedAt time.Time          `json:"managed_at" gorm:"not null"`

	// OWNED channel payload
	AssetID          *uuid.UUID `json:"asset_id,omitempty" gorm:"type:uuid;index"`
	AvailabilityDate *time.Time `json:"availability_date,omitempty"`

	// RENTAL channel payload
	RentalMonths *int `json:"rental_months,omitempty"`

	// PURCHASE channel payload
	Vendor       *string    `json:"vendor,omitempty" gorm:"size:200"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`

	// Relationships
	Request Request `json:"request,omitempty" gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`
	Asset   *Asset  `json:"asset,omitempty" gorm:"foreignKey:AssetID"`
}

// TableName returns the table name for FulfillmentRecord
func (FulfillmentRecord) TableName() string {
	return "fulfillment_records"
}

// OwnedPayload carries the OWNED variant of a fulfillment record
type OwnedPayload struct {
	Asset            Asset     `json:"asset"`
	AvailabilityDate time.Time `json:"availability_date"`
}

// RentalPayload carries the RENTAL variant of a fulfillment record
type RentalPayload struct {
	Months int `json:"months"`
}

// PurchasePayload carries the PURCHASE variant of a fulfillment record.
// Vendor and delivery date are unset until the purchase is negotiated.
type PurchasePayload struct {
	Vendor       string     `json:"vendor,omitempty"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
}

// Owned returns the OWNED payload, or nil if the record uses another channel
// or the asset relation is not loaded.
func (f *FulfillmentRecord) Owned() *OwnedPayload {
	if f.Channel != ChannelOwned || f.Asset == nil {
		return nil
	}
	p := &OwnedPayload{Asset: *f.Asset}
	if f.AvailabilityDate != nil {
		p.AvailabilityDate = *f.AvailabilityDate
	}
	return p
}

// Rental returns the RENTAL payload, or nil for other channels
func (f *FulfillmentRecord) Rental() *RentalPayload {
	if f.Channel != ChannelRental || f.RentalMonths == nil {
		return nil
	}
	return &RentalPayload{Months: *f.RentalMonths}
}

// Purchase returns the PURCHASE payload, or nil for other channels
func (f *FulfillmentRecord) Purchase() *PurchasePayload {
	if f.Channel != ChannelPurchase {
		return nil
	}
	p := &PurchasePayload{DeliveryDate: f.DeliveryDate}
	if f.Vendor != nil {
		p.Vendor = *f.Vendor
	}
	return p
}
