package models

// RequestStatus represents the aggregate lifecycle status of a request.
// PARTIAL covers every in-progress state: at least one fulfillment record
// exists and the request has not been explicitly completed.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "PENDING"
	RequestStatusPartial   RequestStatus = "PARTIAL"
	RequestStatusCompleted RequestStatus = "COMPLETED"
)

// FulfillmentChannel defines how a portion of a request is resolved
type FulfillmentChannel string

const (
	ChannelOwned    FulfillmentChannel = "OWNED"
	ChannelRental   FulfillmentChannel = "RENTAL"
	ChannelPurchase FulfillmentChannel = "PURCHASE"
)

// IsValid checks if the RequestStatus is valid
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusPartial, RequestStatusCompleted:
		return true
	}
	return false
}

// IsValid checks if the FulfillmentChannel is valid
func (c FulfillmentChannel) IsValid() bool {
	switch c {
	case ChannelOwned, ChannelRental, ChannelPurchase:
		return true
	}
	return false
}
