package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"equipment-assignment-backend/internal/database/models"
	apperrors "equipment-assignment-backend/internal/errors"
	"equipment-assignment-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// dateLayout is the wire format for calendar dates
const dateLayout = "2006-01-02"

// LedgerService handles the request-fulfillment state machine: requests move
// from PENDING through PARTIAL to COMPLETED as fulfillment records accumulate.
type LedgerService struct {
	requests   repository.RequestRepositoryInterface
	records    repository.FulfillmentRecordRepositoryInterface
	assets     repository.AssetRepositoryInterface
	units      repository.OperativeUnitRepositoryInterface
	categories repository.CategoryRepositoryInterface
	validator  *validator.Validate
}

// Ensure LedgerService implements LedgerServiceInterface
var _ LedgerServiceInterface = (*LedgerService)(nil)

// NewLedgerService creates a new ledger service
func NewLedgerService(
	requests repository.RequestRepositoryInterface,
	records repository.FulfillmentRecordRepositoryInterface,
	assets repository.AssetRepositoryInterface,
	units repository.OperativeUnitRepositoryInterface,
	categories repository.CategoryRepositoryInterface,
	validator *validator.Validate,
) *LedgerService {
	return &LedgerService{
		requests:   requests,
		records:    records,
		assets:     assets,
		units:      units,
		categories: categories,
		validator:  validator,
	}
}

// CreateRequestRequest represents the request to create an equipment request
type CreateRequestRequest struct {
	RequestDate     string    `json:"request_date" validate:"required"`
	OperativeUnitID uuid.UUID `json:"operative_unit_id" validate:"required"`
	CategoryID      uuid.UUID `json:"category_id" validate:"required"`
	Description     string    `json:"description" validate:"required,max=300"`
	Capacity        string    `json:"capacity" validate:"max=200"`
	Quantity        int       `json:"quantity" validate:"required,min=1"`
	NeedDate        string    `json:"need_date" validate:"required"`
	Comments        string    `json:"comments"`
}

// NewAssetPayload describes an asset registered on the fly during an owned assignment
type NewAssetPayload struct {
	InternalID string          `json:"internal_id" validate:"required,max=50"`
	Brand      string          `json:"brand" validate:"required,max=100"`
	Model      string          `json:"model" validate:"required,max=100"`
	UsageHours decimal.Decimal `json:"usage_hours"`
}

// OwnedAssignmentItem assigns one owned asset, referenced by id or registered inline
type OwnedAssignmentItem struct {
	AssetID          *uuid.UUID       `json:"asset_id,omitempty"`
	NewAsset         *NewAssetPayload `json:"new_asset,omitempty"`
	AvailabilityDate string           `json:"availability_date"`
}

// AssignOwnedRequest represents the request to assign owned assets
type AssignOwnedRequest struct {
	Items []OwnedAssignmentItem `json:"items" validate:"required,min=1,dive"`
}

// AssignRentalRequest represents the request to arrange rentals, one unit per entry
type AssignRentalRequest struct {
	DurationsMonths []int `json:"durations_months" validate:"required,min=1"`
}

// AssignPurchaseRequest represents the request to open a purchase for the remainder
type AssignPurchaseRequest struct {
	Vendor       string `json:"vendor" validate:"max=200"`
	DeliveryDate string `json:"delivery_date"`
}

// EditRowRequest carries partial updates for a dashboard row. Shared fields
// always land on the owning request; channel fields apply only when the row
// is a fulfillment record of the matching channel.
type EditRowRequest struct {
	RequestDate     *string    `json:"request_date,omitempty"`
	OperativeUnitID *uuid.UUID `json:"operative_unit_id,omitempty"`
	CategoryID      *uuid.UUID `json:"category_id,omitempty"`
	Description     *string    `json:"description,omitempty" validate:"omitempty,max=300"`
	Capacity        *string    `json:"capacity,omitempty" validate:"omitempty,max=200"`
	Quantity        *int       `json:"quantity,omitempty" validate:"omitempty,min=1"`
	NeedDate        *string    `json:"need_date,omitempty"`
	Comments        *string    `json:"comments,omitempty"`

	AvailabilityDate *string `json:"availability_date,omitempty"`
	RentalMonths     *int    `json:"rental_months,omitempty" validate:"omitempty,min=1"`
	Vendor           *string `json:"vendor,omitempty" validate:"omitempty,max=200"`
	DeliveryDate     *string `json:"delivery_date,omitempty"`
}

// FulfillmentRecordResponse represents a fulfillment record in API responses
type FulfillmentRecordResponse struct {
	ID               uuid.UUID                 `json:"id"`
	RequestID        uuid.UUID                 `json:"request_id"`
	Channel          models.FulfillmentChannel `json:"channel"`
	Quantity         int                       `json:"quantity"`
	ManagedAt        string                    `json:"managed_at"`
	AssetID          *uuid.UUID                `json:"asset_id,omitempty"`
	AssetInternalID  string                    `json:"asset_internal_id,omitempty"`
	AssetBrand       string                    `json:"asset_brand,omitempty"`
	AssetModel       string                    `json:"asset_model,omitempty"`
	AvailabilityDate string                    `json:"availability_date,omitempty"`
	RentalMonths     *int                      `json:"rental_months,omitempty"`
	Vendor           string                    `json:"vendor,omitempty"`
	DeliveryDate     string                    `json:"delivery_date,omitempty"`
}

// RequestResponse represents an equipment request in API responses
type RequestResponse struct {
	ID              uuid.UUID                   `json:"id"`
	RequestDate     string                      `json:"request_date"`
	OperativeUnitID uuid.UUID                   `json:"operative_unit_id"`
	OperativeUnit   string                      `json:"operative_unit"`
	CategoryID      uuid.UUID                   `json:"category_id"`
	Category        string                      `json:"category"`
	Description     string                      `json:"description"`
	Capacity        string                      `json:"capacity,omitempty"`
	Quantity        int                         `json:"quantity"`
	NeedDate        string                      `json:"need_date"`
	Comments        string                      `json:"comments,omitempty"`
	Status          models.RequestStatus        `json:"status"`
	Fulfilled       int                         `json:"fulfilled"`
	Remaining       int                         `json:"remaining"`
	Records         []FulfillmentRecordResponse `json:"records"`
}

// RowStatus is the effective status of a flattened dashboard row
type RowStatus string

// Row statuses: PENDING for unfulfilled remainders, the channel name for
// records of an in-progress request, COMPLETED once the request is closed.
const (
	RowStatusPending   RowStatus = "PENDING"
	RowStatusOwned     RowStatus = "OWNED"
	RowStatusRental    RowStatus = "RENTAL"
	RowStatusPurchase  RowStatus = "PURCHASE"
	RowStatusCompleted RowStatus = "COMPLETED"
)

// IsValid checks if the row status value is valid
func (s RowStatus) IsValid() bool {
	switch s {
	case RowStatusPending, RowStatusOwned, RowStatusRental, RowStatusPurchase, RowStatusCompleted:
		return true
	}
	return false
}

// RequestRow is one flattened dashboard row: either a fulfillment record or
// the synthetic pending remainder of a request.
type RequestRow struct {
	RowID            uuid.UUID            `json:"row_id"`
	RequestID        uuid.UUID            `json:"request_id"`
	RecordID         *uuid.UUID           `json:"record_id,omitempty"`
	Status           RowStatus            `json:"status"`
	RequestStatus    models.RequestStatus `json:"request_status"`
	RequestDate      string               `json:"request_date"`
	OperativeUnitID  uuid.UUID            `json:"operative_unit_id"`
	OperativeUnit    string               `json:"operative_unit"`
	CategoryID       uuid.UUID            `json:"category_id"`
	Category         string               `json:"category"`
	Description      string               `json:"description"`
	Capacity         string               `json:"capacity,omitempty"`
	Quantity         int                  `json:"quantity"`
	TotalQuantity    int                  `json:"total_quantity"`
	NeedDate         string               `json:"need_date"`
	Comments         string               `json:"comments,omitempty"`
	ManagedAt        string               `json:"managed_at,omitempty"`
	AssetInternalID  string               `json:"asset_internal_id,omitempty"`
	AssetBrand       string               `json:"asset_brand,omitempty"`
	AssetModel       string               `json:"asset_model,omitempty"`
	AvailabilityDate string               `json:"availability_date,omitempty"`
	RentalMonths     *int                 `json:"rental_months,omitempty"`
	Vendor           string               `json:"vendor,omitempty"`
	DeliveryDate     string               `json:"delivery_date,omitempty"`
}

// ListRowsFilters narrows the flattened view
type ListRowsFilters struct {
	Search          string
	OperativeUnitID *uuid.UUID
	CategoryID      *uuid.UUID
	Status          *RowStatus
}

// RequestRowListResponse represents the flattened dashboard view
type RequestRowListResponse struct {
	Rows  []RequestRow `json:"rows"`
	Total int          `json:"total"`
}

// CreateRequest creates a new PENDING equipment request
func (s *LedgerService) CreateRequest(req *CreateRequestRequest) (*RequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	requestDate, err := parseDate("request_date", req.RequestDate)
	if err != nil {
		return nil, err
	}
	needDate, err := parseDate("need_date", req.NeedDate)
	if err != nil {
		return nil, err
	}

	// Lookups must exist
	if _, err := s.units.GetByID(req.OperativeUnitID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOperativeUnitNotFound
		}
		return nil, fmt.Errorf("failed to check operative unit: %w", err)
	}
	if _, err := s.categories.GetByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to check category: %w", err)
	}

	request := &models.Request{
		RequestDate:     requestDate,
		OperativeUnitID: req.OperativeUnitID,
		CategoryID:      req.CategoryID,
		Description:     req.Description,
		Capacity:        req.Capacity,
		Quantity:        req.Quantity,
		NeedDate:        needDate,
		Comments:        req.Comments,
		Status:          models.RequestStatusPending,
	}

	if err := s.requests.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return s.GetRequest(request.ID)
}

// GetRequest retrieves a request with its fulfillment records
func (s *LedgerService) GetRequest(id uuid.UUID) (*RequestResponse, error) {
	request, err := s.requests.GetWithRecords(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	return s.toRequestResponse(request), nil
}

// AssignOwned assigns owned assets to a request, one unit per item. The
// records and the resulting status land in a single transaction.
func (s *LedgerService) AssignOwned(requestID uuid.UUID, req *AssignOwnedRequest) (*RequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if len(req.Items) == 0 {
		return nil, apperrors.ErrNothingToAssign
	}

	request, err := s.requests.GetWithRecords(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}

	remaining := request.RemainingQuantity()
	if len(req.Items) > remaining {
		return nil, apperrors.ErrAssignmentExceedsTotal
	}

	now := time.Now()
	records := make([]models.FulfillmentRecord, 0, len(req.Items))
	for _, item := range req.Items {
		if item.AvailabilityDate == "" {
			return nil, apperrors.ErrAvailabilityDateNeeded
		}
		availability, err := parseDate("availability_date", item.AvailabilityDate)
		if err != nil {
			return nil, err
		}

		asset, err := s.resolveAsset(&item)
		if err != nil {
			return nil, err
		}

		records = append(records, models.FulfillmentRecord{
			RequestID:        requestID,
			Channel:          models.ChannelOwned,
			Quantity:         1,
			ManagedAt:        now,
			AssetID:          &asset.ID,
			AvailabilityDate: &availability,
		})
	}

	status := models.RequestStatusPartial
	if request.FulfilledQuantity()+len(records) >= request.Quantity {
		status = models.RequestStatusCompleted
	}

	if err := s.records.CreateBatchWithStatus(records, requestID, status); err != nil {
		return nil, fmt.Errorf("failed to assign owned assets: %w", err)
	}

	return s.GetRequest(requestID)
}

// AssignRental arranges rentals for a request, one unit per duration entry
func (s *LedgerService) AssignRental(requestID uuid.UUID, req *AssignRentalRequest) (*RequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if len(req.DurationsMonths) == 0 {
		return nil, apperrors.ErrNothingToAssign
	}

	request, err := s.requests.GetWithRecords(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}

	remaining := request.RemainingQuantity()
	if len(req.DurationsMonths) > remaining {
		return nil, apperrors.ErrAssignmentExceedsTotal
	}

	now := time.Now()
	records := make([]models.FulfillmentRecord, 0, len(req.DurationsMonths))
	for _, months := range req.DurationsMonths {
		if months <= 0 {
			return nil, apperrors.ErrInvalidRentalDuration
		}
		m := months
		records = append(records, models.FulfillmentRecord{
			RequestID:    requestID,
			Channel:      models.ChannelRental,
			Quantity:     1,
			ManagedAt:    now,
			RentalMonths: &m,
		})
	}

	status := models.RequestStatusPartial
	if request.FulfilledQuantity()+len(records) >= request.Quantity {
		status = models.RequestStatusCompleted
	}

	if err := s.records.CreateBatchWithStatus(records, requestID, status); err != nil {
		return nil, fmt.Errorf("failed to arrange rentals: %w", err)
	}

	return s.GetRequest(requestID)
}

// AssignPurchase opens a purchase covering the entire unfulfilled remainder.
// A purchase never auto-completes the request: the status stays PARTIAL until
// the goods arrive and the office marks it completed. No-op when nothing
// remains to cover.
func (s *LedgerService) AssignPurchase(requestID uuid.UUID, req *AssignPurchaseRequest) (*RequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	request, err := s.requests.GetWithRecords(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}

	remaining := request.RemainingQuantity()
	if remaining == 0 {
		return s.toRequestResponse(request), nil
	}

	record := models.FulfillmentRecord{
		RequestID: requestID,
		Channel:   models.ChannelPurchase,
		Quantity:  remaining,
		ManagedAt: time.Now(),
	}
	if req.Vendor != "" {
		vendor := req.Vendor
		record.Vendor = &vendor
	}
	if req.DeliveryDate != "" {
		delivery, err := parseDate("delivery_date", req.DeliveryDate)
		if err != nil {
			return nil, err
		}
		record.DeliveryDate = &delivery
	}

	if err := s.records.CreateBatchWithStatus([]models.FulfillmentRecord{record}, requestID, models.RequestStatusPartial); err != nil {
		return nil, fmt.Errorf("failed to open purchase: %w", err)
	}

	return s.GetRequest(requestID)
}

// EditRow applies partial updates to a dashboard row. Shared fields always
// update the owning request; channel fields update the record itself. The
// aggregate status is never recomputed here. Editing a vanished row is a
// silent no-op.
func (s *LedgerService) EditRow(rowID uuid.UUID, req *EditRowRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	requestUpdates, err := s.buildRequestUpdates(req)
	if err != nil {
		return err
	}

	record, err := s.records.GetByID(rowID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to resolve row: %w", err)
	}

	if record != nil {
		if len(requestUpdates) > 0 {
			if err := s.requests.Update(record.RequestID, requestUpdates); err != nil {
				return fmt.Errorf("failed to update request: %w", err)
			}
		}
		recordUpdates, err := s.buildRecordUpdates(record, req)
		if err != nil {
			return err
		}
		if len(recordUpdates) > 0 {
			if err := s.records.Update(record.ID, recordUpdates); err != nil {
				return fmt.Errorf("failed to update fulfillment record: %w", err)
			}
		}
		return nil
	}

	// Not a record row: the id names the request itself
	if _, err := s.requests.GetByID(rowID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to resolve row: %w", err)
	}
	if len(requestUpdates) > 0 {
		if err := s.requests.Update(rowID, requestUpdates); err != nil {
			return fmt.Errorf("failed to update request: %w", err)
		}
	}
	return nil
}

// DeleteRow removes a dashboard row. A record row deletes only the record and
// leaves the request status untouched; a request row deletes the request only
// while no records exist. Deleting a vanished row is a silent no-op.
func (s *LedgerService) DeleteRow(rowID uuid.UUID) error {
	record, err := s.records.GetByID(rowID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to resolve row: %w", err)
	}
	if record != nil {
		if err := s.records.Delete(record.ID); err != nil {
			return fmt.Errorf("failed to delete fulfillment record: %w", err)
		}
		return nil
	}

	if _, err := s.requests.GetByID(rowID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to resolve row: %w", err)
	}

	count, err := s.requests.CountRecords(rowID)
	if err != nil {
		return fmt.Errorf("failed to count fulfillment records: %w", err)
	}
	if count > 0 {
		return apperrors.ErrRequestHasRecords
	}

	if err := s.requests.Delete(rowID); err != nil {
		return fmt.Errorf("failed to delete request: %w", err)
	}
	return nil
}

// MarkCompleted closes a request regardless of its fulfilled quantity.
// Idempotent; a vanished request is a silent no-op.
func (s *LedgerService) MarkCompleted(requestID uuid.UUID) error {
	if _, err := s.requests.GetByID(requestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get request: %w", err)
	}
	if err := s.requests.UpdateStatus(requestID, models.RequestStatusCompleted); err != nil {
		return fmt.Errorf("failed to mark request completed: %w", err)
	}
	return nil
}

// RevertCompleted reopens a completed request as PARTIAL. The fulfillment
// records stay untouched. Idempotent; a vanished request is a silent no-op.
func (s *LedgerService) RevertCompleted(requestID uuid.UUID) error {
	if _, err := s.requests.GetByID(requestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get request: %w", err)
	}
	if err := s.requests.UpdateStatus(requestID, models.RequestStatusPartial); err != nil {
		return fmt.Errorf("failed to revert request: %w", err)
	}
	return nil
}

// ListRows returns the flattened dashboard view: one row per fulfillment
// record plus a synthetic PENDING row for each unfulfilled remainder.
func (s *LedgerService) ListRows(filters ListRowsFilters) (*RequestRowListResponse, error) {
	requests, err := s.requests.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	rows := make([]RequestRow, 0, len(requests))
	for i := range requests {
		rows = append(rows, s.flattenRequest(&requests[i])...)
	}

	filtered := make([]RequestRow, 0, len(rows))
	for _, row := range rows {
		if !matchesFilters(&row, &filters) {
			continue
		}
		filtered = append(filtered, row)
	}

	return &RequestRowListResponse{Rows: filtered, Total: len(filtered)}, nil
}

// flattenRequest expands one request into its dashboard rows
func (s *LedgerService) flattenRequest(request *models.Request) []RequestRow {
	base := RequestRow{
		RequestID:       request.ID,
		RequestStatus:   request.Status,
		RequestDate:     request.RequestDate.Format(dateLayout),
		OperativeUnitID: request.OperativeUnitID,
		OperativeUnit:   request.OperativeUnit.Name,
		CategoryID:      request.CategoryID,
		Category:        request.Category.Name,
		Description:     request.Description,
		Capacity:        request.Capacity,
		TotalQuantity:   request.Quantity,
		NeedDate:        request.NeedDate.Format(dateLayout),
		Comments:        request.Comments,
	}

	completed := request.Status == models.RequestStatusCompleted
	rows := make([]RequestRow, 0, len(request.FulfillmentRecords)+1)

	for i := range request.FulfillmentRecords {
		record := &request.FulfillmentRecords[i]
		row := base
		row.RowID = record.ID
		recordID := record.ID
		row.RecordID = &recordID
		row.Quantity = record.Quantity
		row.ManagedAt = record.ManagedAt.Format(time.RFC3339)
		if completed {
			row.Status = RowStatusCompleted
		} else {
			row.Status = RowStatus(record.Channel)
		}
		if record.Asset != nil {
			row.AssetInternalID = record.Asset.InternalID
			row.AssetBrand = record.Asset.Brand
			row.AssetModel = record.Asset.Model
		}
		if record.AvailabilityDate != nil {
			row.AvailabilityDate = record.AvailabilityDate.Format(dateLayout)
		}
		row.RentalMonths = record.RentalMonths
		if record.Vendor != nil {
			row.Vendor = *record.Vendor
		}
		if record.DeliveryDate != nil {
			row.DeliveryDate = record.DeliveryDate.Format(dateLayout)
		}
		rows = append(rows, row)
	}

	remaining := request.RemainingQuantity()
	if !completed && remaining > 0 {
		row := base
		row.RowID = request.ID
		row.Status = RowStatusPending
		row.Quantity = remaining
		rows = append(rows, row)
	} else if len(request.FulfillmentRecords) == 0 {
		// Closed or over-consumed request with no records still shows one row
		row := base
		row.RowID = request.ID
		row.Quantity = request.Quantity
		if completed {
			row.Status = RowStatusCompleted
		} else {
			row.Status = RowStatusPending
		}
		rows = append(rows, row)
	}

	return rows
}

// matchesFilters reports whether a row passes the view filters
func matchesFilters(row *RequestRow, filters *ListRowsFilters) bool {
	if filters.OperativeUnitID != nil && row.OperativeUnitID != *filters.OperativeUnitID {
		return false
	}
	if filters.CategoryID != nil && row.CategoryID != *filters.CategoryID {
		return false
	}
	if filters.Status != nil && row.Status != *filters.Status {
		return false
	}
	if filters.Search != "" {
		query := strings.ToLower(filters.Search)
		haystack := strings.ToLower(strings.Join([]string{
			row.Description,
			row.Capacity,
			row.Comments,
			row.OperativeUnit,
			row.Category,
			row.AssetInternalID,
			row.AssetBrand,
			row.AssetModel,
			row.Vendor,
		}, " "))
		if !strings.Contains(haystack, query) {
			return false
		}
	}
	return true
}

// resolveAsset returns the asset referenced by an owned assignment item,
// registering a new asset when an inline payload is given. An inline payload
// whose internal id already exists reuses the existing asset.
func (s *LedgerService) resolveAsset(item *OwnedAssignmentItem) (*models.Asset, error) {
	if item.AssetID != nil {
		asset, err := s.assets.GetByID(*item.AssetID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrAssetNotFound
			}
			return nil, fmt.Errorf("failed to get asset: %w", err)
		}
		return asset, nil
	}

	if item.NewAsset == nil {
		return nil, apperrors.NewValidationError("items", "each item needs an asset_id or a new_asset payload")
	}
	if err := s.validator.Struct(item.NewAsset); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	internalID := strings.ToUpper(strings.TrimSpace(item.NewAsset.InternalID))
	existing, err := s.assets.GetByInternalID(internalID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing asset: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	asset := &models.Asset{
		InternalID: internalID,
		Brand:      item.NewAsset.Brand,
		Model:      item.NewAsset.Model,
		UsageHours: item.NewAsset.UsageHours,
	}
	if err := s.assets.Create(asset); err != nil {
		return nil, fmt.Errorf("failed to register asset: %w", err)
	}
	return asset, nil
}

// buildRequestUpdates collects the shared request fields of an edit
func (s *LedgerService) buildRequestUpdates(req *EditRowRequest) (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if req.RequestDate != nil {
		date, err := parseDate("request_date", *req.RequestDate)
		if err != nil {
			return nil, err
		}
		updates["request_date"] = date
	}
	if req.OperativeUnitID != nil {
		updates["operative_unit_id"] = *req.OperativeUnitID
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.NeedDate != nil {
		date, err := parseDate("need_date", *req.NeedDate)
		if err != nil {
			return nil, err
		}
		updates["need_date"] = date
	}
	if req.Comments != nil {
		updates["comments"] = *req.Comments
	}
	return updates, nil
}

// buildRecordUpdates collects the channel fields of an edit that apply to the record
func (s *LedgerService) buildRecordUpdates(record *models.FulfillmentRecord, req *EditRowRequest) (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	switch record.Channel {
	case models.ChannelOwned:
		if req.AvailabilityDate != nil {
			date, err := parseDate("availability_date", *req.AvailabilityDate)
			if err != nil {
				return nil, err
			}
			updates["availability_date"] = date
		}
	case models.ChannelRental:
		if req.RentalMonths != nil {
			updates["rental_months"] = *req.RentalMonths
		}
	case models.ChannelPurchase:
		if req.Vendor != nil {
			updates["vendor"] = *req.Vendor
		}
		if req.DeliveryDate != nil {
			date, err := parseDate("delivery_date", *req.DeliveryDate)
			if err != nil {
				return nil, err
			}
			updates["delivery_date"] = date
		}
	}
	return updates, nil
}

// toRequestResponse converts a Request model with loaded relations to an API response
func (s *LedgerService) toRequestResponse(request *models.Request) *RequestResponse {
	records := make([]FulfillmentRecordResponse, len(request.FulfillmentRecords))
	for i := range request.FulfillmentRecords {
		record := &request.FulfillmentRecords[i]
		resp := FulfillmentRecordResponse{
			ID:           record.ID,
			RequestID:    record.RequestID,
			Channel:      record.Channel,
			Quantity:     record.Quantity,
			ManagedAt:    record.ManagedAt.Format(time.RFC3339),
			AssetID:      record.AssetID,
			RentalMonths: record.RentalMonths,
		}
		if record.Asset != nil {
			resp.AssetInternalID = record.Asset.InternalID
			resp.AssetBrand = record.Asset.Brand
			resp.AssetModel = record.Asset.Model
		}
		if record.AvailabilityDate != nil {
			resp.AvailabilityDate = record.AvailabilityDate.Format(dateLayout)
		}
		if record.Vendor != nil {
			resp.Vendor = *record.Vendor
		}
		if record.DeliveryDate != nil {
			resp.DeliveryDate = record.DeliveryDate.Format(dateLayout)
		}
		records[i] = resp
	}

	return &RequestResponse{
		ID:              request.ID,
		RequestDate:     request.RequestDate.Format(dateLayout),
		OperativeUnitID: request.OperativeUnitID,
		OperativeUnit:   request.OperativeUnit.Name,
		CategoryID:      request.CategoryID,
		Category:        request.Category.Name,
		Description:     request.Description,
		Capacity:        request.Capacity,
		Quantity:        request.Quantity,
		NeedDate:        request.NeedDate.Format(dateLayout),
		Comments:        request.Comments,
		Status:          request.Status,
		Fulfilled:       request.FulfilledQuantity(),
		Remaining:       request.RemainingQuantity(),
		Records:         records,
	}
}

// parseDate parses a YYYY-MM-DD wire date
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}
