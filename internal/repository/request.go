package repository

import (
	"equipment-assignment-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestRepository handles database operations for equipment requests
type RequestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new request repository
func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// Create creates a new request
func (r *RequestRepository) Create(request *models.Request) error {
	return r.db.Create(request).Error
}

// GetByID retrieves a request by ID
func (r *RequestRepository) GetByID(id uuid.UUID) (*models.Request, error) {
	var request models.Request
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetWithRecords retrieves a request with its lookups and fulfillment records
func (r *RequestRepository) GetWithRecords(id uuid.UUID) (*models.Request, error) {
	var request models.Request
	err := r.db.
		Preload("OperativeUnit").
		Preload("Category").
		Preload("FulfillmentRecords", func(db *gorm.DB) *gorm.DB {
			return db.Order("fulfillment_records.managed_at ASC")
		}).
		Preload("FulfillmentRecords.Asset").
		First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetAll retrieves all requests with lookups and records, newest request date first
func (r *RequestRepository) GetAll() ([]models.Request, error) {
	var requests []models.Request
	err := r.db.
		Preload("OperativeUnit").
		Preload("Category").
		Preload("FulfillmentRecords", func(db *gorm.DB) *gorm.DB {
			return db.Order("fulfillment_records.managed_at ASC")
		}).
		Preload("FulfillmentRecords.Asset").
		Order("request_date DESC, created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// GetByStatus retrieves all requests with a given aggregate status
func (r *RequestRepository) GetByStatus(status models.RequestStatus) ([]models.Request, error) {
	var requests []models.Request
	err := r.db.
		Preload("OperativeUnit").
		Preload("Category").
		Preload("FulfillmentRecords", func(db *gorm.DB) *gorm.DB {
			return db.Order("fulfillment_records.managed_at ASC")
		}).
		Preload("FulfillmentRecords.Asset").
		Where("status = ?", status).
		Order("request_date DESC, created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// Update applies partial field updates to a request
func (r *RequestRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Request{}).Where("id = ?", id).Updates(updates).Error
}

// UpdateStatus sets the aggregate status of a request
func (r *RequestRepository) UpdateStatus(id uuid.UUID, status models.RequestStatus) error {
	return r.db.Model(&models.Request{}).Where("id = ?", id).Update("status", status).Error
}

// Delete deletes a request
func (r *RequestRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Request{}, "id = ?", id).Error
}

// CountRecords returns the number of fulfillment records attached to a request
func (r *RequestRepository) CountRecords(id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.FulfillmentRecord{}).Where("request_id = ?", id).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
