package repository

import (
	"equipment-assignment-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FulfillmentRecordRepository handles database operations for fulfillment records
type FulfillmentRecordRepository struct {
	db *gorm.DB
}

// NewFulfillmentRecordRepository creates a new fulfillment record repository
func NewFulfillmentRecordRepository(db *gorm.DB) *FulfillmentRecordRepository {
	return &FulfillmentRecordRepository{db: db}
}

// Create creates a new fulfillment record
func (r *FulfillmentRecordRepository) Create(record *models.FulfillmentRecord) error {
	return r.db.Create(record).Error
}

// CreateBatchWithStatus inserts records and updates the parent request status in one transaction
func (r *FulfillmentRecordRepository) CreateBatchWithStatus(records []models.FulfillmentRecord, requestID uuid.UUID, status models.RequestStatus) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(records) > 0 {
			if err := tx.Create(&records).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Request{}).Where("id = ?", requestID).Update("status", status).Error
	})
}

// GetByID retrieves a fulfillment record by ID
func (r *FulfillmentRecordRepository) GetByID(id uuid.UUID) (*models.FulfillmentRecord, error) {
	var record models.FulfillmentRecord
	err := r.db.Preload("Asset").First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByRequestID retrieves the fulfillment records of a request in assignment order
func (r *FulfillmentRecordRepository) GetByRequestID(requestID uuid.UUID) ([]models.FulfillmentRecord, error) {
	var records []models.FulfillmentRecord
	err := r.db.
		Preload("Asset").
		Where("request_id = ?", requestID).
		Order("managed_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Update applies partial field updates to a fulfillment record
func (r *FulfillmentRecordRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.FulfillmentRecord{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a fulfillment record
func (r *FulfillmentRecordRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.FulfillmentRecord{}, "id = ?", id).Error
}

// SumQuantityByRequestID returns the total quantity already assigned to a request
func (r *FulfillmentRecordRepository) SumQuantityByRequestID(requestID uuid.UUID) (int, error) {
	var total int
	err := r.db.Model(&models.FulfillmentRecord{}).
		Where("request_id = ?", requestID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
