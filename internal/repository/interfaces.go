package repository

import (
	"equipment-assignment-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// RequestRepositoryInterface defines the interface for request repository operations
type RequestRepositoryInterface interface {
	Create(request *models.Request) error
	GetByID(id uuid.UUID) (*models.Request, error)
	GetWithRecords(id uuid.UUID) (*models.Request, error)
	GetAll() ([]models.Request, error)
	GetByStatus(status models.RequestStatus) ([]models.Request, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	UpdateStatus(id uuid.UUID, status models.RequestStatus) error
	Delete(id uuid.UUID) error
	CountRecords(id uuid.UUID) (int64, error)
}

// FulfillmentRecordRepositoryInterface defines the interface for fulfillment record repository operations
type FulfillmentRecordRepositoryInterface interface {
	Create(record *models.FulfillmentRecord) error
	CreateBatchWithStatus(records []models.FulfillmentRecord, requestID uuid.UUID, status models.RequestStatus) error
	GetByID(id uuid.UUID) (*models.FulfillmentRecord, error)
	GetByRequestID(requestID uuid.UUID) ([]models.FulfillmentRecord, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
	SumQuantityByRequestID(requestID uuid.UUID) (int, error)
}

// AssetRepositoryInterface defines the interface for asset repository operations
type AssetRepositoryInterface interface {
	Create(asset *models.Asset) error
	GetByID(id uuid.UUID) (*models.Asset, error)
	GetByInternalID(internalID string) (*models.Asset, error)
	GetAll() ([]models.Asset, error)
	Update(asset *models.Asset) error
	Delete(id uuid.UUID) error
}

// OperativeUnitRepositoryInterface defines the interface for operative unit repository operations
type OperativeUnitRepositoryInterface interface {
	Create(unit *models.OperativeUnit) error
	GetByID(id uuid.UUID) (*models.OperativeUnit, error)
	GetByName(name string) (*models.OperativeUnit, error)
	GetAll() ([]models.OperativeUnit, error)
	Update(unit *models.OperativeUnit) error
	Delete(id uuid.UUID) error
}

// CategoryRepositoryInterface defines the interface for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	GetAll() ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uuid.UUID) error
}

// SettingRepositoryInterface defines the interface for setting repository operations
type SettingRepositoryInterface interface {
	GetByKey(key string) (*models.Setting, error)
	Upsert(key, value string) error
}
