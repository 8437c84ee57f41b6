package testutils

import (
	"fmt"
	"time"

	"equipment-assignment-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OperativeUnitFactory provides methods to create test OperativeUnit data
type OperativeUnitFactory struct{}

// NewOperativeUnitFactory creates a new OperativeUnitFactory
func NewOperativeUnitFactory() *OperativeUnitFactory {
	return &OperativeUnitFactory{}
}

// Create creates a test OperativeUnit with default values
func (f *OperativeUnitFactory) Create() *models.OperativeUnit {
	id := uuid.New()
	return &models.OperativeUnit{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique suffix avoids collisions with the name unique index
		Name: "Test Unit " + id.String()[:8],
	}
}

// WithName sets a custom name for the operative unit
func (f *OperativeUnitFactory) WithName(name string) *models.OperativeUnit {
	unit := f.Create()
	unit.Name = name
	return unit
}

// CategoryFactory provides methods to create test Category data
type CategoryFactory struct{}

// NewCategoryFactory creates a new CategoryFactory
func NewCategoryFactory() *CategoryFactory {
	return &CategoryFactory{}
}

// Create creates a test Category with default values
func (f *CategoryFactory) Create() *models.Category {
	id := uuid.New()
	return &models.Category{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Test Category " + id.String()[:8],
	}
}

// WithName sets a custom name for the category
func (f *CategoryFactory) WithName(name string) *models.Category {
	category := f.Create()
	category.Name = name
	return category
}

// AssetFactory provides methods to create test Asset data
type AssetFactory struct{}

// NewAssetFactory creates a new AssetFactory
func NewAssetFactory() *AssetFactory {
	return &AssetFactory{}
}

// Create creates a test Asset with default values
func (f *AssetFactory) Create() *models.Asset {
	id := uuid.New()
	return &models.Asset{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		InternalID: "EQ-" + id.String()[:8],
		Brand:      "Caterpillar",
		Model:      "320D",
		UsageHours: decimal.NewFromInt(1200),
	}
}

// WithInternalID sets a custom internal ID for the asset
func (f *AssetFactory) WithInternalID(internalID string) *models.Asset {
	asset := f.Create()
	asset.InternalID = internalID
	return asset
}

// WithUsageHours sets custom usage hours for the asset
func (f *AssetFactory) WithUsageHours(hours decimal.Decimal) *models.Asset {
	asset := f.Create()
	asset.UsageHours = hours
	return asset
}

// RequestFactory provides methods to create test Request data
type RequestFactory struct{}

// NewRequestFactory creates a new RequestFactory
func NewRequestFactory() *RequestFactory {
	return &RequestFactory{}
}

// Create creates a test Request with default values
func (f *RequestFactory) Create() *models.Request {
	now := time.Now()
	return &models.Request{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RequestDate:     now.Truncate(24 * time.Hour),
		OperativeUnitID: uuid.New(),
		CategoryID:      uuid.New(),
		Description:     "Hydraulic excavator for site preparation",
		Capacity:        "20 ton",
		Quantity:        3,
		NeedDate:        now.AddDate(0, 1, 0).Truncate(24 * time.Hour),
		Comments:        "",
		Status:          models.RequestStatusPending,
	}
}

// WithLookups sets the operative unit and category IDs for the request
func (f *RequestFactory) WithLookups(unitID, categoryID uuid.UUID) *models.Request {
	request := f.Create()
	request.OperativeUnitID = unitID
	request.CategoryID = categoryID
	return request
}

// WithQuantity sets a custom quantity for the request
func (f *RequestFactory) WithQuantity(quantity int) *models.Request {
	request := f.Create()
	request.Quantity = quantity
	return request
}

// WithStatus sets a custom status for the request
func (f *RequestFactory) WithStatus(status models.RequestStatus) *models.Request {
	request := f.Create()
	request.Status = status
	return request
}

// FulfillmentRecordFactory provides methods to create test FulfillmentRecord data
type FulfillmentRecordFactory struct{}

// NewFulfillmentRecordFactory creates a new FulfillmentRecordFactory
func NewFulfillmentRecordFactory() *FulfillmentRecordFactory {
	return &FulfillmentRecordFactory{}
}

// Owned creates an OWNED channel record for the given request and asset
func (f *FulfillmentRecordFactory) Owned(requestID, assetID uuid.UUID, quantity int) *models.FulfillmentRecord {
	now := time.Now()
	availability := now.AddDate(0, 0, 7)
	return &models.FulfillmentRecord{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RequestID:        requestID,
		Channel:          models.ChannelOwned,
		Quantity:         quantity,
		ManagedAt:        now,
		AssetID:          &assetID,
		AvailabilityDate: &availability,
	}
}

// Rental creates a RENTAL channel record for the given request
func (f *FulfillmentRecordFactory) Rental(requestID uuid.UUID, quantity, months int) *models.FulfillmentRecord {
	now := time.Now()
	return &models.FulfillmentRecord{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RequestID:    requestID,
		Channel:      models.ChannelRental,
		Quantity:     quantity,
		ManagedAt:    now,
		RentalMonths: &months,
	}
}

// Purchase creates a PURCHASE channel record for the given request
func (f *FulfillmentRecordFactory) Purchase(requestID uuid.UUID, quantity int) *models.FulfillmentRecord {
	now := time.Now()
	return &models.FulfillmentRecord{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RequestID: requestID,
		Channel:   models.ChannelPurchase,
		Quantity:  quantity,
		ManagedAt: now,
	}
}

// SettingFactory provides methods to create test Setting data
type SettingFactory struct{}

// NewSettingFactory creates a new SettingFactory
func NewSettingFactory() *SettingFactory {
	return &SettingFactory{}
}

// Create creates a test Setting with default values
func (f *SettingFactory) Create() *models.Setting {
	id := uuid.New()
	return &models.Setting{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Key:   fmt.Sprintf("test_key_%s", id.String()[:8]),
		Value: "test-value",
	}
}

// AppPassword creates the shared login password setting
func (f *SettingFactory) AppPassword(password string) *models.Setting {
	setting := f.Create()
	setting.Key = models.SettingKeyAppPassword
	setting.Value = password
	return setting
}

// FactorySet provides access to all factories
type FactorySet struct {
	OperativeUnit     *OperativeUnitFactory
	Category          *CategoryFactory
	Asset             *AssetFactory
	Request           *RequestFactory
	FulfillmentRecord *FulfillmentRecordFactory
	Setting           *SettingFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		OperativeUnit:     NewOperativeUnitFactory(),
		Category:          NewCategoryFactory(),
		Asset:             NewAssetFactory(),
		Request:           NewRequestFactory(),
		FulfillmentRecord: NewFulfillmentRecordFactory(),
		Setting:           NewSettingFactory(),
	}
}

// CreateRequestWithLookups creates an operative unit, a category and a request
// that references both
func (fs *FactorySet) CreateRequestWithLookups() (*models.OperativeUnit, *models.Category, *models.Request) {
	unit := fs.OperativeUnit.Create()
	category := fs.Category.Create()
	request := fs.Request.WithLookups(unit.ID, category.ID)
	return unit, category, request
}
