package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// LedgerServiceInterface defines the interface for the request-fulfillment ledger
type LedgerServiceInterface interface {
	CreateRequest(req *CreateRequestRequest) (*RequestResponse, error)
	GetRequest(id uuid.UUID) (*RequestResponse, error)
	AssignOwned(requestID uuid.UUID, req *AssignOwnedRequest) (*RequestResponse, error)
	AssignRental(requestID uuid.UUID, req *AssignRentalRequest) (*RequestResponse, error)
	AssignPurchase(requestID uuid.UUID, req *AssignPurchaseRequest) (*RequestResponse, error)
	EditRow(rowID uuid.UUID, req *EditRowRequest) error
	DeleteRow(rowID uuid.UUID) error
	MarkCompleted(requestID uuid.UUID) error
	RevertCompleted(requestID uuid.UUID) error
	ListRows(filters ListRowsFilters) (*RequestRowListResponse, error)
}

// AssetServiceInterface defines the interface for fleet asset service
type AssetServiceInterface interface {
	CreateAsset(req *CreateAssetRequest) (*AssetResponse, error)
	GetAssetByID(id uuid.UUID) (*AssetResponse, error)
	GetAllAssets() ([]AssetResponse, error)
	UpdateAsset(id uuid.UUID, req *UpdateAssetRequest) (*AssetResponse, error)
	DeleteAsset(id uuid.UUID) error
}

// OperativeUnitServiceInterface defines the interface for operative unit service
type OperativeUnitServiceInterface interface {
	CreateUnit(req *CreateLookupRequest) (*LookupResponse, error)
	GetAllUnits() ([]LookupResponse, error)
	RenameUnit(id uuid.UUID, req *RenameLookupRequest) (*LookupResponse, error)
	DeleteUnit(id uuid.UUID) error
}

// CategoryServiceInterface defines the interface for category service
type CategoryServiceInterface interface {
	CreateCategory(req *CreateLookupRequest) (*LookupResponse, error)
	GetAllCategories() ([]LookupResponse, error)
	RenameCategory(id uuid.UUID, req *RenameLookupRequest) (*LookupResponse, error)
	DeleteCategory(id uuid.UUID) error
}

// SettingsServiceInterface defines the interface for application settings service
type SettingsServiceInterface interface {
	GetAppPassword() (string, error)
	ChangeAppPassword(req *ChangePasswordRequest) error
}

// ReportServiceInterface defines the interface for PDF report generation
type ReportServiceInterface interface {
	GenerateReport(status *RowStatus) ([]byte, string, error)
}

// NotifierServiceInterface defines the interface for outbound notification email
type NotifierServiceInterface interface {
	SendNotification(req *SendNotificationRequest) (*SendNotificationResponse, error)
}
