package service

import (
	"errors"
	"fmt"
	"strings"

	"equipment-assignment-backend/internal/database/models"
	apperrors "equipment-assignment-backend/internal/errors"
	"equipment-assignment-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AssetService handles business logic for fleet assets
type AssetService struct {
	repo      repository.AssetRepositoryInterface
	validator *validator.Validate
}

// Ensure AssetService implements AssetServiceInterface
var _ AssetServiceInterface = (*AssetService)(nil)

// NewAssetService creates a new asset service
func NewAssetService(repo repository.AssetRepositoryInterface, validator *validator.Validate) *AssetService {
	return &AssetService{
		repo:      repo,
		validator: validator,
	}
}

// CreateAssetRequest represents the request to register an asset
type CreateAssetRequest struct {
	InternalID string          `json:"internal_id" validate:"required,max=50"`
	Brand      string          `json:"brand" validate:"required,max=100"`
	Model      string          `json:"model" validate:"required,max=100"`
	UsageHours decimal.Decimal `json:"usage_hours"`
}

// UpdateAssetRequest represents the request to update an asset
type UpdateAssetRequest struct {
	Brand      *string          `json:"brand,omitempty" validate:"omitempty,max=100"`
	Model      *string          `json:"model,omitempty" validate:"omitempty,max=100"`
	UsageHours *decimal.Decimal `json:"usage_hours,omitempty"`
}

// AssetResponse represents an asset in API responses
type AssetResponse struct {
	ID         uuid.UUID       `json:"id"`
	InternalID string          `json:"internal_id"`
	Brand      string          `json:"brand"`
	Model      string          `json:"model"`
	UsageHours decimal.Decimal `json:"usage_hours"`
}

// CreateAsset registers a new asset. Internal ids are stored uppercase.
func (s *AssetService) CreateAsset(req *CreateAssetRequest) (*AssetResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	internalID := strings.ToUpper(strings.TrimSpace(req.InternalID))

	existing, err := s.repo.GetByInternalID(internalID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing asset: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAssetExists
	}

	asset := &models.Asset{
		InternalID: internalID,
		Brand:      req.Brand,
		Model:      req.Model,
		UsageHours: req.UsageHours,
	}

	if err := s.repo.Create(asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	return s.toResponse(asset), nil
}

// GetAssetByID retrieves an asset by ID
func (s *AssetService) GetAssetByID(id uuid.UUID) (*AssetResponse, error) {
	asset, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return s.toResponse(asset), nil
}

// GetAllAssets retrieves all registered assets
func (s *AssetService) GetAllAssets() ([]AssetResponse, error) {
	assets, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get assets: %w", err)
	}

	responses := make([]AssetResponse, len(assets))
	for i := range assets {
		responses[i] = *s.toResponse(&assets[i])
	}
	return responses, nil
}

// UpdateAsset applies partial updates to an asset
func (s *AssetService) UpdateAsset(id uuid.UUID, req *UpdateAssetRequest) (*AssetResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	asset, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	if req.Brand != nil {
		asset.Brand = *req.Brand
	}
	if req.Model != nil {
		asset.Model = *req.Model
	}
	if req.UsageHours != nil {
		asset.UsageHours = *req.UsageHours
	}

	if err := s.repo.Update(asset); err != nil {
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	return s.toResponse(asset), nil
}

// DeleteAsset deletes an asset
func (s *AssetService) DeleteAsset(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssetNotFound
		}
		return fmt.Errorf("failed to get asset: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}

// toResponse converts an Asset model to an API response
func (s *AssetService) toResponse(asset *models.Asset) *AssetResponse {
	return &AssetResponse{
		ID:         asset.ID,
		InternalID: asset.InternalID,
		Brand:      asset.Brand,
		Model:      asset.Model,
		UsageHours: asset.UsageHours,
	}
}
