package repository

import (
	"equipment-assignment-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetRepository handles database operations for fleet assets
type AssetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// Create creates a new asset
func (r *AssetRepository) Create(asset *models.Asset) error {
	return r.db.Create(asset).Error
}

// GetByID retrieves an asset by ID
func (r *AssetRepository) GetByID(id uuid.UUID) (*models.Asset, error) {
	var asset models.Asset
	err := r.db.First(&asset, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// GetByInternalID retrieves an asset by its fleet internal identifier
func (r *AssetRepository) GetByInternalID(internalID string) (*models.Asset, error) {
	var asset models.Asset
	err := r.db.First(&asset, "internal_id = ?", internalID).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// GetAll retrieves all assets ordered by internal identifier
func (r *AssetRepository) GetAll() ([]models.Asset, error) {
	var assets []models.Asset
	err := r.db.Order("internal_id ASC").Find(&assets).Error
	if err != nil {
		return nil, err
	}
	return assets, nil
}

// Update updates an asset
func (r *AssetRepository) Update(asset *models.Asset) error {
	return r.db.Save(asset).Error
}

// Delete deletes an asset
func (r *AssetRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Asset{}, "id = ?", id).Error
}
