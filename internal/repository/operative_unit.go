package repository

import (
	"equipment-assignment-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OperativeUnitRepository handles database operations for operative units
type OperativeUnitRepository struct {
	db *gorm.DB
}

// NewOperativeUnitRepository creates a new operative unit repository
func NewOperativeUnitRepository(db *gorm.DB) *OperativeUnitRepository {
	return &OperativeUnitRepository{db: db}
}

// Create creates a new operative unit
func (r *OperativeUnitRepository) Create(unit *models.OperativeUnit) error {
	return r.db.Create(unit).Error
}

// GetByID retrieves an operative unit by ID
func (r *OperativeUnitRepository) GetByID(id uuid.UUID) (*models.OperativeUnit, error) {
	var unit models.OperativeUnit
	err := r.db.First(&unit, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// GetByName retrieves an operative unit by name
func (r *OperativeUnitRepository) GetByName(name string) (*models.OperativeUnit, error) {
	var unit models.OperativeUnit
	err := r.db.First(&unit, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// GetAll retrieves all operative units ordered by name
func (r *OperativeUnitRepository) GetAll() ([]models.OperativeUnit, error) {
	var units []models.OperativeUnit
	err := r.db.Order("name ASC").Find(&units).Error
	if err != nil {
		return nil, err
	}
	return units, nil
}

// Update updates an operative unit
func (r *OperativeUnitRepository) Update(unit *models.OperativeUnit) error {
	return r.db.Save(unit).Error
}

// Delete deletes an operative unit
func (r *OperativeUnitRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.OperativeUnit{}, "id = ?", id).Error
}
