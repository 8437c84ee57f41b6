package service

import (
	"errors"
	"fmt"

	"equipment-assignment-backend/internal/database/models"
	apperrors "equipment-assignment-backend/internal/errors"
	"equipment-assignment-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateLookupRequest represents the request to create a named lookup entry
type CreateLookupRequest struct {
	Name string `json:"name" validate:"required,min=1,max=150"`
}

// RenameLookupRequest represents the request to rename a lookup entry
type RenameLookupRequest struct {
	Name string `json:"name" validate:"required,min=1,max=150"`
}

// LookupResponse represents a lookup entry in API responses
type LookupResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// OperativeUnitService handles business logic for operative units
type OperativeUnitService struct {
	repo      repository.OperativeUnitRepositoryInterface
	validator *validator.Validate
}

// Ensure OperativeUnitService implements OperativeUnitServiceInterface
var _ OperativeUnitServiceInterface = (*OperativeUnitService)(nil)

// NewOperativeUnitService creates a new operative unit service
func NewOperativeUnitService(repo repository.OperativeUnitRepositoryInterface, validator *validator.Validate) *OperativeUnitService {
	return &OperativeUnitService{
		repo:      repo,
		validator: validator,
	}
}

// CreateUnit creates a new operative unit
func (s *OperativeUnitService) CreateUnit(req *CreateLookupRequest) (*LookupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing operative unit: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrOperativeUnitExists
	}

	unit := &models.OperativeUnit{Name: req.Name}
	if err := s.repo.Create(unit); err != nil {
		return nil, fmt.Errorf("failed to create operative unit: %w", err)
	}

	return &LookupResponse{ID: unit.ID, Name: unit.Name}, nil
}

// GetAllUnits retrieves all operative units
func (s *OperativeUnitService) GetAllUnits() ([]LookupResponse, error) {
	units, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get operative units: %w", err)
	}

	responses := make([]LookupResponse, len(units))
	for i, u := range units {
		responses[i] = LookupResponse{ID: u.ID, Name: u.Name}
	}
	return responses, nil
}

// RenameUnit renames an operative unit
func (s *OperativeUnitService) RenameUnit(id uuid.UUID, req *RenameLookupRequest) (*LookupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	unit, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOperativeUnitNotFound
		}
		return nil, fmt.Errorf("failed to get operative unit: %w", err)
	}

	unit.Name = req.Name
	if err := s.repo.Update(unit); err != nil {
		return nil, fmt.Errorf("failed to rename operative unit: %w", err)
	}

	return &LookupResponse{ID: unit.ID, Name: unit.Name}, nil
}

// DeleteUnit deletes an operative unit
func (s *OperativeUnitService) DeleteUnit(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOperativeUnitNotFound
		}
		return fmt.Errorf("failed to get operative unit: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete operative unit: %w", err)
	}
	return nil
}
