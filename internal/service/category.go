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

// CategoryService handles business logic for equipment categories
type CategoryService struct {
	repo      repository.CategoryRepositoryInterface
	validator *validator.Validate
}

// Ensure CategoryService implements CategoryServiceInterface
var _ CategoryServiceInterface = (*CategoryService)(nil)

// NewCategoryService creates a new category service
func NewCategoryService(repo repository.CategoryRepositoryInterface, validator *validator.Validate) *CategoryService {
	return &CategoryService{
		repo:      repo,
		validator: validator,
	}
}

// CreateCategory creates a new category
func (s *CategoryService) CreateCategory(req *CreateLookupRequest) (*LookupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCategoryExists
	}

	category := &models.Category{Name: req.Name}
	if err := s.repo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &LookupResponse{ID: category.ID, Name: category.Name}, nil
}

// GetAllCategories retrieves all categories
func (s *CategoryService) GetAllCategories() ([]LookupResponse, error) {
	categories, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	responses := make([]LookupResponse, len(categories))
	for i, c := range categories {
		responses[i] = LookupResponse{ID: c.ID, Name: c.Name}
	}
	return responses, nil
}

// RenameCategory renames a category
func (s *CategoryService) RenameCategory(id uuid.UUID, req *RenameLookupRequest) (*LookupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	category.Name = req.Name
	if err := s.repo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to rename category: %w", err)
	}

	return &LookupResponse{ID: category.ID, Name: category.Name}, nil
}

// DeleteCategory deletes a category
func (s *CategoryService) DeleteCategory(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return fmt.Errorf("failed to get category: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
