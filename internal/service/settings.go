package service

import (
	"errors"
	"fmt"

	"equipment-assignment-backend/internal/config"
	"equipment-assignment-backend/internal/database/models"
	"equipment-assignment-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SettingsService handles business logic for application settings
type SettingsService struct {
	repo      repository.SettingRepositoryInterface
	cfg       *config.Config
	validator *validator.Validate
}

// Ensure SettingsService implements SettingsServiceInterface
var _ SettingsServiceInterface = (*SettingsService)(nil)

// NewSettingsService creates a new settings service
func NewSettingsService(repo repository.SettingRepositoryInterface, cfg *config.Config, validator *validator.Validate) *SettingsService {
	return &SettingsService{
		repo:      repo,
		cfg:       cfg,
		validator: validator,
	}
}

// ChangePasswordRequest represents the request to change the shared login secret
type ChangePasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=6,max=100"`
}

// GetAppPassword returns the current shared login secret. Falls back to the
// configured default when the settings table has no row yet.
func (s *SettingsService) GetAppPassword() (string, error) {
	setting, err := s.repo.GetByKey(models.SettingKeyAppPassword)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.cfg.DefaultAppPassword, nil
		}
		return "", fmt.Errorf("failed to get app password: %w", err)
	}
	return setting.Value, nil
}

// ChangeAppPassword replaces the shared login secret
func (s *SettingsService) ChangeAppPassword(req *ChangePasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if err := s.repo.Upsert(models.SettingKeyAppPassword, req.NewPassword); err != nil {
		return fmt.Errorf("failed to change app password: %w", err)
	}
	return nil
}
