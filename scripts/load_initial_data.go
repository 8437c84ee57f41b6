package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"equipment-assignment-backend/internal/config"
	"equipment-assignment-backend/internal/database"
	"equipment-assignment-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed file structures
type SeedFile struct {
	OperativeUnits []string          `yaml:"operative_units"`
	Categories     []string          `yaml:"categories"`
	Settings       map[string]string `yaml:"settings"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadSeedData(db, "scripts/data/seed.yaml"); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadSeedData(db *gorm.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	unitsCreated := 0
	for _, name := range seed.OperativeUnits {
		created, err := createOperativeUnit(db, name)
		if err != nil {
			return fmt.Errorf("failed to create operative unit %s: %w", name, err)
		}
		if created {
			unitsCreated++
		}
	}
	log.Printf("📋 Operative units: %d created, %d total", unitsCreated, len(seed.OperativeUnits))

	categoriesCreated := 0
	for _, name := range seed.Categories {
		created, err := createCategory(db, name)
		if err != nil {
			return fmt.Errorf("failed to create category %s: %w", name, err)
		}
		if created {
			categoriesCreated++
		}
	}
	log.Printf("📋 Categories: %d created, %d total", categoriesCreated, len(seed.Categories))

	settingsCreated := 0
	for key, value := range seed.Settings {
		created, err := createSetting(db, key, value)
		if err != nil {
			return fmt.Errorf("failed to create setting %s: %w", key, err)
		}
		if created {
			settingsCreated++
		}
	}
	log.Printf("📋 Settings: %d created, %d total", settingsCreated, len(seed.Settings))

	return nil
}

func createOperativeUnit(db *gorm.DB, name string) (bool, error) {
	var unit models.OperativeUnit
	if err := db.Where("name = ?", name).First(&unit).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			unit = models.OperativeUnit{Name: name}
			if err := db.Create(&unit).Error; err != nil {
				return false, fmt.Errorf("failed to create operative unit: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query operative unit: %w", err)
	}
	return false, nil
}

func createCategory(db *gorm.DB, name string) (bool, error) {
	var category models.Category
	if err := db.Where("name = ?", name).First(&category).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			category = models.Category{Name: name}
			if err := db.Create(&category).Error; err != nil {
				return false, fmt.Errorf("failed to create category: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query category: %w", err)
	}
	return false, nil
}

// createSetting inserts a setting only when the key is absent so a reseed
// never clobbers a changed password.
func createSetting(db *gorm.DB, key, value string) (bool, error) {
	var setting models.Setting
	if err := db.Where("key = ?", key).First(&setting).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			setting = models.Setting{Key: key, Value: value}
			if err := db.Create(&setting).Error; err != nil {
				return false, fmt.Errorf("failed to create setting: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query setting: %w", err)
	}
	return false, nil
}
