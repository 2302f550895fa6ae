package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/okalang/dinebill-api/internal/config"
	"github.com/okalang/dinebill-api/internal/domain/entity"
	"github.com/okalang/dinebill-api/internal/domain/enum"
	"github.com/okalang/dinebill-api/pkg/utils"
	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens the local SQLite database file. The store lives on the
// terminal itself; there is no database server.
func NewSQLiteDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite serializes writers; a single open connection avoids
	// SQLITE_BUSY under the app's sequential access pattern.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	log.Printf("Opened SQLite database at %s", cfg.Path)
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities. Safe to run on an
// already-populated store: existing tables and rows are left alone.
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.Bill{},
		&entity.BillItem{},
		&entity.Settings{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}

// SeedDefaultData creates the settings singleton and the admin account on
// first run. Repeated invocations find the existing rows and insert nothing.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var settingsCount int64
	if err := db.Model(&entity.Settings{}).Count(&settingsCount).Error; err != nil {
		return fmt.Errorf("failed to check settings: %w", err)
	}
	if settingsCount == 0 {
		settings := entity.Settings{
			ShopName:       viper.GetString("SHOP_NAME"),
			Address:        viper.GetString("SHOP_ADDRESS"),
			Tax1Rate:       entity.DefaultTaxRate,
			Tax2Rate:       entity.DefaultTaxRate,
			PaperWidth:     enum.Paper58mm,
			CurrencySymbol: "$",
			Theme:          "light",
			AutoSync:       false,
		}
		if settings.ShopName == "" {
			settings.ShopName = "My Restaurant"
		}
		if err := db.Create(&settings).Error; err != nil {
			return fmt.Errorf("failed to seed settings: %w", err)
		}
	}

	adminUsername := viper.GetString("ADMIN_USERNAME")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	if adminUsername == "" {
		adminUsername = "admin"
	}
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	var existing entity.User
	err := db.Where("username = ?", adminUsername).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := utils.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		admin := entity.User{
			Username:     adminUsername,
			PasswordHash: hash,
			Role:         enum.RoleAdmin,
			DisplayName:  "Administrator",
			Active:       true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}
		log.Printf("Admin user created: %s", adminUsername)
	} else if err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	}

	log.Println("Default data seeding completed")
	return nil
}
