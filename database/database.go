package database

import (
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sayan01/groceri/config"
	"github.com/sayan01/groceri/models"
)

// Connect opens the Postgres connection described by cfg.
func Connect(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "connect database")
	}
	return db, nil
}

// Migrate creates or updates the schema for every persisted entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartLine{},
		&models.Transaction{},
		&models.Order{},
	)
}

// SeedAdmin creates the default admin account when none exists yet.
func SeedAdmin(db *gorm.DB) error {
	var admin models.User
	err := db.Where("username = ?", "admin").First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrap(err, "lookup admin user")
	}

	admin = models.User{Username: "admin", Name: "admin", IsAdmin: true}
	if err := admin.SetPassword("admin"); err != nil {
		return errors.Wrap(err, "hash admin password")
	}
	if err := db.Create(&admin).Error; err != nil {
		return errors.Wrap(err, "create admin user")
	}
	return nil
}
