package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"selexia/internal/config"
	"selexia/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {

	connectionPool, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := connectionPool.AutoMigrate(
		&db_models.User{},
		&db_models.UserSettings{},
		&db_models.Country{},
		&db_models.City{},
		&db_models.Category{},
		&db_models.Excursion{},
		&db_models.Booking{},
		&db_models.Review{},
		&db_models.Favorite{},
		&db_models.Application{},
	); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
