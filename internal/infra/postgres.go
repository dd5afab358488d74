package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"alphagate/internal/config"
	"alphagate/internal/models/db_models"
)

// InitPostgresql returns nil when no DSN is configured; the router's
// store guard keeps a nil connection away from the handlers.
func InitPostgresql(cfg config.Config) *gorm.DB {
	if !cfg.StoreConfigured() {
		log.Println("POSTGRES_URL not set; running without a store")
		return nil
	}

	db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := db.AutoMigrate(
		&db_models.Protocol{},
		&db_models.Account{},
		&db_models.Subscription{},
	); err != nil {
		log.Printf("Error running migrations: %v", err)
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
