package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/VetCareCL/vetcare-api/internal/config"
	"github.com/VetCareCL/vetcare-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Pet{},
		&models.Veterinarian{},
		&models.Service{},
		&models.Appointment{},
		&models.Payment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Índice parcial de unicidade do slot: (veterinário, data, hora) entre
	// citas não canceladas. AutoMigrate não expressa índice parcial, então o
	// DDL é aplicado direto; é ele que garante que duas requests concorrentes
	// pelo mesmo slot nunca inserem as duas.
	if err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_vet_slot_active
		 ON appointments (veterinarian_id, appointment_date, appointment_time)
		 WHERE status <> 'cancelada'`,
	).Error; err != nil {
		log.Fatalf("failed to create slot index: %v", err)
	}

	return db
}
