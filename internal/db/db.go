package db

import (
	"log"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
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
		&models.Worker{},
		&models.Service{},
		&models.Additional{},
		&models.Customer{},
		&models.WorkerSchedule{},
		&models.BlockedDate{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Segunda linha de defesa contra overlap, além do lock por worker:
	// constraint de exclusão sobre o intervalo para status ativos
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`
        DO $$
        BEGIN
            IF NOT EXISTS (
                SELECT 1 FROM pg_constraint WHERE conname = 'appointments_no_overlap'
            ) THEN
                ALTER TABLE appointments
                ADD CONSTRAINT appointments_no_overlap
                EXCLUDE USING gist (
                    worker_id WITH =,
                    tsrange(start_time, end_time) WITH &&
                ) WHERE (status IN ('pending', 'confirmed'));
            END IF;
        END $$;
    `)

	return db
}
