package config

import (
	"fmt"

	"posyandu-backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectDB membuka koneksi gorm sesuai DB_DRIVER.
// Tidak ada transaksi default: setiap langkah hapus/update berdiri sendiri.
func ConnectDB(cfg *Config, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dialector = mysql.Open(cfg.DBDSN)
	case "postgres":
		dialector = postgres.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}

	if cfg.DBAutoMigrate {
		if err := db.AutoMigrate(&models.Admin{}, &models.Guardian{}, &models.Child{}, &models.VisitRecord{}); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		log.Info("schema migrated")
	}

	log.Info("database connected", zap.String("driver", cfg.DBDriver))
	return db, nil
}
