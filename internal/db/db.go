package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/config"
)

// OpenPostgres connects using the individual connection settings and applies
// the configured pool limits. The connect timeout is part of the DSN so a
// dead database fails fast instead of hanging the boot.
func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v connect_timeout=%v",
		conf.Host, conf.Port, conf.User, conf.Password, conf.DBName, conf.SSLMode, conf.ConnectTimeout,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	if err = configurePool(gormDB, conf); err != nil {
		return nil, err
	}

	return gormDB, nil
}

// OpenPostgresWithURL connects using a full DATABASE_URL style DSN.
func OpenPostgresWithURL(url string) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(url), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	return gormDB, nil
}

func configurePool(gormDB *gorm.DB, conf *config.PostgresConfig) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("gormDB.DB -> %w", err)
	}

	sqlDB.SetMaxOpenConns(conf.MaxOpenConns)
	sqlDB.SetMaxIdleConns(conf.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(conf.ConnMaxLifetime) * time.Minute)

	return nil
}
