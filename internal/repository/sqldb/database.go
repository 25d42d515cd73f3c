package sqldb

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/config"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/sqldb/model"
)

const dbRetryInterval = 2 * time.Second

func dialector(cfg config.Database) gorm.Dialector {
	if cfg.Driver == "postgres" {
		return postgres.Open(cfg.DSN())
	}
	return mysql.Open(cfg.DSN())
}

// NewGormConfig is shared by Open and the repository tests. TranslateError turns unique
// violations into gorm.ErrDuplicatedKey for both drivers.
func NewGormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}
}

// Open connects to the configured database, retrying while it comes up.
func Open(cfg config.Database) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	for i := range cfg.MaxRetry {
		db, err = gorm.Open(dialector(cfg), NewGormConfig())
		if err != nil {
			logrus.Warnf("failed to open connection to database (attempt %d/%d): %v", i+1, cfg.MaxRetry, err)
		} else {
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				err = dbErr
				logrus.Warnf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, cfg.MaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				return db, nil
			}
			logrus.Warnf("failed to ping database (attempt %d/%d): %v", i+1, cfg.MaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryInterval)
	}

	return nil, fmt.Errorf("could not connect to %s after %d attempts: %w", cfg.Driver, cfg.MaxRetry, err)
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
