// Package gorm opens the relational store backing the account table.
package gorm

import (
	"fmt"
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/jpillora/backoff"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/paypay-hub/paypay-admin-bot/configs"
	"github.com/paypay-hub/paypay-admin-bot/migrations"
)

const (
	dbTypePostgresql = "psql"
	dbTypeMysql      = "mysql"
	dbTypeSqlite     = "sqlite"
)

const connectAttempts = 5

// New opens a gorm database handle for the configured backend.
// Connection establishment is retried a few times with increasing
// waits and the last error is returned if all attempts fail.
func New(cfg *configs.Config) (*gorm.DB, error) {
	var d gorm.Dialector
	switch cfg.DatabaseType {
	default:
		return nil, fmt.Errorf("database type '%s' not supported", cfg.DatabaseType)
	case dbTypePostgresql:
		d = postgres.Open(cfg.DatabaseDSN)
	case dbTypeMysql:
		d = mysql.Open(cfg.DatabaseDSN)
	case dbTypeSqlite:
		d = sqlite.Open(cfg.DatabaseDSN)
	}

	opts := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	b := &backoff.Backoff{
		Min:    100 * time.Millisecond,
		Max:    3 * time.Second,
		Factor: 2,
	}

	var db *gorm.DB
	var err error
	for i := 0; i < connectAttempts; i++ {
		db, err = gorm.Open(d, opts)
		if err == nil {
			return db, nil
		}
		wait := b.Duration()
		log.
			WithFields(log.Fields{"error": err, "wait": wait}).
			Warn("Database connection failed, retrying")
		time.Sleep(wait)
	}

	return nil, err
}

// Migrate runs all pending schema migrations. It is idempotent and
// safe to call on every startup.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, migrations.List())
	return m.Migrate()
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		panic("unable to close database")
	}
	err = sqlDB.Close()
	if err != nil {
		panic("unable to close database")
	}
}
