package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"github.com/bigredeye/schoolbook/internal/config"
	lf "github.com/bigredeye/schoolbook/internal/logfield"
	"github.com/bigredeye/schoolbook/internal/models"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type DataBase struct {
	*gorm.DB
}

type DuplicateKey struct {
	nested error
}

func (e *DuplicateKey) Error() string {
	return e.nested.Error()
}

func (e *DuplicateKey) Unwrap() error {
	return e.nested
}

func IsDuplicateKey(err error) bool {
	duplicateKey := &DuplicateKey{}
	return errors.As(err, &duplicateKey)
}

// gorm passes driver errors through untouched, so both drivers are checked here.
// https://github.com/go-gorm/gorm/issues/4037
func isUniqueViolation(err error) bool {
	var perr *pgconn.PgError
	if errors.As(err, &perr) {
		return perr.Code == "23505"
	}
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			serr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

func Dialector(conf *config.DataBase) (gorm.Dialector, error) {
	switch conf.Driver {
	case DriverSQLite, "":
		return sqlite.Open(conf.Path), nil
	case DriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			conf.Host, conf.Port, conf.User, conf.Pass, conf.Name, conf.SSLMode)
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", conf.Driver)
	}
}

func OpenDataBase(logger *zap.Logger, dialector gorm.Dialector) (*DataBase, error) {
	zapLogger := zapgorm2.New(logger.Named("gorm"))
	// Lookups of absent ids are an expected outcome, not a store failure.
	zapLogger.IgnoreRecordNotFoundError = true
	zapLogger.SetAsDefault()
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: zapLogger,
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(models.Schema()...)
	if err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, err
	}

	return &DataBase{db}, nil
}

// Connect opens the configured store, retrying with exponential backoff
// until ConnectRetries attempts have failed or ctx is done. A negative
// ConnectRetries means a single attempt.
func Connect(ctx context.Context, logger *zap.Logger, conf *config.DataBase) (*DataBase, error) {
	dialector, err := Dialector(conf)
	if err != nil {
		return nil, err
	}

	var db *DataBase
	open := func() error {
		db, err = OpenDataBase(logger, dialector)
		return err
	}
	retries := max(conf.ConnectRetries, 0)
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(retries)),
		ctx,
	)
	err = backoff.RetryNotify(open, policy, func(err error, next time.Duration) {
		logger.Warn("Failed to open database, retrying",
			zap.Error(err),
			zap.Duration("next_attempt", next),
			lf.Driver(conf.Driver),
		)
	})
	if err != nil {
		return nil, err
	}

	if err := db.configurePool(conf); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("Opened database", lf.Driver(conf.Driver))
	return db, nil
}

func (db *DataBase) configurePool(conf *config.DataBase) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	if conf.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.MaxOpenConns)
	}
	if conf.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conf.MaxIdleConns)
	}
	if conf.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(conf.ConnMaxLifetime)
	}
	return nil
}

func (db *DataBase) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (db *DataBase) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
