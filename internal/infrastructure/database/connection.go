package database

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"tlogi/internal/shared/config"
	appLogger "tlogi/internal/shared/logger"
)

// Pool defaults. Every request shares one pool with no application-level
// locking on top, so the limits stay small and fixed unless the config
// overrides them.
const (
	defaultMaxOpenConns       = 10
	defaultMaxIdleConns       = 5
	defaultConnMaxLifetimeMin = 30
)

var (
	db   *gorm.DB
	dbMu sync.RWMutex
)

// Init opens the MySQL pool and stores the handle for Get.
func Init(cfg *config.DatabaseConfig) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database)

	// Warn level keeps routine queries out of the logs; slow queries and
	// errors still surface through the application logger.
	gormLogger := gormlogger.New(queryLogWriter{}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})

	database, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	open, idle, lifetime := poolLimits(cfg)
	sqlDB.SetMaxOpenConns(open)
	sqlDB.SetMaxIdleConns(idle)
	sqlDB.SetConnMaxLifetime(lifetime)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	dbMu.Lock()
	db = database
	dbMu.Unlock()

	appLogger.Info("database connection established",
		"database", cfg.Database,
		"max_open_conns", open)

	return nil
}

// poolLimits resolves the pool sizing from config, falling back to the
// small fixed defaults for anything unset.
func poolLimits(cfg *config.DatabaseConfig) (open, idle int, lifetime time.Duration) {
	open = cfg.MaxOpenConns
	if open <= 0 {
		open = defaultMaxOpenConns
	}
	idle = cfg.MaxIdleConns
	if idle <= 0 {
		idle = defaultMaxIdleConns
	}
	if idle > open {
		idle = open
	}
	minutes := cfg.ConnMaxLifetime
	if minutes <= 0 {
		minutes = defaultConnMaxLifetimeMin
	}
	return open, idle, time.Duration(minutes) * time.Minute
}

// Get returns the shared database handle. Init must have succeeded first.
func Get() *gorm.DB {
	dbMu.RLock()
	defer dbMu.RUnlock()
	return db
}

// Close releases the pool. Safe to call before Init.
func Close() error {
	dbMu.RLock()
	currentDB := db
	dbMu.RUnlock()

	if currentDB == nil {
		return nil
	}

	sqlDB, err := currentDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	appLogger.Info("database connection closed")
	return nil
}

// queryLogWriter routes GORM's own log lines through the application
// logger.
type queryLogWriter struct{}

func (queryLogWriter) Printf(format string, args ...interface{}) {
	appLogger.Warn(fmt.Sprintf(format, args...))
}
