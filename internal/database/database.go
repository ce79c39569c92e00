package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"github.com/Tomlord1122/task-backend/internal/config"
	"github.com/Tomlord1122/task-backend/internal/domain"
)

const memoryPath = ":memory:"

// Service owns the connection pool shared by every repository.
type Service interface {
	Health() map[string]string
	Migrate(ctx context.Context) error
	Close() error
	GetDB() *gorm.DB
}

type service struct {
	db     *gorm.DB
	name   string
	driver string
	log    zerolog.Logger
}

// New opens the database described by cfg. Nothing is kept in package state,
// callers own the returned Service and must Close it.
func New(cfg config.DatabaseConfig, log zerolog.Logger) (Service, error) {
	var (
		sqlDB *sql.DB
		name  string
		err   error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		sqlDB, err = openPostgres(cfg)
		name = cfg.Database
	case config.DriverSQLite:
		sqlDB, err = openSQLite(cfg.SQLitePath)
		name = cfg.SQLitePath
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialectorFor(cfg.Driver, sqlDB), &gorm.Config{
		Logger: logger.New(gormWriter{log: log}, logger.Config{
			SlowThreshold:             cfg.SlowThreshold,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Info().
		Str("driver", cfg.Driver).
		Str("database", name).
		Msg("connected to database")

	return &service{db: db, name: name, driver: cfg.Driver, log: log}, nil
}

func dialectorFor(driver string, sqlDB *sql.DB) gorm.Dialector {
	if driver == config.DriverSQLite {
		return sqlite.New(sqlite.Config{Conn: sqlDB})
	}
	return postgres.New(postgres.Config{Conn: sqlDB})
}

func openPostgres(cfg config.DatabaseConfig) (*sql.DB, error) {
	pgCfg, err := pgx.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}
	pgCfg.ConnectTimeout = cfg.ConnectTimeout

	sqlDB := stdlib.OpenDB(*pgCfg)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return sqlDB, nil
}

func openSQLite(path string) (*sql.DB, error) {
	if path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if path != memoryPath {
		if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	// SQLite works best with a single writer, and an in-memory database
	// only lives as long as its one connection.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	return sqlDB, nil
}

// Migrate creates the users and tasks tables when they are missing.
func (s *service) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(domain.Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

func (s *service) GetDB() *gorm.DB {
	return s.db
}

// Health pings the database and reports pool statistics.
func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)
	stats["driver"] = s.driver

	sqlDB, err := s.db.DB()
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("failed to get underlying DB for health check: %v", err)
		s.log.Error().Err(err).Msg("failed to get db for health check")
		return stats
	}

	err = sqlDB.PingContext(ctx)
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		s.log.Error().Err(err).Msg("db down")
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"

	dbStats := sqlDB.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	stats["wait_duration"] = dbStats.WaitDuration.String()
	stats["max_idle_closed"] = strconv.FormatInt(dbStats.MaxIdleClosed, 10)
	stats["max_lifetime_closed"] = strconv.FormatInt(dbStats.MaxLifetimeClosed, 10)

	if msg := poolMessage(dbStats); msg != "" {
		stats["message"] = msg
	}

	return stats
}

// heavyLoadPercent of the configured pool size counts as heavy load.
const heavyLoadPercent = 80

// poolMessage reports the most pressing pool problem, or "" when the pool
// looks healthy. The load threshold follows the pool size set from
// DatabaseConfig.MaxOpenConns (1 for sqlite, 0 meaning unlimited).
func poolMessage(st sql.DBStats) string {
	open := int64(st.OpenConnections)

	switch {
	case st.MaxLifetimeClosed > open/2:
		return "Many connections are being closed due to max lifetime, consider increasing ConnMaxLifetime or revising the connection usage pattern."
	case st.MaxIdleClosed > open/2 && st.OpenConnections > st.Idle:
		return "Many idle connections are being closed, consider revising the connection pool settings (MaxIdleConns, ConnMaxIdleTime)."
	case st.WaitCount > 1000:
		return "The database has a high number of wait events, indicating potential bottlenecks."
	}

	if limit := st.MaxOpenConnections * heavyLoadPercent / 100; limit > 0 && st.OpenConnections > limit {
		return "The database is experiencing heavy load."
	}
	return ""
}

func (s *service) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		s.log.Error().Err(err).Msg("failed to get underlying sql.DB for closing")
		return err
	}
	s.log.Info().Str("database", s.name).Msg("closing connection pool")
	return sqlDB.Close()
}

// gormWriter feeds gorm's SQL log into zerolog at debug level.
type gormWriter struct {
	log zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Debug().Msg(strings.ReplaceAll(fmt.Sprintf(format, args...), "\n", " "))
}
