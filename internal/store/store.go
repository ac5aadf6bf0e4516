// Package store opens the pooled connection to the relational store and creates its schema.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"gitlab.com/dirk.krummacker/contact-book/internal/config"
)

// MemoryPath opens a private in-memory sqlite database.
const MemoryPath = ":memory:"

// Open returns a connection pool for the configured driver. The pool is safe for concurrent use and is
// meant to be shared by all repositories; closing it is the caller's responsibility.
func Open(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		return openMySQL(ctx, cfg)
	case config.DriverSQLite:
		return OpenSQLite(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

func openMySQL(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := mysql.NewConfig()
	dsn.User = cfg.DBUser
	dsn.Passwd = cfg.DBPassword
	dsn.Net = "tcp"
	dsn.Addr = cfg.DBHost
	dsn.DBName = cfg.DBName
	dsn.ParseTime = true
	// Report matched instead of changed rows, so that repeating an update is not mistaken for a
	// missing row.
	dsn.ClientFoundRows = true

	db, err := sqlx.ConnectContext(ctx, config.DriverMySQL, dsn.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mysql at %s: %w", cfg.DBHost, err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	return db, nil
}

// OpenSQLite opens the sqlite database file at path, creating its directory if needed. MemoryPath
// yields an in-memory database that lives as long as the pool.
func OpenSQLite(ctx context.Context, path string) (*sqlx.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sqlx.ConnectContext(ctx, config.DriverSQLite, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if path == MemoryPath {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
		db.SetConnMaxLifetime(0)
		db.SetConnMaxIdleTime(0)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}
	return db, nil
}
