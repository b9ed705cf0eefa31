package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mauv0809/football-academy/internal/config"
	"github.com/pressly/goose/v3"
	gooseDB "github.com/pressly/goose/v3/database"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const migrationTimeout = 30 * time.Second

// InitDB opens the academy database and ensures the schema is up to date.
// The pool is capped at a single connection: the tools are single threaded
// and an in-memory database only exists on the connection that created it.
func InitDB(cfg config.Config) (*sql.DB, func(), error) {
	driver, dsn, dialect, err := dataSource(cfg)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Turso.PrimaryURL != "" {
		log.Info("Initializing Turso database", "url", cfg.Turso.PrimaryURL)
	} else {
		log.Info("Initializing local-only SQLite database", "path", cfg.DBName, "driver", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrationTimeout)
	defer cancel()
	if err := runMigrations(ctx, db, dialect); err != nil {
		db.Close()
		return nil, nil, err
	}

	teardown := func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}
	log.Info("Database initialized successfully")
	return db, teardown, nil
}

// dataSource resolves the driver name, DSN and migration dialect for cfg.
func dataSource(cfg config.Config) (string, string, gooseDB.Dialect, error) {
	if cfg.Turso.PrimaryURL != "" {
		dsn := cfg.Turso.PrimaryURL
		if cfg.Turso.AuthToken != "" {
			dsn += "?authToken=" + cfg.Turso.AuthToken
		}
		return "libsql", dsn, gooseDB.DialectTurso, nil
	}
	if cfg.DBName == "" {
		return "", "", "", fmt.Errorf("database path is empty")
	}
	// Foreign key support is not enabled by default in SQLite. Each driver
	// applies the DSN pragma to every connection it opens.
	switch cfg.Driver {
	case "", "sqlite3":
		return "sqlite3", withParam(cfg.DBName, "_foreign_keys=1"), gooseDB.DialectSQLite3, nil
	case "sqlite":
		return "sqlite", withParam(cfg.DBName, "_pragma=foreign_keys(1)"), gooseDB.DialectSQLite3, nil
	default:
		return "", "", "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func withParam(dsn, param string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&" + param
	}
	return dsn + "?" + param
}

// runMigrations applies all pending schema migrations using goose.
func runMigrations(ctx context.Context, db *sql.DB, dialect gooseDB.Dialect) error {
	migrationFS, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create sub filesystem: %w", err)
	}

	provider, err := goose.NewProvider(dialect, db, migrationFS)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	for _, r := range results {
		log.Debug("Applied migration", "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}
