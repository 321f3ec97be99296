package gateway

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/guide-directory-api/internal/config"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// Postgres is a Gateway backed by a single generic table of sheet rows, for
// deployments that would rather not depend on a remote spreadsheet. It keeps
// the same whole-tab replace semantics as the Sheets gateway.
type Postgres struct {
	db  *sql.DB
	log zerolog.Logger
}

// Verify interface compliance
var _ Gateway = (*Postgres)(nil)

// NewPostgres opens a connection pool and verifies connectivity
func NewPostgres(cfg *config.DatabaseConfig, log zerolog.Logger) (*Postgres, error) {
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MaxLifetime)

	// Test connection with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	g := &Postgres{
		db:  db,
		log: log.With().Str("component", "postgres-gateway").Logger(),
	}

	g.log.Info().
		Str("host", cfg.Host).
		Str("database", cfg.Name).
		Int("max_open_conns", cfg.MaxOpenConns).
		Msg("Database connection established")

	return g, nil
}

// Close releases the connection pool
func (g *Postgres) Close() error {
	return g.db.Close()
}

// RunMigrations executes all pending migrations using golang-migrate
func (g *Postgres) RunMigrations(migrationsPath string) error {
	g.log.Info().Str("path", migrationsPath).Msg("Running database migrations")

	driver, err := postgres.WithInstance(g.db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	g.log.Info().
		Uint("version", version).
		Bool("dirty", dirty).
		Msg("Migrations completed")

	return nil
}

func (g *Postgres) ReadAll(ctx context.Context, tab string) ([][]string, error) {
	rows, err := g.db.QueryContext(ctx,
		`SELECT cells FROM sheet_rows WHERE tab = $1 ORDER BY position`, tab)
	if err != nil {
		return nil, fmt.Errorf("%w: read tab %s: %v", ErrBackendUnavailable, tab, err)
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		var cells []string
		if err := rows.Scan(pq.Array(&cells)); err != nil {
			return nil, fmt.Errorf("%w: scan tab %s: %v", ErrBackendUnavailable, tab, err)
		}
		out = append(out, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read tab %s: %v", ErrBackendUnavailable, tab, err)
	}
	return out, nil
}

func (g *Postgres) ReplaceAll(ctx context.Context, tab string, rows [][]string) error {
	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: write tab %s: %v", ErrBackendUnavailable, tab, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sheet_rows WHERE tab = $1`, tab); err != nil {
		return fmt.Errorf("%w: clear tab %s: %v", ErrBackendUnavailable, tab, err)
	}

	// Bulk insert the replacement rows with COPY
	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("sheet_rows", "tab", "position", "cells"))
	if err != nil {
		return fmt.Errorf("%w: write tab %s: %v", ErrBackendUnavailable, tab, err)
	}

	for i, row := range rows {
		if _, err := stmt.ExecContext(ctx, tab, i, pq.Array(row)); err != nil {
			stmt.Close()
			return fmt.Errorf("%w: write tab %s: %v", ErrBackendUnavailable, tab, err)
		}
	}

	// Flush the COPY
	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return fmt.Errorf("%w: write tab %s: %v", ErrBackendUnavailable, tab, err)
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("%w: write tab %s: %v", ErrBackendUnavailable, tab, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: write tab %s: %v", ErrBackendUnavailable, tab, err)
	}

	g.log.Debug().Str("tab", tab).Int("rows", len(rows)).Msg("Tab rewritten")
	return nil
}
