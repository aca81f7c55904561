// Package sqlstore implements the repository ports over database/sql.
// One implementation serves both backends: queries are written with `?`
// placeholders and passed through sqlx.Rebind, which rewrites them to
// `$N` for Postgres and leaves them alone for SQLite.
package sqlstore

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
	_ "modernc.org/sqlite"             // pure go sqlite driver
)

const (
	// DriverPostgres is the pgx database/sql driver name.
	DriverPostgres = "pgx"
	// DriverSQLite is the modernc.org/sqlite driver name.
	DriverSQLite = "sqlite"
)

//go:embed schema/sqlite.sql
var schemaSQLite string

//go:embed schema/postgres.sql
var schemaPostgres string

// Open connects to the database and verifies the connection.
func Open(driver, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	return db, nil
}

// EnsureSchema creates the three tables when they do not exist yet.
// Statements run one at a time; the pgx driver does not accept
// multi-statement Exec.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	schema := schemaSQLite
	if db.DriverName() == DriverPostgres {
		schema = schemaPostgres
	}
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// SeedDemoData inserts the demo breeds and dogs into an empty store. A
// store that already has breeds is left untouched.
func SeedDemoData(ctx context.Context, db *sqlx.DB) error {
	var n int
	if err := db.GetContext(ctx, &n, "SELECT COUNT(*) FROM breeds"); err != nil {
		return fmt.Errorf("seed: count breeds: %w", err)
	}
	if n > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, name := range []string{"Labrador", "German Shepherd", "Bulldog", "Greyhound"} {
		if _, err := tx.ExecContext(ctx, tx.Rebind("INSERT INTO breeds (name) VALUES (?)"), name); err != nil {
			return fmt.Errorf("seed: insert breed %q: %w", name, err)
		}
	}

	type seedDog struct {
		name, breed, description, gender, status string
		age                                      int
	}
	for _, d := range []seedDog{
		{"Buddy", "Labrador", "Friendly dog", "Male", "AVAILABLE", 3},
		{"Max", "German Shepherd", "Smart dog", "Male", "AVAILABLE", 5},
		{"Rocky", "Bulldog", "Calm and loyal", "Male", "ADOPTED", 4},
		{"Luna", "Labrador", "Loves long walks", "Female", "AVAILABLE", 2},
	} {
		if _, err := tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO dogs (name, breed_id, age, description, gender, status)
			VALUES (?, (SELECT id FROM breeds WHERE name = ?), ?, ?, ?, ?)
		`), d.name, d.breed, d.age, d.description, d.gender, d.status); err != nil {
			return fmt.Errorf("seed: insert dog %q: %w", d.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit: %w", err)
	}
	return nil
}
