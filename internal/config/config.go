package config

import (
	"os"
	"strings"
)

// AvailabilityFilterMode selects which query parameter GET /api/dogs
// accepts for availability filtering. Exactly one variant is active per
// deployment; they are never combined under the same parameter name.
type AvailabilityFilterMode string

const (
	// FilterByStatus accepts ?status=available|adopted (trimmed,
	// case-insensitive; unrecognized values are silently ignored).
	// This is the default, being the more capable variant.
	FilterByStatus AvailabilityFilterMode = "status"
	// FilterByFlag accepts ?available=true; only the literal "true"
	// (case-insensitive) activates an AVAILABLE-only filter.
	FilterByFlag AvailabilityFilterMode = "flag"
)

// Config is the explicit startup configuration. It is built once in main
// and passed down to constructors; nothing reads the environment after
// startup.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// DBDriver selects the storage backend: "pgx" (Postgres), "sqlite",
	// or "" for the in-memory store.
	DBDriver string
	// DBDSN is the driver-specific connection string.
	DBDSN string

	// AvailabilityFilter picks the listing filter variant.
	AvailabilityFilter AvailabilityFilterMode

	// SeedDemoData loads the demo breeds and dogs into an empty store.
	SeedDemoData bool
}

// FromEnv reads configuration from the environment:
//   - PORT (default 8080)
//   - DB_DRIVER=pgx|sqlite (empty = in-memory)
//   - DB_DSN
//   - DOG_FILTER_MODE=status|flag (default status)
//   - SEED_DEMO_DATA=true|false (default true)
func FromEnv() Config {
	cfg := Config{
		Addr:               ":8080",
		DBDriver:           strings.TrimSpace(os.Getenv("DB_DRIVER")),
		DBDSN:              os.Getenv("DB_DSN"),
		AvailabilityFilter: FilterByStatus,
		SeedDemoData:       true,
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + v
	}
	if strings.EqualFold(strings.TrimSpace(os.Getenv("DOG_FILTER_MODE")), string(FilterByFlag)) {
		cfg.AvailabilityFilter = FilterByFlag
	}
	if strings.EqualFold(strings.TrimSpace(os.Getenv("SEED_DEMO_DATA")), "false") {
		cfg.SeedDemoData = false
	}

	return cfg
}
