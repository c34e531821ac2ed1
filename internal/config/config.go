// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// dashboard. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds UI-level settings such as the page size and the default
	// logged-in user.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the preferences store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds settings of the remote user service client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Cache holds staleness and garbage-collection windows of the query cache.
	Cache Cache `envPrefix:"CACHE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// FakeAPI holds settings of the local in-memory users service.
	FakeAPI FakeAPI `envPrefix:"FAKEAPI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// ItemsPerPage is the fixed page size of the users table.
	// Env: APP_ITEMS_PER_PAGE
	ItemsPerPage int `env:"ITEMS_PER_PAGE"`

	// DefaultUserID is the user picked as the logged-in identity on first
	// start. Env: APP_DEFAULT_USER_ID
	DefaultUserID int64 `env:"DEFAULT_USER_ID"`

	// LogFile is where the client writes its JSON logs.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name. Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration of the preferences store.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`

	// BlobName is the key the preferences blob is stored under.
	// Env: STORAGE_BLOB_NAME
	BlobName string `env:"BLOB_NAME"`
}

// DB holds connection settings for the preferences backend.
type DB struct {
	// DSN selects the backend: a postgres:// URL uses Postgres, a path ending
	// in .json uses a plain JSON file, anything else is a SQLite file.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings of the outbound REST client.
type Adapter struct {
	// BaseURL is the root URL of the remote user service.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every remote call (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Cache holds query-cache windows.
type Cache struct {
	// StaleTime is how long a fetched entry is trusted before the next read
	// refetches it. Env: CACHE_STALE_TIME
	StaleTime time.Duration `env:"STALE_TIME"`

	// GCTime is how long an unread entry is kept before the sweeper drops
	// it. Env: CACHE_GC_TIME
	GCTime time.Duration `env:"GC_TIME"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval is how often the visible users page is refetched.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// SweepSchedule is a cron spec for the cache sweeper (e.g. "@every 5m").
	// Env: WORKERS_SWEEP_SCHEDULE
	SweepSchedule string `env:"SWEEP_SCHEDULE"`
}

// FakeAPI holds settings of the development users service.
type FakeAPI struct {
	// Address is the host:port the fake service listens on.
	// Env: FAKEAPI_ADDRESS
	Address string `env:"ADDRESS"`

	// Seed is the number of generated users the service starts with.
	// Env: FAKEAPI_SEED
	Seed int `env:"SEED"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults fill whatever is still zero after merging.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
