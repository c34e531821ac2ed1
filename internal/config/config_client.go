// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

// ClientApp holds dashboard-level settings derived from the shared
// structured config.
type ClientApp struct {
	// ItemsPerPage is the page size of the users table.
	ItemsPerPage int
	// DefaultUserID is the identity picked on first start.
	DefaultUserID int64
	// LogFile is the path of the client log file.
	LogFile string
	// LogLevel is the zerolog level name.
	LogLevel string
	// Version is shown in the footer.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the root URL of the remote user service.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// Backend names the implementation behind the preferences store.
type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendJSON     Backend = "json"
)

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite/PostgreSQL connection string or JSON file path.
	DSN string
	// Backend is derived from the DSN.
	Backend Backend
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// BlobName is the key of the persisted preferences blob.
	BlobName string
}

// ClientCache holds query-cache windows.
type ClientCache struct {
	StaleTime time.Duration
	GCTime    time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the visible page is refetched.
	RefreshInterval time.Duration
	// SweepSchedule is the cron spec of the cache sweeper.
	SweepSchedule string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the remote service location and timeout.
	Adapter ClientAdapter
	// Storage contains preferences store settings.
	Storage ClientStorage
	// Cache contains query cache windows.
	Cache ClientCache
	// Workers contains background job settings.
	Workers ClientWorkers
}

// FakeAPIConfig is the configuration of the development users service.
type FakeAPIConfig struct {
	Address  string
	Seed     int
	LogLevel string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// GetFakeAPIConfig builds the configuration of cmd/fakeapi.
func GetFakeAPIConfig() (*FakeAPIConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	fakeCfg := &FakeAPIConfig{
		Address:  cfg.FakeAPI.Address,
		Seed:     cfg.FakeAPI.Seed,
		LogLevel: cfg.App.LogLevel,
	}
	return fakeCfg, fakeCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			ItemsPerPage:  cfg.App.ItemsPerPage,
			DefaultUserID: cfg.App.DefaultUserID,
			LogFile:       cfg.App.LogFile,
			LogLevel:      cfg.App.LogLevel,
			Version:       cfg.App.Version,
		},
		Adapter: ClientAdapter{
			BaseURL:        strings.TrimRight(cfg.Adapter.BaseURL, "/"),
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN:     cfg.Storage.DB.DSN,
				Backend: BackendFromDSN(cfg.Storage.DB.DSN),
			},
			BlobName: cfg.Storage.BlobName,
		},
		Cache: ClientCache{
			StaleTime: cfg.Cache.StaleTime,
			GCTime:    cfg.Cache.GCTime,
		},
		Workers: ClientWorkers{
			RefreshInterval: cfg.Workers.RefreshInterval,
			SweepSchedule:   cfg.Workers.SweepSchedule,
		},
	}
}

// BackendFromDSN picks the preferences backend for a DSN.
func BackendFromDSN(dsn string) Backend {
	lower := strings.ToLower(dsn)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return BackendPostgres
	case strings.HasSuffix(lower, ".json"):
		return BackendJSON
	default:
		return BackendSQLite
	}
}
