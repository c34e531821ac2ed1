// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied by [configBuilder.withDefaults].
const (
	DefaultBaseURL         = "https://jsonplaceholder.typicode.com"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultDSN             = "dashboard.db"
	DefaultBlobName        = "app-store"
	DefaultItemsPerPage    = 3
	DefaultUserID          = 1
	DefaultStaleTime       = 5 * time.Minute
	DefaultGCTime          = 10 * time.Minute
	DefaultRefreshInterval = time.Minute
	DefaultSweepSchedule   = "@every 5m"
	DefaultFakeAPIAddress  = "localhost:8080"
	DefaultFakeAPISeed     = 10
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ItemsPerPage:  DefaultItemsPerPage,
			DefaultUserID: DefaultUserID,
			LogLevel:      "debug",
		},
		Storage: Storage{
			DB:       DB{DSN: DefaultDSN},
			BlobName: DefaultBlobName,
		},
		Adapter: Adapter{
			BaseURL:        DefaultBaseURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Cache: Cache{
			StaleTime: DefaultStaleTime,
			GCTime:    DefaultGCTime,
		},
		Workers: Workers{
			RefreshInterval: DefaultRefreshInterval,
			SweepSchedule:   DefaultSweepSchedule,
		},
		FakeAPI: FakeAPI{
			Address: DefaultFakeAPIAddress,
			Seed:    DefaultFakeAPISeed,
		},
	}
}
