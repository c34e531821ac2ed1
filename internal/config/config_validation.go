// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"

	"github.com/robfig/cron/v3"
)

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by every binary.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.ItemsPerPage < 0 {
		return ErrInvalidAppConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || cfg.Storage.BlobName == "" {
		return ErrInvalidStorageConfigs
	}

	u, err := url.Parse(cfg.Adapter.BaseURL)
	if cfg.Adapter.BaseURL == "" || err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Cache.StaleTime < 0 || cfg.Cache.GCTime < 0 {
		return ErrInvalidCacheConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}
	if _, err := cron.ParseStandard(cfg.Workers.SweepSchedule); err != nil {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.ItemsPerPage <= 0 || cfg.App.DefaultUserID <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *FakeAPIConfig) validate() error {
	if cfg.Address == "" || cfg.Seed < 0 {
		return ErrInvalidFakeAPIConfigs
	}
	return nil
}
