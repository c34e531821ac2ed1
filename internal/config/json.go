// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case keys and
// [Duration] fields so durations can be written as "10s" in the file.
type StructuredJSONConfig struct {
	App struct {
		ItemsPerPage  int    `json:"items_per_page"`
		DefaultUserID int64  `json:"default_user_id"`
		LogFile       string `json:"log_file"`
		LogLevel      string `json:"log_level"`
		Version       string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		BlobName string `json:"blob_name"`
	} `json:"storage,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Cache struct {
		StaleTime Duration `json:"stale_time"`
		GCTime    Duration `json:"gc_time"`
	} `json:"cache,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
		SweepSchedule   string   `json:"sweep_schedule"`
	} `json:"workers,omitempty"`

	FakeAPI struct {
		Address string `json:"address"`
		Seed    int    `json:"seed"`
	} `json:"fakeapi,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			ItemsPerPage:  jsonCfg.App.ItemsPerPage,
			DefaultUserID: jsonCfg.App.DefaultUserID,
			LogFile:       jsonCfg.App.LogFile,
			LogLevel:      jsonCfg.App.LogLevel,
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB:       DB{DSN: jsonCfg.Storage.DB.DSN},
			BlobName: jsonCfg.Storage.BlobName,
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Cache: Cache{
			StaleTime: time.Duration(jsonCfg.Cache.StaleTime),
			GCTime:    time.Duration(jsonCfg.Cache.GCTime),
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
			SweepSchedule:   jsonCfg.Workers.SweepSchedule,
		},
		FakeAPI: FakeAPI{
			Address: jsonCfg.FakeAPI.Address,
			Seed:    jsonCfg.FakeAPI.Seed,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
