// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command fakeapi serves an in-memory users collection compatible with the
// JSONPlaceholder /users resource, for local development of the dashboard.
package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-dashboard/internal/config"
	"github.com/MKhiriev/go-user-dashboard/internal/fakeapi"
	handler "github.com/MKhiriev/go-user-dashboard/internal/handler/http"
	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/internal/server"
	"github.com/MKhiriev/go-user-dashboard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(info)

	log := logger.NewLogger("fakeapi")
	cfg, err := config.GetFakeAPIConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.LogLevel)

	log.Debug().Any("config", cfg).Msg("received configs")

	users := fakeapi.NewMemoryRepository(fakeapi.Seed(cfg.Seed), log.GetChildLogger())
	h := handler.NewHandler(users, info.BuildVersion(), log)

	srv, err := server.NewServer(h.Init(), cfg.Address, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
