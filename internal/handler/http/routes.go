// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MKhiriev/go-user-dashboard/internal/utils"
)

// Init builds the router of the fake users service.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	// browser clients read the total count and trace id from the response
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Encoding", utils.TraceIDHeader},
		ExposedHeaders: []string{totalCountHeader, utils.TraceIDHeader},
		MaxAge:         300,
	}))

	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Post("/", h.createUser)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getUser)
			r.Put("/", h.updateUser)
			r.Patch("/", h.updateUser)
			r.Delete("/", h.deleteUser)
		})
	})
	router.Get("/version", h.getVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
