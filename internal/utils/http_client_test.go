// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-dashboard/internal/logger"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost", time.Second, logger.Nop())

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Config(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080/", 3*time.Second, nil)

	if client.BaseURL != "http://localhost:8080" {
		t.Errorf("expected trailing slash to be trimmed, got %s", client.BaseURL)
	}
	if client.GetClient().Timeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %s", client.GetClient().Timeout)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	// Create two clients and make sure they don't share the same underlying resty.Client
	client1 := NewHTTPClient("http://a", time.Second, nil)
	client2 := NewHTTPClient("http://a", time.Second, nil)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestHTTPClient_PropagatesTraceID(t *testing.T) {
	var gotTraceID, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTraceID = r.Header.Get(TraceIDHeader)
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, logger.Nop())
	ctx := WithTraceID(context.Background(), "trace-1")

	resp, err := client.R().SetContext(ctx).Get("/ping")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		t.Errorf("expected 204, got %d", resp.StatusCode())
	}
	if gotTraceID != "trace-1" {
		t.Errorf("expected trace id header 'trace-1', got '%s'", gotTraceID)
	}
	if gotAccept != "application/json" {
		t.Errorf("expected Accept 'application/json', got '%s'", gotAccept)
	}
}

func TestHTTPClient_NoTraceIDWithoutContextValue(t *testing.T) {
	var present bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header[TraceIDHeader]
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, logger.Nop())
	if _, err := client.R().SetContext(context.Background()).Get("/ping"); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if present {
		t.Error("expected no trace id header")
	}
}
