package server

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"planetarium/internal/catalog"
	"planetarium/internal/config"
	"planetarium/internal/swapi"
)

func TestRoutesRegistered(t *testing.T) {
	cfg := &config.Config{Env: "development", ServerAddr: ":0"}
	svc := catalog.NewService(swapi.NewClient(time.Second), "http://localhost:0/api/planets/")

	srv := New(cfg)
	srv.RegisterRoutes(svc)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{"GET", "/healthz", http.StatusOK},
		{"GET", "/metrics", http.StatusOK},
		{"GET", "/api/planets", http.StatusOK},
		{"GET", "/api/terrains", http.StatusOK},
		{"GET", "/api/status", http.StatusOK},
		{"GET", "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		req, _ := http.NewRequest(tt.method, tt.path, nil)
		resp, err := srv.App.Test(req)
		if err != nil {
			t.Fatalf("%s %s failed: %v", tt.method, tt.path, err)
		}
		if resp.StatusCode != tt.want {
			t.Errorf("%s %s status = %d, want %d", tt.method, tt.path, resp.StatusCode, tt.want)
		}
	}
}

func TestErrorHandlerEnvelope(t *testing.T) {
	cfg := &config.Config{Env: "development"}
	srv := New(cfg)

	req, _ := http.NewRequest("GET", "/missing", nil)
	resp, err := srv.App.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	var envelope struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("response is not the JSON error envelope: %v", err)
	}
	if envelope.Status != "error" || envelope.Error == "" {
		t.Errorf("envelope = %+v, want status=error with message", envelope)
	}
}
