package integration

import (
	"net/http"
	"testing"

	"github.com/Macmac87/ragfin1/pkg/api"
)

func TestHealthCheck(t *testing.T) {
	resp := getURL(t, testEnv.LiveServer.URL+"/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var health api.Health
	decodeJSON(t, resp, &health)

	if health.Status != "healthy" {
		t.Errorf("status = %q, want healthy", health.Status)
	}
	if health.Service != "RAGFIN1" {
		t.Errorf("service = %q, want RAGFIN1", health.Service)
	}
	if health.Version != "1.0.0" {
		t.Errorf("version = %q, want 1.0.0", health.Version)
	}
}

func TestUnknownPathReturns404(t *testing.T) {
	resp := getURL(t, testEnv.LiveServer.URL+"/api/v1/unknown")
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
