package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleConfig = "# Linux 5.4.0 Kernel Configuration\nCONFIG_FOO=y\n# CONFIG_BAR=n\n"

func TestHealthCheck(t *testing.T) {
	s := NewServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status = %q, want healthy", body["status"])
	}
}

func TestAnalyzePlaintextConfig(t *testing.T) {
	s := NewServer(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze?filename=config-5.4.0",
		bytes.NewReader([]byte(sampleConfig)))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var result struct {
		Name           string   `json:"name"`
		IsKernelConfig bool     `json:"is_kernel_config"`
		Summary        []string `json:"summary"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if result.Name != "config-5.4.0" {
		t.Errorf("name = %q, want config-5.4.0", result.Name)
	}
	if !result.IsKernelConfig {
		t.Error("is_kernel_config = false, want true")
	}
	if len(result.Summary) != 1 || result.Summary[0] != "Kernel Config" {
		t.Errorf("summary = %v, want ['Kernel Config']", result.Summary)
	}
}

func TestAnalyzeWithMimeOverride(t *testing.T) {
	s := NewServer(nil)

	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/analyze?filename=config&mime=application/octet-stream",
		bytes.NewReader([]byte(sampleConfig)))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var result struct {
		IsKernelConfig bool `json:"is_kernel_config"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if result.IsKernelConfig {
		t.Error("is_kernel_config = true, want false with binary MIME override")
	}
}

func TestAnalyzeEmptyBody(t *testing.T) {
	s := NewServer(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader(nil))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestAnalyzeMethodNotAllowed(t *testing.T) {
	s := NewServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyze", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
