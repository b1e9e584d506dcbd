package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"offercompare-backend/internal/shared/config"
)

func TestHealthEndpoint(t *testing.T) {
	router := NewRouter(config.Config{LLMProvider: "none", LLMModel: "n/a"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload struct {
		OK       bool   `json:"ok"`
		Provider string `json:"provider"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.OK {
		t.Fatalf("expected ok true")
	}
	if payload.Provider != "none" {
		t.Fatalf("expected provider echoed, got %q", payload.Provider)
	}
}

func TestRouterRegistersCompareRoutes(t *testing.T) {
	router := NewRouter(config.Config{LLMProvider: "none"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/compare/demo", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected demo route wired, got %d", resp.Code)
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{
		"":      ":8080",
		"9000":  ":9000",
		":9000": ":9000",
	}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Errorf("Addr(%q): expected %q, got %q", in, want, got)
		}
	}
}
