package secrets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLookup_ValidatesOptions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		opts Options
	}{
		{"missing address", Options{Token: "t", SecretPath: "infra/vsphere"}},
		{"missing token", Options{Address: "https://vault.example.test", SecretPath: "infra/vsphere"}},
		{"missing secret path", Options{Address: "https://vault.example.test", Token: "t"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Lookup(context.Background(), tc.opts); err == nil {
				t.Fatal("Lookup() accepted incomplete options")
			}
		})
	}
}

func TestLookup_ReadsKVv2Field(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/secret/data/infra/vsphere" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if got := r.Header.Get("X-Vault-Token"); got != "s.token" {
			t.Errorf("X-Vault-Token = %q, want %q", got, "s.token")
		}
		writeJSON(t, w, map[string]any{
			"data": map[string]any{
				"data":     map[string]any{"password": "hunter2", "username": "svc-audit"},
				"metadata": map[string]any{"version": 3},
			},
		})
	}))
	defer server.Close()

	got, err := Lookup(context.Background(), Options{
		Address:    server.URL,
		Token:      "s.token",
		Mount:      "secret",
		SecretPath: "infra/vsphere",
		Field:      "password",
	})
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if got != "hunter2" {
		t.Fatalf("Lookup() = %q, want %q", got, "hunter2")
	}
}

func TestLookup_MissingField(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"data": map[string]any{
				"data":     map[string]any{"username": "svc-audit"},
				"metadata": map[string]any{"version": 1},
			},
		})
	}))
	defer server.Close()

	_, err := Lookup(context.Background(), Options{
		Address:    server.URL,
		Token:      "s.token",
		SecretPath: "infra/vsphere",
	})
	if err == nil || !strings.Contains(err.Error(), "no field") {
		t.Fatalf("Lookup() error = %v, want missing-field error", err)
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, payload any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		t.Fatalf("encode response: %v", err)
	}
}
