package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv(EnvFormat, "")
	t.Setenv(EnvLevel, "")

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv() error = %v", err)
	}
	if cfg.Format != "text" {
		t.Fatalf("Format = %q, want %q", cfg.Format, "text")
	}
	if cfg.Level != slog.LevelWarn {
		t.Fatalf("Level = %v, want %v", cfg.Level, slog.LevelWarn)
	}
}

func TestLoadConfigFromEnv_ValidValues(t *testing.T) {
	t.Setenv(EnvFormat, "json")
	t.Setenv(EnvLevel, "debug")

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv() error = %v", err)
	}
	if cfg.Format != "json" {
		t.Fatalf("Format = %q, want %q", cfg.Format, "json")
	}
	if cfg.Level != slog.LevelDebug {
		t.Fatalf("Level = %v, want %v", cfg.Level, slog.LevelDebug)
	}
}

func TestLoadConfigFromEnv_InvalidFormat(t *testing.T) {
	t.Setenv(EnvFormat, "xml")
	t.Setenv(EnvLevel, "")

	if _, err := LoadConfigFromEnv(); err == nil {
		t.Fatal("LoadConfigFromEnv() accepted invalid format")
	}
}

func TestLoadConfigFromEnv_InvalidLevel(t *testing.T) {
	t.Setenv(EnvFormat, "")
	t.Setenv(EnvLevel, "loud")

	if _, err := LoadConfigFromEnv(); err == nil {
		t.Fatal("LoadConfigFromEnv() accepted invalid level")
	}
}

func TestNewLogger_JSONCarriesStaticAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: "json", Level: slog.LevelInfo}, &buf, "audit")

	logger.Info("session established", "endpoint", "vc.example.test")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("json.Unmarshal(%q) error = %v", buf.String(), err)
	}
	if record["app"] != "cis-vsphere" {
		t.Fatalf("app = %v, want cis-vsphere", record["app"])
	}
	if record["command"] != "audit" {
		t.Fatalf("command = %v, want audit", record["command"])
	}
}

func TestNewLogger_DefaultsCommand(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: "text", Level: slog.LevelInfo}, &buf, "  ")

	logger.Info("hello")

	if !strings.Contains(buf.String(), "command=cis-vsphere") {
		t.Fatalf("output = %q, want default command attr", buf.String())
	}
}
