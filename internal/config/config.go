// Package config loads tool configuration from the environment, with
// optional .env support for local use.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultVaultMount    = "secret"
	defaultVaultPwdField = "password"
)

// Config is the resolved environment configuration for one run.
// Endpoint and credentials may be left empty and collected
// interactively by the audit command.
type Config struct {
	Endpoint     string
	Username     string
	Password     string
	InsecureTLS  bool
	ManifestPath string

	VaultAddr          string
	VaultToken         string
	VaultNamespace     string
	VaultMount         string
	VaultSecretPath    string
	VaultPasswordField string
	VaultTLSSkipVerify bool
}

// Load reads .env (when present) and the VSPHERE_*/VAULT_* variables.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, err
		}
	}

	cfg := Config{
		Endpoint:     strings.TrimSpace(os.Getenv("VSPHERE_ENDPOINT")),
		Username:     strings.TrimSpace(os.Getenv("VSPHERE_USERNAME")),
		Password:     os.Getenv("VSPHERE_PASSWORD"),
		InsecureTLS:  getenvBoolDefault("VSPHERE_INSECURE_TLS", false),
		ManifestPath: strings.TrimSpace(os.Getenv("CIS_PATCH_MANIFEST")),

		VaultAddr:          strings.TrimSpace(os.Getenv("VAULT_ADDR")),
		VaultToken:         strings.TrimSpace(os.Getenv("VAULT_TOKEN")),
		VaultNamespace:     strings.TrimSpace(os.Getenv("VAULT_NAMESPACE")),
		VaultMount:         getenvDefault("VAULT_KV_MOUNT", defaultVaultMount),
		VaultSecretPath:    strings.TrimSpace(os.Getenv("VAULT_SECRET_PATH")),
		VaultPasswordField: getenvDefault("VAULT_PASSWORD_FIELD", defaultVaultPwdField),
		VaultTLSSkipVerify: getenvBoolDefault("VAULT_TLS_SKIP_VERIFY", false),
	}

	return cfg, nil
}

// UseVault reports whether the vSphere password should be read from
// Vault instead of the environment.
func (c Config) UseVault() bool {
	return c.Password == "" && c.VaultAddr != "" && c.VaultSecretPath != ""
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvBoolDefault(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	switch v {
	case "1":
		return true
	case "0":
		return false
	default:
		return def
	}
}
