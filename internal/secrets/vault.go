// Package secrets reads the vSphere service-account password from a
// HashiCorp Vault KV v2 secret, for deployments that do not inject it
// through the environment.
package secrets

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	vaultapi "github.com/hashicorp/vault/api"
)

// Options locate one field of one KV v2 secret.
type Options struct {
	Address       string
	Namespace     string
	Token         string
	Mount         string
	SecretPath    string
	Field         string
	TLSSkipVerify bool
}

// Lookup authenticates with a token and reads the configured field.
func Lookup(ctx context.Context, opts Options) (string, error) {
	address := strings.TrimSpace(opts.Address)
	if address == "" {
		return "", errors.New("vault address is required")
	}
	token := strings.TrimSpace(opts.Token)
	if token == "" {
		return "", errors.New("vault token is required")
	}
	mount := strings.Trim(strings.TrimSpace(opts.Mount), "/")
	if mount == "" {
		mount = "secret"
	}
	secretPath := strings.Trim(strings.TrimSpace(opts.SecretPath), "/")
	if secretPath == "" {
		return "", errors.New("vault secret path is required")
	}
	field := strings.TrimSpace(opts.Field)
	if field == "" {
		field = "password"
	}

	cfg := vaultapi.DefaultConfig()
	cfg.Address = address
	cfg.HttpClient = &http.Client{
		Timeout:   30 * time.Second,
		Transport: buildHTTPTransport(opts.TLSSkipVerify),
	}

	client, err := vaultapi.NewClient(cfg)
	if err != nil {
		return "", fmt.Errorf("vault client setup: %w", err)
	}
	if ns := strings.TrimSpace(opts.Namespace); ns != "" {
		client.SetNamespace(ns)
	}
	client.SetToken(token)

	secret, err := client.KVv2(mount).Get(ctx, secretPath)
	if err != nil {
		return "", fmt.Errorf("vault read %s/%s: %w", mount, secretPath, err)
	}
	if secret == nil || secret.Data == nil {
		return "", fmt.Errorf("vault secret %s/%s is empty", mount, secretPath)
	}

	raw, ok := secret.Data[field]
	if !ok {
		return "", fmt.Errorf("vault secret %s/%s has no field %q", mount, secretPath, field)
	}
	value, ok := raw.(string)
	if !ok || value == "" {
		return "", fmt.Errorf("vault secret field %q is not a non-empty string", field)
	}
	return value, nil
}

func buildHTTPTransport(skipVerify bool) http.RoundTripper {
	base, _ := http.DefaultTransport.(*http.Transport)
	if base == nil {
		return http.DefaultTransport
	}
	transport := base.Clone()
	if transport.TLSClientConfig == nil {
		transport.TLSClientConfig = &tls.Config{}
	} else {
		transport.TLSClientConfig = transport.TLSClientConfig.Clone()
	}
	transport.TLSClientConfig.MinVersion = tls.VersionTLS12
	transport.TLSClientConfig.InsecureSkipVerify = skipVerify
	return transport
}
