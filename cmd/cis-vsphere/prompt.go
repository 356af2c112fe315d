package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/karimhabush/cis-vsphere/internal/config"
	"github.com/karimhabush/cis-vsphere/internal/secrets"
)

type credentials struct {
	Endpoint string
	Username string
	Password string
}

// resolveCredentials assembles the connection credentials from the
// environment, Vault, and finally an interactive prompt for whatever
// is still missing.
func resolveCredentials(ctx context.Context, cfg config.Config, cmd *cobra.Command) (credentials, error) {
	creds := credentials{
		Endpoint: cfg.Endpoint,
		Username: cfg.Username,
		Password: cfg.Password,
	}

	if cfg.UseVault() {
		password, err := secrets.Lookup(ctx, secrets.Options{
			Address:       cfg.VaultAddr,
			Token:         cfg.VaultToken,
			Namespace:     cfg.VaultNamespace,
			Mount:         cfg.VaultMount,
			SecretPath:    cfg.VaultSecretPath,
			Field:         cfg.VaultPasswordField,
			TLSSkipVerify: cfg.VaultTLSSkipVerify,
		})
		if err != nil {
			return credentials{}, fmt.Errorf("vault lookup: %w", err)
		}
		creds.Password = password
	}

	if creds.Endpoint != "" && creds.Username != "" && creds.Password != "" {
		return creds, nil
	}
	if err := promptCredentials(&creds, cmd); err != nil {
		return credentials{}, err
	}

	creds.Endpoint = strings.TrimSpace(creds.Endpoint)
	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Endpoint == "" || creds.Username == "" || creds.Password == "" {
		return credentials{}, fmt.Errorf("endpoint, username and password are required")
	}
	return creds, nil
}

func promptCredentials(creds *credentials, cmd *cobra.Command) error {
	in := cmd.InOrStdin()

	var fields []huh.Field
	if creds.Endpoint == "" {
		fields = append(fields, huh.NewInput().
			Title("vCenter / ESXi endpoint").
			Placeholder("vcenter.example.com").
			Value(&creds.Endpoint).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("endpoint is required")
				}
				return nil
			}))
	}
	if creds.Username == "" {
		fields = append(fields, huh.NewInput().
			Title("Username").
			Placeholder("administrator@vsphere.local").
			Value(&creds.Username).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("username is required")
				}
				return nil
			}))
	}
	if creds.Password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&creds.Password).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("password is required")
				}
				return nil
			}))
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithInput(in).
		WithOutput(cmd.OutOrStdout())

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return fmt.Errorf("credential prompt: %w", err)
	}
	return nil
}
