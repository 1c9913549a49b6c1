package cmd

import (
	"context"
	"fmt"

	"github.com/gdocmd/gdocmd/internal/config"
	"github.com/gdocmd/gdocmd/internal/gdocs"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newClient loads config and builds an authenticated client. The first run
// walks the user through the browser authorization.
func newClient(ctx context.Context) (*gdocs.Client, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	client, err := gdocs.New(ctx, gdocs.Options{
		CredentialsFile: cfg.Credentials,
		TokenFile:       cfg.Token,
	})
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}
