// Package gdocs is the Google Docs and Drive client layer: OAuth session
// setup, document creation from markdown, folder and sharing operations, and
// the batch-apply boundary the compiler and builder feed into.
package gdocs

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	docs "google.golang.org/api/docs/v1"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Options configures client construction. Both paths are required.
type Options struct {
	CredentialsFile string
	TokenFile       string
}

// Client wraps authenticated Docs and Drive services. Construct it with New;
// there is no package-level session state.
type Client struct {
	docs  *docs.Service
	drive *drive.Service
}

// New authenticates and builds the API services. The first run prints an
// authorization URL and waits for the browser redirect; afterwards the
// cached token is refreshed silently.
func New(ctx context.Context, opts Options) (*Client, error) {
	conf, err := oauthConfig(opts.CredentialsFile)
	if err != nil {
		return nil, err
	}

	tok, err := loadToken(opts.TokenFile)
	if err != nil || (!tok.Valid() && tok.RefreshToken == "") {
		tok, err = authorize(ctx, conf)
		if err != nil {
			return nil, err
		}
		if err := saveToken(opts.TokenFile, tok); err != nil {
			return nil, fmt.Errorf("save token: %w", err)
		}
	}

	src := conf.TokenSource(ctx, tok)
	// Persist the refreshed token so the next run skips the refresh.
	if fresh, err := src.Token(); err == nil && fresh.AccessToken != tok.AccessToken {
		if err := saveToken(opts.TokenFile, fresh); err != nil {
			return nil, fmt.Errorf("save refreshed token: %w", err)
		}
	}

	httpClient := oauth2.NewClient(ctx, src)
	docsSvc, err := docs.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("build docs service: %w", err)
	}
	driveSvc, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("build drive service: %w", err)
	}

	return &Client{docs: docsSvc, drive: driveSvc}, nil
}
