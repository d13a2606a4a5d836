package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration of the development API client.
type ClientConfig struct {
	// BotToken signs the init data the client sends, the same way the
	// Telegram app would.
	BotToken string

	// BaseURL is the API root.
	BaseURL string

	// RequestTimeout bounds a single request.
	RequestTimeout time.Duration
}

// GetClientConfig builds the client view from .env, environment variables,
// an optional JSON file and defaults. Command-line flags are owned by the
// client's command tree and applied on top by the caller.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return &ClientConfig{
		BotToken:       cfg.App.BotToken,
		BaseURL:        cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
	}, nil
}

// Validate checks that the client can sign and send requests.
func (c *ClientConfig) Validate() error {
	if c.BaseURL == "" || c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: base url and request timeout are required", ErrInvalidAdapterConfigs)
	}
	if c.BotToken == "" {
		return fmt.Errorf("%w: bot token is required", ErrInvalidAppConfigs)
	}
	return nil
}
