// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

// validate checks that the final merged [StructuredConfig] can run the server.
func (cfg *StructuredConfig) validate() error {
	app := cfg.App
	if !slices.Contains([]string{EnvDevelopment, EnvProduction, EnvTest}, app.Environment) {
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, app.Environment)
	}
	if app.BotToken == "" && !app.SkipSignature {
		return fmt.Errorf("%w: bot token is required", ErrInvalidAppConfigs)
	}
	if app.SkipSignature && !app.IsDevelopment() {
		return fmt.Errorf("%w: signature checks may only be skipped in development", ErrInvalidAppConfigs)
	}
	if app.InitDataMaxAge < 0 {
		return fmt.Errorf("%w: init data max age must not be negative", ErrInvalidAppConfigs)
	}
	if app.TokenSignKey == "" || app.TokenIssuer == "" || app.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	photos := cfg.Storage.Photos
	switch photos.Driver {
	case PhotoDriverLocal:
		if photos.Dir == "" {
			return fmt.Errorf("%w: photo directory is required", ErrInvalidStorageConfigs)
		}
	case PhotoDriverS3:
		if photos.S3.Bucket == "" || photos.PublicURL == "" {
			return fmt.Errorf("%w: s3 bucket and public url are required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown photo driver %q", ErrInvalidStorageConfigs, photos.Driver)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and request timeout are required", ErrInvalidServerConfigs)
	}

	return nil
}
