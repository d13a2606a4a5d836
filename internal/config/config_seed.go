package config

import "fmt"

// GetSeedConfig loads the configuration used by the seeder. Only the
// database DSN is required; flags are owned by the seed command.
func GetSeedConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withJSON().
		withDefaults().
		withValidation(func(cfg *StructuredConfig) error {
			if cfg.Storage.DB.DSN == "" {
				return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
			}
			return nil
		}).
		build()
}
