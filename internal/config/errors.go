package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or inconsistent. Details are wrapped around them.
var (
	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
