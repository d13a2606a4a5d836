package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

type configBuilder struct {
	configs  []*StructuredConfig
	validate func(*StructuredConfig) error
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if b.validate != nil {
		if err := b.validate(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// withDotEnv loads variables from path into the process environment.
// Variables already set are kept. A missing file is not an error.
func (b *configBuilder) withDotEnv(path string) *configBuilder {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		b.err = errors.Join(b.err, fmt.Errorf("error loading %s: %w", path, err))
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaults())
	return b
}

func (b *configBuilder) withValidation(validate func(*StructuredConfig) error) *configBuilder {
	b.validate = validate
	return b
}
