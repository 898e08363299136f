package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

const defaultDotEnvFile = ".env"

type configBuilder struct {
	configs []*StructuredConfig
	err     error
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
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

// withDotEnv loads a .env file into the process environment without
// overriding variables that are already set. A missing default .env file is
// not an error; a missing explicitly requested one is.
func (b *configBuilder) withDotEnv(path string) *configBuilder {
	explicit := path != ""
	if !explicit {
		path = defaultDotEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return b
		}
		b.err = errors.Join(b.err, fmt.Errorf("error loading env file %s: %w", path, err))
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

func (b *configBuilder) withFlags(flagCfg *StructuredConfig) *configBuilder {
	b.configs = append(b.configs, flagCfg)
	return b
}

// withSettingsFile parses the settings file named by the last layer that sets
// SettingsFilePath and slots it right above the defaults, so environment and
// flags still win over it.
func (b *configBuilder) withSettingsFile() *configBuilder {
	var settingsPath string
	for _, cfg := range b.configs {
		if cfg.SettingsFilePath != "" {
			settingsPath = cfg.SettingsFilePath
		}
	}
	if settingsPath == "" {
		return b
	}

	fileCfg, err := parseSettingsFile(settingsPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	at := 0
	if len(b.configs) > 0 {
		at = 1
	}
	b.configs = append(b.configs[:at], append([]*StructuredConfig{fileCfg}, b.configs[at:]...)...)
	return b
}
