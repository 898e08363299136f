// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for configgen.
// It is populated by merging built-in defaults, an optional settings file,
// environment variables (optionally seeded from a .env file) and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// Generator holds output-related settings: target namespace, modules
	// and their filter options, output path.
	Generator Generator `envPrefix:"GENERATOR_"`

	// Source selects where module documents come from.
	Source Source `envPrefix:"SOURCE_"`

	// Consul holds the K/V endpoint used by the consul source.
	Consul Consul `envPrefix:"CONSUL_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// SettingsFilePath is the optional path to a settings file in the
	// appsettings.json layout. Populated via the CONFIG environment variable
	// or the -c / --config flag.
	SettingsFilePath string `env:"CONFIG"`

	// DotEnvFilePath is the .env file loaded into the process environment
	// before environment variables are read. Only settable by flag.
	DotEnvFilePath string
}

// Generator holds the code generation settings.
type Generator struct {
	// Namespace is the C# namespace of the generated file.
	// Env: GENERATOR_NAMESPACE
	Namespace string `env:"NAMESPACE" validate:"required"`

	// Modules lists the modules to generate, in output order. Ignored when
	// OptionsFilePath is set.
	// Env: GENERATOR_MODULES (comma separated)
	Modules []string `env:"MODULES" envSeparator:"," validate:"required_without=OptionsFilePath,dive,required"`

	// GlobalModule, when set, is generated first and filtered down to the
	// AppSettings section and the DomainService entries of Modules.
	// Env: GENERATOR_GLOBAL_MODULE
	GlobalModule string `env:"GLOBAL_MODULE"`

	// OptionsFilePath points to a YAML or JSON file listing module options
	// with include/exclude rules.
	// Env: GENERATOR_OPTIONS_FILE
	OptionsFilePath string `env:"OPTIONS_FILE"`

	// OutputPath is the file the generated code is written to; "-" writes
	// to stdout.
	// Env: GENERATOR_OUTPUT
	OutputPath string `env:"OUTPUT" validate:"required"`

	// Concurrency bounds the number of modules fetched in parallel.
	// Env: GENERATOR_CONCURRENCY
	Concurrency int `env:"CONCURRENCY" validate:"gte=1"`
}

// Source selects the module document source.
type Source struct {
	// Mode is either "consul" or "file".
	// Env: SOURCE_MODE
	Mode string `env:"MODE" validate:"oneof=consul file"`

	// FilePath is the JSON file read in file mode. Each module is the
	// top-level property of the same name.
	// Env: SOURCE_FILE
	FilePath string `env:"FILE" validate:"required_if=Mode file"`
}

// Consul holds connection settings for the Consul K/V HTTP API.
type Consul struct {
	// Protocol is "http" or "https".
	// Env: CONSUL_PROTOCOL
	Protocol string `env:"PROTOCOL" validate:"oneof=http https"`

	// Address is the host name or IP of the agent. A full URL is accepted
	// as well, in which case Protocol and Port are ignored.
	// Env: CONSUL_ADDRESS
	Address string `env:"ADDRESS" validate:"required"`

	// Port is the HTTP API port.
	// Env: CONSUL_PORT
	Port int `env:"PORT" validate:"gte=0,lte=65535"`

	// Token is sent as X-Consul-Token when non-empty.
	// Env: CONSUL_TOKEN
	Token string `env:"TOKEN"`

	// Datacenter is passed as the dc query parameter when non-empty.
	// Env: CONSUL_DATACENTER
	Datacenter string `env:"DATACENTER"`

	// RequestTimeout bounds a single K/V request (e.g. "5s").
	// Env: CONSUL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gt=0"`

	// RetryCount is the number of retries after a transport error or a 5xx
	// response.
	// Env: CONSUL_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT" validate:"gte=0"`

	// RetryWaitTime is the initial back-off between retries.
	// Env: CONSUL_RETRY_WAIT_TIME
	RetryWaitTime time.Duration `env:"RETRY_WAIT_TIME" validate:"gte=0"`
}

// Log holds logger settings.
type Log struct {
	// Level is one of trace, debug, info, warn, error.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" validate:"oneof=trace debug info warn error"`
}

// Source modes.
const (
	SourceModeConsul = "consul"
	SourceModeFile   = "file"
)

// StdoutPath makes the generated code go to stdout instead of a file.
const StdoutPath = "-"

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Generator: Generator{
			OutputPath:  "GeneratedConfig.g.cs",
			Concurrency: 4,
		},
		Source: Source{
			Mode: SourceModeConsul,
		},
		Consul: Consul{
			Protocol:       "http",
			Address:        "127.0.0.1",
			Port:           8500,
			RequestTimeout: 15 * time.Second,
			RetryCount:     2,
			RetryWaitTime:  200 * time.Millisecond,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (later sources override
// non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. Settings file (path resolved from sources 3 and 4)
//  3. Environment variables, after loading the .env file
//  4. Command-line flags (flagCfg, usually produced by [BindFlags])
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	if flagCfg == nil {
		flagCfg = &StructuredConfig{}
	}

	return newConfigBuilder().
		withDefaults().
		withDotEnv(flagCfg.DotEnvFilePath).
		withEnv().
		withFlags(flagCfg).
		withSettingsFile().
		build()
}
