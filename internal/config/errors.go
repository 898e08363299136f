package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [LoadModuleOptions] when a configuration group is incomplete or invalid.
var (
	// ErrInvalidConfig is the fallback for rules outside any known group.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidGeneratorConfigs indicates invalid generator settings
	// (for example, missing namespace or no modules to generate).
	ErrInvalidGeneratorConfigs = errors.New("invalid generator configuration")
	// ErrInvalidSourceConfigs indicates an unknown source mode or a file mode
	// without a file path.
	ErrInvalidSourceConfigs = errors.New("invalid source configuration")
	// ErrInvalidConsulConfigs indicates invalid consul connection settings
	// (for example, unsupported protocol or zero request timeout).
	ErrInvalidConsulConfigs = errors.New("invalid consul configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidOptionsFile indicates a module options file that cannot be
	// read, decoded or validated.
	ErrInvalidOptionsFile = errors.New("invalid module options file")
)
