package adapter

import "errors"

var (
	// ErrModuleNotFound is returned by the file source when the requested
	// module is not a top-level property of the file.
	ErrModuleNotFound = errors.New("module not found")
	// ErrModuleNotObject is returned when a module resolves to something
	// other than a JSON object.
	ErrModuleNotObject = errors.New("module document is not an object")
	// ErrInvalidFile is returned when the local configuration file cannot be
	// read or is not a JSON object.
	ErrInvalidFile = errors.New("invalid configuration file")
	// ErrMalformedEnvelope is returned when a Consul K/V response does not
	// carry a base64-encoded JSON object in its first entry.
	ErrMalformedEnvelope = errors.New("malformed consul kv envelope")

	ErrKeyNotFound         = errors.New("consul key not found")
	ErrForbidden           = errors.New("consul access denied")
	ErrConsulUnavailable   = errors.New("consul unavailable")
	ErrInvalidConsulConfig = errors.New("invalid consul configuration")
)
