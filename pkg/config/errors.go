package config

import "errors"

var (
	// ErrParsingConfig is returned when YAML or environment values cannot be
	// decoded into the config struct, including values rejected by a
	// constrained field.
	ErrParsingConfig = errors.New("failed to parse config")

	// ErrLoadingFile is returned when a YAML or .env file cannot be read.
	ErrLoadingFile = errors.New("failed to load config file")

	// ErrConfigNotLoaded is returned when a cached config is missing after a
	// successful parse.
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is provided to a loader.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
