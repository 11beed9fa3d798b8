// Package config loads application configuration into structs whose fields
// can be constrained values.
//
// It wraps `github.com/caarlos0/env/v11`, `github.com/joho/godotenv` and
// `gopkg.in/yaml.v3`:
//
//   - Environment variables are parsed into struct fields via `env` tags.
//     Constrained fields (bounded.Number, validated.String) decode through
//     their UnmarshalText method, so invalid values are rejected at load time.
//   - YAML documents can provide a base layer that the environment
//     overrides; constrained fields decode through UnmarshalYAML, which also
//     covers nonempty collections. An `envDefault` counts as an environment
//     value and overrides YAML too.
//   - `.env` files can be read as a fallback layer.
//
// # Architecture
//
// Load keeps a process-wide cache of parsed struct copies keyed by their
// type name, with one `sync.Once` per type guarding the parse. Parse is the
// uncached building block; it is what Load calls and what tests should use
// with WithEnvironment to stay independent of the process environment.
//
// # Usage
//
//	type ServerConfig struct {
//	    Name    validated.NonBlankString `yaml:"name" env:"SERVICE_NAME"`
//	    Port    bounded.PortNumber       `yaml:"port" env:"PORT"`
//	    Regions nonempty.Slice[string]   `yaml:"regions"`
//	}
//
//	var cfg ServerConfig
//	err := config.Parse(&cfg,
//	    config.WithYAMLFile("config.yaml"),
//	    config.WithEnvFiles(".env"),
//	)
//
// # Error Handling
//
//   - `ErrParsingConfig` - a value could not be decoded or was rejected. The
//     error also matches the underlying constraint error, so
//     `errors.Is(err, constraint.ErrTooHigh)` and `errors.As` into
//     *constraint.RangeError work for both YAML and env values.
//   - `ErrLoadingFile` - a YAML or `.env` file could not be read.
//   - `ErrConfigNotLoaded` - the cache lost a value it just stored.
//   - `ErrNilPointer` - nil pointer passed to a loader.
//
// Returned errors carry a return trace from `braces.dev/errtrace`; print it
// with `errtrace.FormatString(err)`. Error() is unchanged.
//
// # Testing Helpers
//
// Use `Reset()` to clear the cache between tests that call Load.
package config
