package config

import (
	"fmt"
	"reflect"
	"sync"

	"braces.dev/errtrace"
	"github.com/joho/godotenv"
)

// configCache stores parsed configs keyed by type name.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	defaultEnvLoaded sync.Once
)

// Load parses the process environment into v, once per config type.
//
// The default .env file is loaded into the process environment on first use
// (a missing file is fine). Constrained fields validate through their
// UnmarshalText method, so an out-of-range port or a blank name fails here
// instead of deep inside the application. Once a type is loaded successfully,
// later calls copy the cached value.
//
// Example:
//
//	type ServerConfig struct {
//		Port    bounded.PortNumber       `env:"PORT" envDefault:"8080"`
//		Name    validated.NonBlankString `env:"SERVICE_NAME,required"`
//		Sampled bounded.Probability      `env:"TRACE_SAMPLE" envDefault:"0.1"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return errtrace.Wrap(ErrNilPointer)
	}

	typeName := getTypeName[T]()

	if cached, ok := lookup[T](typeName); ok {
		*v = cached
		return nil
	}

	globalCache.mu.Lock()
	once, exists := globalCache.onces[typeName]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[typeName] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		var parsed T
		if err = Parse(&parsed); err != nil {
			return
		}

		globalCache.mu.Lock()
		globalCache.values[typeName] = parsed
		globalCache.mu.Unlock()
	})

	if err != nil {
		// A failed parse must not poison the type; the next call retries.
		globalCache.mu.Lock()
		delete(globalCache.onces, typeName)
		globalCache.mu.Unlock()
		return errtrace.Wrap(err)
	}

	if cached, ok := lookup[T](typeName); ok {
		*v = cached
		return nil
	}
	return errtrace.Wrap(ErrConfigNotLoaded)
}

func lookup[T any](typeName string) (T, bool) {
	globalCache.mu.RLock()
	defer globalCache.mu.RUnlock()

	cached, ok := globalCache.values[typeName]
	if !ok {
		var zero T
		return zero, false
	}
	return cached.(T), true
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// Reset drops every cached config. Intended for tests.
func Reset() {
	globalCache.mu.Lock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
	globalCache.mu.Unlock()
}

func getTypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
