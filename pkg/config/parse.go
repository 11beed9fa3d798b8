package config

import (
	"errors"
	"maps"
	"os"
	"reflect"

	"braces.dev/errtrace"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type options struct {
	environment map[string]string
	prefix      string
	yamlDocs    [][]byte
	yamlFiles   []string
	envFiles    []string
}

// Option configures Parse.
type Option func(*options)

// WithEnvironment replaces the process environment with vars.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) {
		o.environment = vars
	}
}

// WithPrefix prepends prefix to every env key.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithYAML decodes doc into the config before the environment is applied.
// Repeated options are applied in order.
func WithYAML(doc []byte) Option {
	return func(o *options) {
		o.yamlDocs = append(o.yamlDocs, doc)
	}
}

// WithYAMLFile is WithYAML for a file on disk. The file must exist.
func WithYAMLFile(path string) Option {
	return func(o *options) {
		o.yamlFiles = append(o.yamlFiles, path)
	}
}

// WithEnvFiles reads .env files as a fallback layer: keys already present in
// the environment win, and earlier files win over later ones.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.envFiles = append(o.envFiles, paths...)
	}
}

// Parse decodes configuration into v without touching the cache.
//
// YAML documents are applied first, then environment variables override
// them. Fields fed from YAML should not carry an envDefault tag, since the
// default counts as an environment value. Every constrained field is
// validated by its own decoder; a rejected value fails the whole parse with
// an error matching ErrParsingConfig and the underlying constraint error.
// An explicit YAML null for a constrained field fails with constraint.ErrNull.
func Parse[T any](v *T, opts ...Option) error {
	if v == nil {
		return errtrace.Wrap(ErrNilPointer)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	docs := o.yamlDocs
	for _, path := range o.yamlFiles {
		doc, err := os.ReadFile(path)
		if err != nil {
			return errtrace.Wrap(errors.Join(ErrLoadingFile, err))
		}
		docs = append(docs, doc)
	}
	for _, doc := range docs {
		if err := yaml.Unmarshal(doc, v); err != nil {
			return errtrace.Wrap(errors.Join(ErrParsingConfig, err))
		}
		if err := rejectNulls(doc, reflect.TypeFor[T]()); err != nil {
			return errtrace.Wrap(errors.Join(ErrParsingConfig, err))
		}
	}

	environ, err := o.environ()
	if err != nil {
		return errtrace.Wrap(errors.Join(ErrLoadingFile, err))
	}

	if err := env.ParseWithOptions(v, env.Options{
		Environment: environ,
		Prefix:      o.prefix,
	}); err != nil {
		return errtrace.Wrap(errors.Join(append([]error{ErrParsingConfig, err}, parseCauses(err)...)...))
	}
	return nil
}

func (o options) environ() (map[string]string, error) {
	vars := o.environment
	if vars == nil {
		vars = env.ToMap(os.Environ())
	}
	if len(o.envFiles) == 0 {
		return vars, nil
	}

	vars = maps.Clone(vars)
	for _, path := range o.envFiles {
		fileVars, err := godotenv.Read(path)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		for k, val := range fileVars {
			if _, ok := vars[k]; !ok {
				vars[k] = val
			}
		}
	}
	return vars, nil
}

// parseCauses digs the decoder errors out of env's ParseError values, which
// do not unwrap on their own.
func parseCauses(err error) []error {
	var causes []error
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return nil
	}
	for _, e := range agg.Errors {
		var perr env.ParseError
		if errors.As(e, &perr) && perr.Err != nil {
			causes = append(causes, perr.Err)
		}
	}
	return causes
}
