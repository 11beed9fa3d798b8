package config

import (
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/valuekit/pkg/constraint"
)

type validatable interface {
	Validate() error
}

var validatableType = reflect.TypeFor[validatable]()

// rejectNulls fails on an explicit YAML null for a field holding a
// constrained value. yaml.v3 never calls UnmarshalYAML for null nodes, so such
// a field would otherwise be left unconstructed without an error.
func rejectNulls(doc []byte, t reflect.Type) error {
	var root yaml.Node
	if err := yaml.Unmarshal(doc, &root); err != nil {
		return err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil
	}
	return nullFields(root.Content[0], t)
}

func nullFields(node *yaml.Node, t reflect.Type) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		field, ok := yamlField(t, node.Content[i].Value)
		if !ok {
			continue
		}
		value := node.Content[i+1]
		if value.ShortTag() == "!!null" {
			if field.Type.Kind() != reflect.Pointer && field.Type.Implements(validatableType) {
				return constraint.Decode("yaml", field.Type.String(), constraint.ErrNull)
			}
			continue
		}
		if err := nullFields(value, field.Type); err != nil {
			return err
		}
	}
	return nil
}

// yamlField finds the struct field yaml.v3 decodes key into, looking through
// inlined structs.
func yamlField(t reflect.Type, key string) (reflect.StructField, bool) {
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			continue
		}
		if strings.Contains(opts, "inline") {
			inner := f.Type
			if inner.Kind() == reflect.Pointer {
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				if found, ok := yamlField(inner, key); ok {
					return found, true
				}
			}
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		if name == key {
			return f, true
		}
	}
	return reflect.StructField{}, false
}
