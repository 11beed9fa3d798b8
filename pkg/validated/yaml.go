package validated

import "gopkg.in/yaml.v3"

func (v String[R]) MarshalYAML() (any, error) {
	return v.s, nil
}

func (v *String[R]) UnmarshalYAML(node *yaml.Node) error {
	var s string
	err := node.Decode(&s)
	return v.decode("yaml", s, err)
}
