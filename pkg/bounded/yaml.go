package bounded

import "gopkg.in/yaml.v3"

func (n Number[T, R]) MarshalYAML() (any, error) {
	return n.v, nil
}

func (n *Number[T, R]) UnmarshalYAML(node *yaml.Node) error {
	var v T
	err := node.Decode(&v)
	return n.decode("yaml", v, err)
}
