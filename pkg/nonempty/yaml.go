package nonempty

import "gopkg.in/yaml.v3"

func (v Slice[T]) MarshalYAML() (any, error) {
	return v.s, nil
}

func (v *Slice[T]) UnmarshalYAML(node *yaml.Node) error {
	var s []T
	err := node.Decode(&s)
	return v.decode("yaml", s, err)
}

func (v Map[K, V]) MarshalYAML() (any, error) {
	return v.m, nil
}

func (v *Map[K, V]) UnmarshalYAML(node *yaml.Node) error {
	var m map[K]V
	err := node.Decode(&m)
	return v.decode("yaml", m, err)
}

func (v Set[T]) MarshalYAML() (any, error) {
	return v.slice(), nil
}

func (v *Set[T]) UnmarshalYAML(node *yaml.Node) error {
	var elems []T
	err := node.Decode(&elems)
	return v.decode("yaml", elems, err)
}

func (v Deque[T]) MarshalYAML() (any, error) {
	return v.slice(), nil
}

func (v *Deque[T]) UnmarshalYAML(node *yaml.Node) error {
	var elems []T
	err := node.Decode(&elems)
	return v.decode("yaml", elems, err)
}

// MarshalYAML encodes the entries as a mapping with keys in ascending order.
func (v SortedMap[K, V]) MarshalYAML() (any, error) {
	if v.m == nil {
		return nil, nil
	}
	node := &yaml.Node{Kind: yaml.MappingNode}
	for k, val := range v.All() {
		var key, value yaml.Node
		if err := key.Encode(k); err != nil {
			return nil, err
		}
		if err := value.Encode(val); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &key, &value)
	}
	return node, nil
}

func (v *SortedMap[K, V]) UnmarshalYAML(node *yaml.Node) error {
	var entries map[K]V
	err := node.Decode(&entries)
	return v.decode("yaml", entries, err)
}

func (v SortedSet[T]) MarshalYAML() (any, error) {
	return v.slice(), nil
}

func (v *SortedSet[T]) UnmarshalYAML(node *yaml.Node) error {
	var elems []T
	err := node.Decode(&elems)
	return v.decode("yaml", elems, err)
}
