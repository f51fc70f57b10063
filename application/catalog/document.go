package catalog

import (
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// node wraps a parsed YAML node. Keys are resolved on access so that a
// missing field is reported only when the import reaches it.
type node struct {
	n *yaml.Node
}

type parameterEntry struct {
	name  string
	value string
}

func parseDocument(body []byte) (node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(body, &doc); err != nil {
		return node{}, errors.SetCustomErrorf(constant.ErrSchema, "Price list is not a valid document: %s", err.Error())
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return node{}, missingField("shop")
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return node{}, errors.SetCustomErrorf(constant.ErrSchema, "Price list must be a mapping.")
	}
	return node{n: root}, nil
}

func missingField(key string) error {
	return errors.SetCustomErrorf(constant.ErrSchema, "Field '%s' missing. Check the file for errors.", key)
}

func invalidField(key string) error {
	return errors.SetCustomErrorf(constant.ErrSchema, "Field '%s' has an invalid value. Check the file for errors.", key)
}

func (d node) get(key string) (node, error) {
	if d.n == nil || d.n.Kind != yaml.MappingNode {
		return node{}, missingField(key)
	}
	for i := 0; i+1 < len(d.n.Content); i += 2 {
		if d.n.Content[i].Value == key {
			return node{n: d.n.Content[i+1]}, nil
		}
	}
	return node{}, missingField(key)
}

func (d node) scalar(key string) (*yaml.Node, error) {
	child, err := d.get(key)
	if err != nil {
		return nil, err
	}
	if child.n.Kind != yaml.ScalarNode || child.n.Tag == "!!null" {
		return nil, invalidField(key)
	}
	return child.n, nil
}

func (d node) String(key string) (string, error) {
	s, err := d.scalar(key)
	if err != nil {
		return "", err
	}
	return s.Value, nil
}

func (d node) Uint(key string) (uint64, error) {
	s, err := d.scalar(key)
	if err != nil {
		return 0, err
	}
	var v uint64
	if err := s.Decode(&v); err != nil {
		return 0, invalidField(key)
	}
	return v, nil
}

func (d node) Int(key string) (int64, error) {
	s, err := d.scalar(key)
	if err != nil {
		return 0, err
	}
	var v int64
	if err := s.Decode(&v); err != nil {
		return 0, invalidField(key)
	}
	return v, nil
}

// Decimal reads the literal text of the scalar so that prices never pass
// through a float.
func (d node) Decimal(key string) (decimal.Decimal, error) {
	s, err := d.scalar(key)
	if err != nil {
		return decimal.Zero, err
	}
	v, err := decimal.NewFromString(s.Value)
	if err != nil || v.IsNegative() {
		return decimal.Zero, invalidField(key)
	}
	return v.Round(2), nil
}

func (d node) Seq(key string) ([]node, error) {
	child, err := d.get(key)
	if err != nil {
		return nil, err
	}
	if child.n.Tag == "!!null" {
		return nil, nil
	}
	if child.n.Kind != yaml.SequenceNode {
		return nil, invalidField(key)
	}
	items := make([]node, 0, len(child.n.Content))
	for _, c := range child.n.Content {
		items = append(items, node{n: c})
	}
	return items, nil
}

// Parameters returns the entries of a name to value mapping in document order.
func (d node) Parameters(key string) ([]parameterEntry, error) {
	child, err := d.get(key)
	if err != nil {
		return nil, err
	}
	if child.n.Tag == "!!null" {
		return nil, nil
	}
	if child.n.Kind != yaml.MappingNode {
		return nil, invalidField(key)
	}
	entries := make([]parameterEntry, 0, len(child.n.Content)/2)
	for i := 0; i+1 < len(child.n.Content); i += 2 {
		k, v := child.n.Content[i], child.n.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return nil, invalidField(k.Value)
		}
		entries = append(entries, parameterEntry{name: k.Value, value: v.Value})
	}
	return entries, nil
}
