package decl

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// KeyField is the mapping entry holding an item's lookup key.
const KeyField = "key"

// ErrSyntax is matched by every *ParseError.
var ErrSyntax = errors.New("malformed ui source")

type ParseError struct {
	Line, Column int
	Msg          string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

func (e *ParseError) Unwrap() error { return ErrSyntax }

func errAt(n *yaml.Node, format string, args ...any) error {
	return &ParseError{Line: n.Line, Column: n.Column, Msg: fmt.Sprintf(format, args...)}
}

// Load reads and parses a YAML ui source file.
func Load(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ui source %q: %w", path, err)
	}
	items, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse ui source %q: %w", path, err)
	}
	return items, nil
}

// Parse decodes a YAML ui source. An empty document yields no items.
func Parse(data []byte) ([]Item, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, errAt(root, "top level must be a sequence of items")
	}
	return decodeList(root)
}

func decodeList(n *yaml.Node) ([]Item, error) {
	items := make([]Item, 0, len(n.Content))
	for _, c := range n.Content {
		it, err := decodeItem(c)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func decodeItem(n *yaml.Node) (Item, error) {
	if n.Kind != yaml.MappingNode {
		return Item{}, errAt(n, "item must be a mapping, got %s", kindName(n.Kind))
	}
	it := Item{Line: n.Line}
	var tagNode *yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Value == KeyField {
			if v.Kind != yaml.ScalarNode {
				return Item{}, errAt(v, "key must be a scalar")
			}
			it.Key = v.Value
			continue
		}
		if tagNode != nil {
			return Item{}, errAt(k, "item has two tags %q and %q", it.Tag, k.Value)
		}
		tagNode = v
		it.Tag = k.Value
	}
	if tagNode == nil {
		return Item{}, errAt(n, "item has no tag")
	}
	v, err := decodeValue(tagNode)
	if err != nil {
		return Item{}, err
	}
	it.Value = v
	return it, nil
}

func decodeValue(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.SequenceNode:
		items, err := decodeList(n)
		if err != nil {
			return Value{}, err
		}
		return List(items...), nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!int":
			// yaml.v3 resolves the YAML 1.2 forms too: 0x10, 0o17, 0b101
			var i int
			if err := n.Decode(&i); err != nil {
				return Value{}, errAt(n, "bad integer %q", n.Value)
			}
			return Int(i), nil
		case "!ident":
			return Ident(n.Value), nil
		case "!!null":
			return List(), nil
		default:
			return String(n.Value), nil
		}
	default:
		return Value{}, errAt(n, "value must be a scalar or a sequence, got %s", kindName(n.Kind))
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
