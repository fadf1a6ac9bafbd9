package jsonvalue

import (
	"bytes"
	"fmt"
	"strconv"

	"go.yaml.in/yaml/v4"
)

// Parse parses raw document bytes into a Value tree. Object member order is
// preserved and integral scalars keep their exact representation.
//
// Errors carry the line and column of the offending construct. Malformed
// UTF-8 and unterminated structures are parse errors, never partial results.
func Parse(data []byte) (Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Value{}, fmt.Errorf("jsonvalue: %w", err)
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return Value{}, nil
		}
		node = node.Content[0]
	}
	if node.Kind == 0 {
		// Empty input decodes to a zero node.
		return Value{}, nil
	}
	return fromNode(node)
}

func fromNode(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.AliasNode:
		if node.Alias == nil {
			return Value{}, locErrorf(node, "unresolvable alias")
		}
		return fromNode(node.Alias)

	case yaml.ScalarNode:
		return fromScalar(node)

	case yaml.SequenceNode:
		items := make([]Value, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := fromNode(child)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return NewArray(items...), nil

	case yaml.MappingNode:
		members := make([]Member, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			if keyNode.Kind != yaml.ScalarNode {
				return Value{}, locErrorf(keyNode, "object key must be a string")
			}
			val, err := fromNode(node.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{Key: keyNode.Value, Value: val})
		}
		return NewObject(members...), nil

	default:
		return Value{}, locErrorf(node, "unsupported node kind %d", node.Kind)
	}
}

func fromScalar(node *yaml.Node) (Value, error) {
	switch node.Tag {
	case "!!null":
		return Value{}, nil

	case "!!bool":
		b, err := strconv.ParseBool(node.Value)
		if err != nil {
			// "yes"/"on" style booleans from YAML sources.
			b = node.Value == "yes" || node.Value == "on" ||
				node.Value == "Yes" || node.Value == "On"
		}
		return NewBool(b), nil

	case "!!int":
		if i, err := strconv.ParseInt(node.Value, 0, 64); err == nil {
			return NewInt(i), nil
		}
		if u, err := strconv.ParseUint(node.Value, 0, 64); err == nil {
			return NewUint(u), nil
		}
		// Integers beyond uint64 fall back to the float representation.
		if f, err := strconv.ParseFloat(node.Value, 64); err == nil {
			return NewFloat(f), nil
		}
		return Value{}, locErrorf(node, "invalid integer %q", node.Value)

	case "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return Value{}, locErrorf(node, "invalid number %q", node.Value)
		}
		return NewFloat(f), nil

	default:
		return NewString(node.Value), nil
	}
}

func locErrorf(node *yaml.Node, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("jsonvalue: line %d, column %d: %s", node.Line, node.Column, msg)
}

// MarshalJSON encodes the value as compact JSON, keeping object member
// order. Exact integers are emitted without a decimal point.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		switch v.num {
		case numInt:
			buf.WriteString(strconv.FormatInt(v.i, 10))
		case numUint:
			buf.WriteString(strconv.FormatUint(v.u, 10))
		default:
			buf.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
		}
	case KindString:
		buf.WriteString(strconv.Quote(v.str))
	case KindArray:
		buf.WriteByte('[')
		for i := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := v.arr[i].encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i := range v.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(strconv.Quote(v.members[i].Key))
			buf.WriteByte(':')
			if err := v.members[i].Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("jsonvalue: cannot encode kind %d", v.kind)
	}
	return nil
}
