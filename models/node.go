// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NodeKind identifies which variant of [Node] is populated.
type NodeKind int

const (
	// KindNull is a JSON null.
	KindNull NodeKind = iota
	// KindBool is a JSON true/false; the value lives in Node.Bool.
	KindBool
	// KindNumber is a JSON number; its literal text lives in Node.Number.
	KindNumber
	// KindString is a JSON string; the decoded value lives in Node.String.
	KindString
	// KindArray is a JSON array; elements live in Node.Items.
	KindArray
	// KindObject is a JSON object; members live in Node.Fields in document order.
	KindObject
)

// String returns the lower-case JSON name of the kind.
func (k NodeKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Node is one position of a parsed configuration document.
//
// Only the fields that belong to Kind are meaningful. Nodes are built once by
// the document parser and treated as immutable afterwards.
type Node struct {
	Kind NodeKind

	Bool   bool
	Number string // literal text, e.g. "8080", "1.5", "1e3"
	String string

	Items  []*Node
	Fields []Field
}

// Field is a single object member. Fields keep the order in which they
// appeared in the source document.
type Field struct {
	Key   string
	Value *Node
}

// IsScalar reports whether n is a bool, number or string.
func (n *Node) IsScalar() bool {
	if n == nil {
		return false
	}
	return n.Kind == KindBool || n.Kind == KindNumber || n.Kind == KindString
}

// Field returns the value of the first member named key.
// The second result is false when n is not an object or has no such member.
func (n *Node) Field(key string) (*Node, bool) {
	if n == nil || n.Kind != KindObject {
		return nil, false
	}
	for _, f := range n.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// NullNode returns a new JSON null node.
func NullNode() *Node { return &Node{Kind: KindNull} }

// BoolNode returns a new JSON boolean node.
func BoolNode(v bool) *Node { return &Node{Kind: KindBool, Bool: v} }

// NumberNode returns a new JSON number node holding the literal text.
func NumberNode(literal string) *Node { return &Node{Kind: KindNumber, Number: literal} }

// StringNode returns a new JSON string node.
func StringNode(v string) *Node { return &Node{Kind: KindString, String: v} }

// ArrayNode returns a new JSON array node.
func ArrayNode(items ...*Node) *Node { return &Node{Kind: KindArray, Items: items} }

// ObjectNode returns a new JSON object node with members in the given order.
func ObjectNode(fields ...Field) *Node { return &Node{Kind: KindObject, Fields: fields} }
