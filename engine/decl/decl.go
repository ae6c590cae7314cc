// Package decl holds the declarative UI description consumed by the engine:
// an ordered list of tagged items whose values are scalars or nested lists.
//
// Sources are YAML documents shaped as a sequence of single-tag mappings:
//
//	# sign-in form
//	- vertical:
//	    - label: Login
//	    - label: Password
//	    - button: Sign in
//	      key: signin
//
// The optional "key" entry sets the item's stable lookup key. Scalars tagged
// !!int decode as integers, scalars tagged !ident as identifiers and every
// other scalar as a string.
package decl

import (
	"fmt"
	"strconv"
)

type ValueKind int

const (
	ValueString ValueKind = iota
	ValueInt
	ValueIdent
	ValueList
)

func (k ValueKind) String() string {
	switch k {
	case ValueString:
		return "string"
	case ValueInt:
		return "int"
	case ValueIdent:
		return "ident"
	case ValueList:
		return "list"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

type Value struct {
	Kind ValueKind
	Int  int
	Str  string // string and ident payload
	List []Item
}

func String(s string) Value    { return Value{Kind: ValueString, Str: s} }
func Int(i int) Value          { return Value{Kind: ValueInt, Int: i} }
func Ident(s string) Value     { return Value{Kind: ValueIdent, Str: s} }
func List(items ...Item) Value { return Value{Kind: ValueList, List: items} }
func (v Value) IsList() bool   { return v.Kind == ValueList }
func (v Value) IsScalar() bool { return v.Kind != ValueList }

func (v Value) String() string {
	switch v.Kind {
	case ValueInt:
		return strconv.Itoa(v.Int)
	case ValueIdent:
		return v.Str
	case ValueList:
		return fmt.Sprintf("[%d items]", len(v.List))
	default:
		return strconv.Quote(v.Str)
	}
}

// Item is one tagged entry of a declarative source.
type Item struct {
	Tag   string
	Key   string
	Value Value
	Line  int // 1-based source line, 0 when built in code
}

// New builds an item in code.
func New(tag string, v Value) Item { return Item{Tag: tag, Value: v} }

// WithKey returns a copy of it carrying key.
func (it Item) WithKey(key string) Item { it.Key = key; return it }
