// Package registry resolves the metadata type registry into an arena of
// TypeDef descriptors. Resolution is memoized, validates graph closure,
// rejects recursion that no sequence indirection breaks, and records the
// order named declarations must be emitted in.
package registry

import (
	"fmt"

	"github.com/alfellati/ink-wrapper/internal/metadata"
)

// TypeID aliases the document id space; the arena never renumbers.
type TypeID = metadata.TypeID

// Kind enumerates every resolved type shape.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindPrimitive
	KindComposite
	KindUnion
	KindSequence
	KindArray
	KindTuple
	KindCompact
	KindOption
	KindResult
	KindAccountID
	KindHash
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindPrimitive:
		return "primitive"
	case KindComposite:
		return "composite"
	case KindUnion:
		return "union"
	case KindSequence:
		return "sequence"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	case KindCompact:
		return "compact"
	case KindOption:
		return "option"
	case KindResult:
		return "result"
	case KindAccountID:
		return "account_id"
	case KindHash:
		return "hash"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Prim enumerates supported primitive types.
type Prim uint8

const (
	PrimInvalid Prim = iota
	PrimBool
	PrimChar
	PrimStr
	PrimU8
	PrimU16
	PrimU32
	PrimU64
	PrimU128
	PrimI8
	PrimI16
	PrimI32
	PrimI64
	PrimI128
)

var primNames = map[string]Prim{
	"bool": PrimBool,
	"char": PrimChar,
	"str":  PrimStr,
	"u8":   PrimU8,
	"u16":  PrimU16,
	"u32":  PrimU32,
	"u64":  PrimU64,
	"u128": PrimU128,
	"i8":   PrimI8,
	"i16":  PrimI16,
	"i32":  PrimI32,
	"i64":  PrimI64,
	"i128": PrimI128,
}

// ParsePrim maps a declared primitive name to its Prim, reporting whether
// the name is supported. u256/i256 deliberately stay unsupported.
func ParsePrim(name string) (Prim, bool) {
	p, ok := primNames[name]
	return p, ok
}

func (p Prim) String() string {
	for name, pp := range primNames {
		if pp == p {
			return name
		}
	}
	return fmt.Sprintf("Prim(%d)", p)
}

// IsInteger reports whether p may appear under compact encoding.
func (p Prim) IsInteger() bool {
	switch p {
	case PrimU8, PrimU16, PrimU32, PrimU64, PrimU128,
		PrimI8, PrimI16, PrimI32, PrimI64, PrimI128:
		return true
	}
	return false
}

// Field is one resolved composite or variant field. Name is the assigned Go
// field name; RawName keeps the declared label and is empty for tuple-struct
// fields.
type Field struct {
	Name    string
	RawName string
	Type    TypeID
}

// UnionVariant is one resolved enum arm. Index is the declared discriminant
// byte written on the wire.
type UnionVariant struct {
	Name    string
	RawName string
	Index   uint8
	Fields  []Field
}

// TypeDef is one resolved arena entry. Only the fields relevant to Kind are
// populated.
type TypeDef struct {
	Kind     Kind
	Prim     Prim           // KindPrimitive
	Name     string         // KindComposite, KindUnion: assigned Go type name
	Path     []string       // declared path, kept for diagnostics
	Fields   []Field        // KindComposite
	Variants []UnionVariant // KindUnion
	Elem     TypeID         // KindSequence, KindArray, KindCompact, KindOption
	Len      uint32         // KindArray
	Elems    []TypeID       // KindTuple
	Ok       TypeID         // KindResult
	Err      TypeID         // KindResult
}

// Named reports whether the definition is emitted as its own declaration.
func (d TypeDef) Named() bool {
	return d.Kind == KindComposite || d.Kind == KindUnion
}
