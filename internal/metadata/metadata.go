// Package metadata models the contract ABI document (ink! v4) and parses it
// from JSON. Parsing validates shapes and required fields only; reference
// resolution across the type registry belongs to internal/registry.
package metadata

import (
	"encoding/json"
	"errors"
)

// TypeID is a type registry id exactly as the document declares it.
// Ids may legally start at 0, so 0 is never used as an "absent" marker.
type TypeID uint32

// Document is a full contract metadata file.
type Document struct {
	Source   Source          `json:"source"`
	Contract Contract        `json:"contract"`
	Spec     Spec            `json:"spec"`
	Types    []TypeEntry     `json:"types"`
	Version  json.RawMessage `json:"version"`
}

// Source describes the compiled artifact the metadata was produced from.
type Source struct {
	Hash     string `json:"hash"`
	Language string `json:"language"`
	Compiler string `json:"compiler"`
	Wasm     string `json:"wasm,omitempty"`
}

// Contract carries the declared package identity.
type Contract struct {
	Name    string   `json:"name"`
	Version string   `json:"version"`
	Authors []string `json:"authors"`
}

// Spec is the callable surface: constructors, messages and events.
type Spec struct {
	Constructors []Constructor   `json:"constructors"`
	Messages     []Message       `json:"messages"`
	Events       []Event         `json:"events"`
	Docs         []string        `json:"docs"`
	LangError    *TypeRef        `json:"lang_error"`
	Environment  json.RawMessage `json:"environment"`
}

// TypeRef points into the type registry. The document renders it as
// {"displayName": [...], "type": N}; the id is required.
type TypeRef struct {
	DisplayName []string
	ID          TypeID
}

var errMissingTypeID = errors.New("type reference without an id")

func (r *TypeRef) UnmarshalJSON(data []byte) error {
	var raw struct {
		DisplayName []string `json:"displayName"`
		Type        *uint32  `json:"type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Type == nil {
		return errMissingTypeID
	}
	r.DisplayName = raw.DisplayName
	r.ID = TypeID(*raw.Type)
	return nil
}

// Arg is one declared constructor or message argument.
type Arg struct {
	Label string  `json:"label"`
	Type  TypeRef `json:"type"`
}

// Constructor instantiates the contract. ReturnType is parsed for
// completeness but instantiation yields the deployed account, not a value.
type Constructor struct {
	Label      string   `json:"label"`
	Selector   string   `json:"selector,omitempty"`
	Args       []Arg    `json:"args"`
	Payable    bool     `json:"payable"`
	Default    bool     `json:"default"`
	Docs       []string `json:"docs"`
	ReturnType *TypeRef `json:"returnType"`
}

// Message is one callable contract method.
type Message struct {
	Label      string   `json:"label"`
	Selector   string   `json:"selector,omitempty"`
	Args       []Arg    `json:"args"`
	Mutates    bool     `json:"mutates"`
	Payable    bool     `json:"payable"`
	Default    bool     `json:"default"`
	Docs       []string `json:"docs"`
	ReturnType *TypeRef `json:"returnType"`
}

// Event is one declared event. Its discriminant is its position in
// Spec.Events, assigned later by the analyzer.
type Event struct {
	Label string     `json:"label"`
	Args  []EventArg `json:"args"`
	Docs  []string   `json:"docs"`
}

// EventArg is one event field. Indexed marks topic fields; the wire payload
// carries all fields either way, so generation treats them uniformly.
type EventArg struct {
	Label   string   `json:"label"`
	Type    TypeRef  `json:"type"`
	Indexed bool     `json:"indexed"`
	Docs    []string `json:"docs"`
}

// TypeEntry is one registry row: an id plus its definition.
type TypeEntry struct {
	ID   TypeID `json:"id"`
	Type Type   `json:"type"`
}

// Type is a registry definition with its declaring path.
type Type struct {
	Def    Def         `json:"def"`
	Path   []string    `json:"path,omitempty"`
	Params []TypeParam `json:"params,omitempty"`
}

// TypeParam is a generic parameter binding. Type may be null for phantom
// parameters, hence the pointer.
type TypeParam struct {
	Name string  `json:"name"`
	Type *uint32 `json:"type"`
}

// Def is the one-of type definition body. Exactly one branch must be set;
// Parse rejects anything else.
type Def struct {
	Primitive *string       `json:"primitive,omitempty"`
	Composite *CompositeDef `json:"composite,omitempty"`
	Variant   *VariantDef   `json:"variant,omitempty"`
	Sequence  *SequenceDef  `json:"sequence,omitempty"`
	Array     *ArrayDef     `json:"array,omitempty"`
	Tuple     *[]uint32     `json:"tuple,omitempty"`
	Compact   *CompactDef   `json:"compact,omitempty"`
}

// shapes counts how many branches are populated.
func (d *Def) shapes() int {
	n := 0
	if d.Primitive != nil {
		n++
	}
	if d.Composite != nil {
		n++
	}
	if d.Variant != nil {
		n++
	}
	if d.Sequence != nil {
		n++
	}
	if d.Array != nil {
		n++
	}
	if d.Tuple != nil {
		n++
	}
	if d.Compact != nil {
		n++
	}
	return n
}

// CompositeDef is a struct-like definition. Fields may be unnamed when the
// origin was a tuple struct.
type CompositeDef struct {
	Fields []Field `json:"fields"`
}

// Field is one composite or variant field.
type Field struct {
	Name     string   `json:"name,omitempty"`
	Type     TypeID   `json:"-"`
	TypeName string   `json:"typeName,omitempty"`
	Docs     []string `json:"docs,omitempty"`
}

func (f *Field) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name     string   `json:"name"`
		Type     *uint32  `json:"type"`
		TypeName string   `json:"typeName"`
		Docs     []string `json:"docs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Type == nil {
		return errMissingTypeID
	}
	f.Name = raw.Name
	f.Type = TypeID(*raw.Type)
	f.TypeName = raw.TypeName
	f.Docs = raw.Docs
	return nil
}

// VariantDef is an enum-like definition.
type VariantDef struct {
	Variants []Variant `json:"variants"`
}

// Variant is one enum arm. Index is the declared discriminant, which the
// wire format writes as a single byte; it need not be sequential.
type Variant struct {
	Name   string   `json:"name"`
	Index  uint32   `json:"index"`
	Fields []Field  `json:"fields,omitempty"`
	Docs   []string `json:"docs,omitempty"`
}

// SequenceDef is a variable-length homogeneous collection.
type SequenceDef struct {
	Type TypeID `json:"type"`
}

// ArrayDef is a fixed-length homogeneous collection.
type ArrayDef struct {
	Len  uint32 `json:"len"`
	Type TypeID `json:"type"`
}

// CompactDef wraps an integer type in compact wire encoding.
type CompactDef struct {
	Type TypeID `json:"type"`
}
