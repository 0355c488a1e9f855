package registry

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"github.com/alfellati/ink-wrapper/internal/diag"
	"github.com/alfellati/ink-wrapper/internal/metadata"
	"github.com/alfellati/ink-wrapper/internal/naming"
)

// maxTupleArity bounds tuple width; wider tuples have no runtime container.
const maxTupleArity = 6

type resolveState uint8

const (
	stateUnseen resolveState = iota
	stateResolving
	stateDone
)

// pathEntry records one node on the active DFS path. weak marks the edge
// the node was entered through as a sequence indirection.
type pathEntry struct {
	id   TypeID
	weak bool
}

type resolver struct {
	entries map[TypeID]*metadata.Type
	set     *Set
	state   map[TypeID]resolveState
	path    []pathEntry
}

// Resolve walks every type reachable from the document's callable surface
// (constructor args, message args and returns, event fields) and returns
// the resolved arena. The first failure aborts resolution.
func Resolve(doc *metadata.Document) (*Set, error) {
	r := &resolver{
		entries: make(map[TypeID]*metadata.Type, len(doc.Types)),
		set:     newSet(),
		state:   make(map[TypeID]resolveState, len(doc.Types)),
	}
	for i := range doc.Types {
		r.entries[doc.Types[i].ID] = &doc.Types[i].Type
	}

	for _, ctor := range doc.Spec.Constructors {
		for _, arg := range ctor.Args {
			if err := r.resolve(arg.Type.ID, false); err != nil {
				return nil, err
			}
		}
	}
	for _, msg := range doc.Spec.Messages {
		for _, arg := range msg.Args {
			if err := r.resolve(arg.Type.ID, false); err != nil {
				return nil, err
			}
		}
		if msg.ReturnType != nil {
			if err := r.resolve(msg.ReturnType.ID, false); err != nil {
				return nil, err
			}
		}
	}
	for _, ev := range doc.Spec.Events {
		for _, arg := range ev.Args {
			if err := r.resolve(arg.Type.ID, false); err != nil {
				return nil, err
			}
		}
	}
	return r.set, nil
}

// resolve brings id to stateDone, resolving its dependencies first. weak
// marks the edge being followed as a sequence indirection: a cycle is legal
// exactly when at least one of its edges is weak, because a Go slice breaks
// the value recursion.
func (r *resolver) resolve(id TypeID, weak bool) error {
	switch r.state[id] {
	case stateDone:
		return nil
	case stateResolving:
		if weak || r.weakSince(id) {
			if r.namedSince(id) {
				// the ancestor completes further up the stack
				return nil
			}
			return diag.Newf(diag.RegRecursiveType,
				"type %s recurses through anonymous containers only and has no declarable form", r.describe(id))
		}
		return diag.Newf(diag.RegRecursiveType,
			"type %s cannot be represented by value: recursion never crosses a sequence", r.describe(id))
	}

	entry, ok := r.entries[id]
	if !ok {
		return diag.Newf(diag.RegUnresolvedReference, "type id %d is referenced but never declared", id)
	}

	r.state[id] = stateResolving
	r.path = append(r.path, pathEntry{id: id, weak: weak})
	def, err := r.build(id, entry)
	r.path = r.path[:len(r.path)-1]
	if err != nil {
		return err
	}
	r.state[id] = stateDone
	r.set.add(id, def)
	return nil
}

// weakSince reports whether the open cycle from id back to the top of the
// DFS path crosses a weak edge. The edge entering id itself is not part of
// the cycle and does not count.
func (r *resolver) weakSince(id TypeID) bool {
	for i := len(r.path) - 1; i >= 0; i-- {
		if r.path[i].id == id {
			return false
		}
		if r.path[i].weak {
			return true
		}
	}
	return false
}

// namedSince reports whether the open cycle from id to the top of the DFS
// path passes through a declaration emitted by name. A cycle of anonymous
// containers has no spelling even when a sequence breaks the value
// recursion.
func (r *resolver) namedSince(id TypeID) bool {
	inCycle := false
	for _, p := range r.path {
		if p.id == id {
			inCycle = true
		}
		if inCycle && r.declares(p.id) {
			return true
		}
	}
	return false
}

// declares reports whether id will resolve to its own named declaration.
func (r *resolver) declares(id TypeID) bool {
	entry, ok := r.entries[id]
	if !ok {
		return false
	}
	switch {
	case entry.Def.Composite != nil:
		_, builtin := builtinFor(entry.Path)
		return !builtin
	case entry.Def.Variant != nil:
		if _, ok := optionShape(entry.Path, entry.Def.Variant); ok {
			return false
		}
		if _, _, ok := resultShape(entry.Path, entry.Def.Variant); ok {
			return false
		}
		return true
	}
	return false
}

func (r *resolver) build(id TypeID, entry *metadata.Type) (TypeDef, error) {
	def := &entry.Def
	switch {
	case def.Primitive != nil:
		p, ok := ParsePrim(*def.Primitive)
		if !ok {
			return TypeDef{}, diag.Newf(diag.RegUnsupportedPrimitive, "type %d: primitive %q is not supported", id, *def.Primitive)
		}
		return TypeDef{Kind: KindPrimitive, Prim: p}, nil

	case def.Composite != nil:
		if builtin, ok := builtinFor(entry.Path); ok {
			return TypeDef{Kind: builtin, Path: entry.Path}, nil
		}
		fields, err := r.buildFields(def.Composite.Fields)
		if err != nil {
			return TypeDef{}, err
		}
		return TypeDef{
			Kind:   KindComposite,
			Name:   r.assignName(id, entry.Path),
			Path:   entry.Path,
			Fields: fields,
		}, nil

	case def.Variant != nil:
		return r.buildUnion(id, entry)

	case def.Sequence != nil:
		if err := r.resolve(def.Sequence.Type, true); err != nil {
			return TypeDef{}, err
		}
		return TypeDef{Kind: KindSequence, Elem: def.Sequence.Type}, nil

	case def.Array != nil:
		if err := r.resolve(def.Array.Type, false); err != nil {
			return TypeDef{}, err
		}
		return TypeDef{Kind: KindArray, Elem: def.Array.Type, Len: def.Array.Len}, nil

	case def.Tuple != nil:
		raw := *def.Tuple
		if len(raw) > maxTupleArity {
			return TypeDef{}, diag.Newf(diag.RegTupleTooWide, "type %d: tuple of %d elements is not supported (max %d)", id, len(raw), maxTupleArity)
		}
		elems := make([]TypeID, 0, len(raw))
		for _, e := range raw {
			eid := TypeID(e)
			if err := r.resolve(eid, false); err != nil {
				return TypeDef{}, err
			}
			elems = append(elems, eid)
		}
		return TypeDef{Kind: KindTuple, Elems: elems}, nil

	case def.Compact != nil:
		if err := r.resolve(def.Compact.Type, false); err != nil {
			return TypeDef{}, err
		}
		inner, ok := r.set.Lookup(def.Compact.Type)
		if !ok || inner.Kind != KindPrimitive || !inner.Prim.IsInteger() {
			return TypeDef{}, diag.Newf(diag.RegBadContainer, "type %d: compact encoding requires an integer element", id)
		}
		return TypeDef{Kind: KindCompact, Elem: def.Compact.Type}, nil
	}
	return TypeDef{}, diag.Newf(diag.MetaBadTypeDef, "type %d has no recognized definition", id)
}

func (r *resolver) buildUnion(id TypeID, entry *metadata.Type) (TypeDef, error) {
	v := entry.Def.Variant
	if elem, ok := optionShape(entry.Path, v); ok {
		if err := r.resolve(elem, false); err != nil {
			return TypeDef{}, err
		}
		return TypeDef{Kind: KindOption, Elem: elem, Path: entry.Path}, nil
	}
	if okID, errID, ok := resultShape(entry.Path, v); ok {
		if err := r.resolve(okID, false); err != nil {
			return TypeDef{}, err
		}
		if err := r.resolve(errID, false); err != nil {
			return TypeDef{}, err
		}
		return TypeDef{Kind: KindResult, Ok: okID, Err: errID, Path: entry.Path}, nil
	}

	variants := make([]UnionVariant, 0, len(v.Variants))
	seen := make(map[string]bool, len(v.Variants))
	for _, raw := range v.Variants {
		idx, err := safecast.Conv[uint8](raw.Index)
		if err != nil {
			return TypeDef{}, diag.Newf(diag.RegVariantIndexRange, "type %d: variant %q index %d does not fit in one byte", id, raw.Name, raw.Index)
		}
		fields, ferr := r.buildFields(raw.Fields)
		if ferr != nil {
			return TypeDef{}, ferr
		}
		name := naming.Dedupe(naming.ExportedIdent(raw.Name), seen)
		variants = append(variants, UnionVariant{
			Name:    name,
			RawName: raw.Name,
			Index:   idx,
			Fields:  fields,
		})
	}
	return TypeDef{
		Kind:     KindUnion,
		Name:     r.assignName(id, entry.Path),
		Path:     entry.Path,
		Variants: variants,
	}, nil
}

func (r *resolver) buildFields(raw []metadata.Field) ([]Field, error) {
	fields := make([]Field, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for i, f := range raw {
		if err := r.resolve(f.Type, false); err != nil {
			return nil, err
		}
		name := "F" + strconv.Itoa(i)
		if f.Name != "" {
			name = naming.ExportedIdent(f.Name)
		}
		fields = append(fields, Field{
			Name:    naming.Dedupe(name, seen),
			RawName: f.Name,
			Type:    f.Type,
		})
	}
	return fields, nil
}

// assignName picks the Go type name for a named declaration: the last path
// segment, qualified by its parent segment on collision, then numbered by
// ReserveName as the last resort.
func (r *resolver) assignName(id TypeID, path []string) string {
	base := "Type" + strconv.Itoa(int(id))
	if len(path) > 0 {
		base = naming.ExportedIdent(path[len(path)-1])
		if r.set.nameTaken(base) && len(path) > 1 {
			qualified := naming.ExportedIdent(path[len(path)-2]) + base
			if !r.set.nameTaken(qualified) {
				base = qualified
			}
		}
	}
	return r.set.ReserveName(base)
}

func (r *resolver) describe(id TypeID) string {
	if e, ok := r.entries[id]; ok && len(e.Path) > 0 {
		return fmt.Sprintf("%s (id %d)", strings.Join(e.Path, "::"), id)
	}
	return fmt.Sprintf("id %d", id)
}

// builtinFor maps the well-known ink primitive wrapper paths onto runtime
// types. A matched wrapper's inner ids are absorbed, never resolved.
func builtinFor(path []string) (Kind, bool) {
	if len(path) < 2 || path[0] != "ink_primitives" {
		return KindInvalid, false
	}
	switch path[len(path)-1] {
	case "AccountId":
		return KindAccountID, true
	case "Hash":
		return KindHash, true
	}
	return KindInvalid, false
}

// optionShape matches the canonical Option declaration: path ["Option"],
// variants None=0 (no fields) and Some=1 (one field).
func optionShape(path []string, v *metadata.VariantDef) (TypeID, bool) {
	if len(path) != 1 || path[0] != "Option" || len(v.Variants) != 2 {
		return 0, false
	}
	none, some := v.Variants[0], v.Variants[1]
	if none.Name != "None" || none.Index != 0 || len(none.Fields) != 0 {
		return 0, false
	}
	if some.Name != "Some" || some.Index != 1 || len(some.Fields) != 1 {
		return 0, false
	}
	return some.Fields[0].Type, true
}

// resultShape matches the canonical Result declaration: path ["Result"],
// variants Ok=0 and Err=1, one field each.
func resultShape(path []string, v *metadata.VariantDef) (okID, errID TypeID, ok bool) {
	if len(path) != 1 || path[0] != "Result" || len(v.Variants) != 2 {
		return 0, 0, false
	}
	vOk, vErr := v.Variants[0], v.Variants[1]
	if vOk.Name != "Ok" || vOk.Index != 0 || len(vOk.Fields) != 1 {
		return 0, 0, false
	}
	if vErr.Name != "Err" || vErr.Index != 1 || len(vErr.Fields) != 1 {
		return 0, 0, false
	}
	return vOk.Fields[0].Type, vErr.Fields[0].Type, true
}
