package registry

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"
)

// Set is the resolved type arena for one document. Ids are the document's
// own; lookups go through a map index into the flat slice.
type Set struct {
	defs  []TypeDef
	index map[TypeID]uint32
	order []TypeID
	names map[string]bool
}

// reservedNames are identifiers the emitter claims in the generated package
// regardless of what the document declares. Claiming them up front keeps
// type naming collision-free.
var reservedNames = []string{
	"Instance",
	"Event",
	"CodeHash",
	"DecodeEvent",
	"FilterEvents",
	"UploadCode",
}

func newSet() *Set {
	s := &Set{
		index: make(map[TypeID]uint32, 32),
		names: make(map[string]bool, 32),
	}
	for _, n := range reservedNames {
		s.names[n] = true
	}
	return s
}

// add stores a resolved definition. Named definitions are appended to the
// declaration order; resolution calls add in post-order, so dependencies of
// a declaration land before it.
func (s *Set) add(id TypeID, def TypeDef) {
	if _, dup := s.index[id]; dup {
		panic(fmt.Sprintf("registry: type %d resolved twice", id))
	}
	slot, err := safecast.Conv[uint32](len(s.defs))
	if err != nil {
		panic(fmt.Errorf("registry: slot overflow: %w", err))
	}
	s.index[id] = slot
	s.defs = append(s.defs, def)
	if def.Named() {
		s.order = append(s.order, id)
	}
}

// Lookup returns the resolved definition for a document id.
func (s *Set) Lookup(id TypeID) (TypeDef, bool) {
	slot, ok := s.index[id]
	if !ok {
		return TypeDef{}, false
	}
	return s.defs[slot], true
}

// MustLookup panics when id was never resolved. Use only for ids the
// resolver already validated.
func (s *Set) MustLookup(id TypeID) TypeDef {
	def, ok := s.Lookup(id)
	if !ok {
		panic(fmt.Sprintf("registry: unknown type id %d", id))
	}
	return def
}

// DeclOrder lists named declarations, depended-on before dependent.
func (s *Set) DeclOrder() []TypeID {
	return s.order
}

// Len is the number of resolved definitions.
func (s *Set) Len() int {
	return len(s.defs)
}

// ReserveName claims a free identifier in the generated package, starting
// from candidate and appending a numeric suffix until free. Every top-level
// name the emitter introduces must come through here, so one table rules
// out collisions.
func (s *Set) ReserveName(candidate string) string {
	if candidate == "" {
		candidate = "X"
	}
	name := candidate
	for n := 2; s.names[name]; n++ {
		name = candidate + strconv.Itoa(n)
	}
	s.names[name] = true
	return name
}

// nameTaken reports whether an identifier is already claimed.
func (s *Set) nameTaken(name string) bool {
	return s.names[name]
}
