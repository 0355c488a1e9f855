package registry

import (
	"testing"

	"github.com/alfellati/ink-wrapper/internal/diag"
	"github.com/alfellati/ink-wrapper/internal/metadata"
)

func prim(name string) metadata.Type {
	return metadata.Type{Def: metadata.Def{Primitive: &name}}
}

func composite(path []string, fields ...metadata.Field) metadata.Type {
	return metadata.Type{
		Def:  metadata.Def{Composite: &metadata.CompositeDef{Fields: fields}},
		Path: path,
	}
}

func union(path []string, variants ...metadata.Variant) metadata.Type {
	return metadata.Type{
		Def:  metadata.Def{Variant: &metadata.VariantDef{Variants: variants}},
		Path: path,
	}
}

func seqOf(elem uint32) metadata.Type {
	return metadata.Type{Def: metadata.Def{Sequence: &metadata.SequenceDef{Type: metadata.TypeID(elem)}}}
}

func arrayOf(elem, n uint32) metadata.Type {
	return metadata.Type{Def: metadata.Def{Array: &metadata.ArrayDef{Len: n, Type: metadata.TypeID(elem)}}}
}

func tupleOf(elems ...uint32) metadata.Type {
	return metadata.Type{Def: metadata.Def{Tuple: &elems}}
}

func compactOf(elem uint32) metadata.Type {
	return metadata.Type{Def: metadata.Def{Compact: &metadata.CompactDef{Type: metadata.TypeID(elem)}}}
}

func field(name string, id uint32) metadata.Field {
	return metadata.Field{Name: name, Type: metadata.TypeID(id)}
}

// docWith builds a document whose single message takes roots as arguments.
func docWith(types map[uint32]metadata.Type, roots ...uint32) *metadata.Document {
	doc := &metadata.Document{}
	for id, t := range types {
		doc.Types = append(doc.Types, metadata.TypeEntry{ID: metadata.TypeID(id), Type: t})
	}
	msg := metadata.Message{Label: "probe"}
	for _, root := range roots {
		msg.Args = append(msg.Args, metadata.Arg{
			Label: "arg",
			Type:  metadata.TypeRef{ID: metadata.TypeID(root)},
		})
	}
	doc.Spec.Messages = []metadata.Message{msg}
	return doc
}

func TestResolveCompositeGraph(t *testing.T) {
	doc := docWith(map[uint32]metadata.Type{
		0: prim("u32"),
		1: composite([]string{"token", "Inner"}, field("count", 0)),
		2: composite([]string{"token", "Outer"}, field("inner", 1), field("raw", 0)),
	}, 2)

	set, err := Resolve(doc)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if set.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", set.Len())
	}

	outer := set.MustLookup(2)
	if outer.Kind != KindComposite || outer.Name != "Outer" {
		t.Fatalf("outer = %+v", outer)
	}
	if len(outer.Fields) != 2 || outer.Fields[0].Name != "Inner" || outer.Fields[1].Name != "Raw" {
		t.Fatalf("outer fields = %+v", outer.Fields)
	}

	order := set.DeclOrder()
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("DeclOrder() = %v, want [1 2]", order)
	}
}

func TestResolveMemoizesSharedSubtrees(t *testing.T) {
	doc := docWith(map[uint32]metadata.Type{
		0: prim("u8"),
		1: composite([]string{"a", "Shared"}, field("x", 0)),
		2: composite([]string{"a", "Left"}, field("s", 1)),
		3: composite([]string{"a", "Right"}, field("s", 1)),
	}, 2, 3)

	set, err := Resolve(doc)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if set.Len() != 4 {
		t.Fatalf("Len() = %d, want 4 (shared subtree resolved once)", set.Len())
	}
	if order := set.DeclOrder(); len(order) != 3 || order[0] != 1 {
		t.Fatalf("DeclOrder() = %v, want Shared first", order)
	}
}

func TestResolveDanglingReference(t *testing.T) {
	doc := docWith(map[uint32]metadata.Type{
		1: composite([]string{"a", "Broken"}, field("x", 99)),
	}, 1)

	_, err := Resolve(doc)
	if err == nil {
		t.Fatal("Resolve() succeeded, want unresolved reference")
	}
	if code := diag.CodeOf(err); code != diag.RegUnresolvedReference {
		t.Fatalf("code = %s (%v), want REG2001", code.ID(), err)
	}
}

func TestResolveRejectsValueRecursion(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		doc := docWith(map[uint32]metadata.Type{
			1: composite([]string{"a", "Node"}, field("next", 1)),
		}, 1)
		_, err := Resolve(doc)
		if code := diag.CodeOf(err); code != diag.RegRecursiveType {
			t.Fatalf("code = %s (%v), want REG2002", code.ID(), err)
		}
	})

	t.Run("mutual", func(t *testing.T) {
		doc := docWith(map[uint32]metadata.Type{
			1: composite([]string{"a", "A"}, field("b", 2)),
			2: composite([]string{"a", "B"}, field("a", 1)),
		}, 1)
		_, err := Resolve(doc)
		if code := diag.CodeOf(err); code != diag.RegRecursiveType {
			t.Fatalf("code = %s (%v), want REG2002", code.ID(), err)
		}
	})

	t.Run("through array", func(t *testing.T) {
		// arrays are inline values, so they do not break the cycle
		doc := docWith(map[uint32]metadata.Type{
			1: composite([]string{"a", "Grid"}, field("cells", 2)),
			2: arrayOf(1, 4),
		}, 1)
		_, err := Resolve(doc)
		if code := diag.CodeOf(err); code != diag.RegRecursiveType {
			t.Fatalf("code = %s (%v), want REG2002", code.ID(), err)
		}
	})

	t.Run("anonymous containers only", func(t *testing.T) {
		// a sequence breaks the value recursion, but a cycle without a
		// named declaration on it has no Go spelling
		doc := docWith(map[uint32]metadata.Type{
			1: seqOf(2),
			2: tupleOf(1),
		}, 1)
		_, err := Resolve(doc)
		if code := diag.CodeOf(err); code != diag.RegRecursiveType {
			t.Fatalf("code = %s (%v), want REG2002", code.ID(), err)
		}
	})
}

func TestResolveAllowsRecursionThroughSequence(t *testing.T) {
	doc := docWith(map[uint32]metadata.Type{
		1: composite([]string{"a", "Tree"}, field("children", 2)),
		2: seqOf(1),
	}, 1)

	set, err := Resolve(doc)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	tree := set.MustLookup(1)
	if tree.Kind != KindComposite || tree.Name != "Tree" {
		t.Fatalf("tree = %+v", tree)
	}
	if seq := set.MustLookup(2); seq.Kind != KindSequence || seq.Elem != 1 {
		t.Fatalf("seq = %+v", seq)
	}
}

func TestResolveOptionAndResultShapes(t *testing.T) {
	doc := docWith(map[uint32]metadata.Type{
		0: prim("u128"),
		1: prim("bool"),
		2: union([]string{"Option"},
			metadata.Variant{Name: "None", Index: 0},
			metadata.Variant{Name: "Some", Index: 1, Fields: []metadata.Field{{Type: 0}}},
		),
		3: union([]string{"Result"},
			metadata.Variant{Name: "Ok", Index: 0, Fields: []metadata.Field{{Type: 1}}},
			metadata.Variant{Name: "Err", Index: 1, Fields: []metadata.Field{{Type: 0}}},
		),
	}, 2, 3)

	set, err := Resolve(doc)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	opt := set.MustLookup(2)
	if opt.Kind != KindOption || opt.Elem != 0 {
		t.Fatalf("option = %+v", opt)
	}
	res := set.MustLookup(3)
	if res.Kind != KindResult || res.Ok != 1 || res.Err != 0 {
		t.Fatalf("result = %+v", res)
	}
	if order := set.DeclOrder(); len(order) != 0 {
		t.Fatalf("DeclOrder() = %v, want none (containers are not declarations)", order)
	}
}

func TestResolveBuiltinPaths(t *testing.T) {
	doc := docWith(map[uint32]metadata.Type{
		1: composite([]string{"ink_primitives", "types", "AccountId"}, metadata.Field{Type: 2}),
		3: composite([]string{"ink_primitives", "Hash"}, metadata.Field{Type: 2}),
	}, 1, 3)

	set, err := Resolve(doc)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if def := set.MustLookup(1); def.Kind != KindAccountID {
		t.Fatalf("AccountId kind = %v", def.Kind)
	}
	if def := set.MustLookup(3); def.Kind != KindHash {
		t.Fatalf("Hash kind = %v", def.Kind)
	}
	// builtin wrappers swallow their inner ids
	if _, ok := set.Lookup(2); ok {
		t.Fatal("inner id of a builtin should stay unresolved")
	}
}

func TestResolveGenericUnion(t *testing.T) {
	doc := docWith(map[uint32]metadata.Type{
		0: prim("str"),
		1: union([]string{"psp22", "PSP22Error"},
			metadata.Variant{Name: "Custom", Index: 0, Fields: []metadata.Field{{Type: 0}}},
			metadata.Variant{Name: "InsufficientBalance", Index: 1},
			metadata.Variant{Name: "InsufficientAllowance", Index: 2},
		),
	}, 1)

	set, err := Resolve(doc)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	def := set.MustLookup(1)
	if def.Kind != KindUnion || def.Name != "PSP22Error" {
		t.Fatalf("union = %+v", def)
	}
	if len(def.Variants) != 3 || def.Variants[1].Index != 1 || def.Variants[0].Fields[0].Name != "F0" {
		t.Fatalf("variants = %+v", def.Variants)
	}
}

func TestResolveErrors(t *testing.T) {
	cases := []struct {
		name  string
		types map[uint32]metadata.Type
		root  uint32
		code  diag.Code
	}{
		{
			name:  "unsupported primitive",
			types: map[uint32]metadata.Type{1: prim("u256")},
			root:  1,
			code:  diag.RegUnsupportedPrimitive,
		},
		{
			name: "tuple too wide",
			types: map[uint32]metadata.Type{
				0: prim("u8"),
				1: tupleOf(0, 0, 0, 0, 0, 0, 0),
			},
			root: 1,
			code: diag.RegTupleTooWide,
		},
		{
			name: "compact of non-integer",
			types: map[uint32]metadata.Type{
				0: prim("bool"),
				1: compactOf(0),
			},
			root: 1,
			code: diag.RegBadContainer,
		},
		{
			name: "variant index too large",
			types: map[uint32]metadata.Type{
				1: union([]string{"a", "E"}, metadata.Variant{Name: "V", Index: 300}),
			},
			root: 1,
			code: diag.RegVariantIndexRange,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Resolve(docWith(tc.types, tc.root))
			if err == nil {
				t.Fatalf("Resolve() succeeded, want %s", tc.code.ID())
			}
			if got := diag.CodeOf(err); got != tc.code {
				t.Fatalf("code = %s (%v), want %s", got.ID(), err, tc.code.ID())
			}
		})
	}
}

func TestResolveNameCollisions(t *testing.T) {
	doc := docWith(map[uint32]metadata.Type{
		0: prim("u8"),
		1: composite([]string{"alpha", "Role"}, field("x", 0)),
		2: composite([]string{"beta", "Role"}, field("x", 0)),
		3: composite([]string{"gamma", "Instance"}, field("x", 0)),
	}, 1, 2, 3)

	set, err := Resolve(doc)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	a := set.MustLookup(1)
	b := set.MustLookup(2)
	c := set.MustLookup(3)
	if a.Name != "Role" {
		t.Errorf("first Role name = %q", a.Name)
	}
	if b.Name != "BetaRole" {
		t.Errorf("second Role name = %q, want BetaRole", b.Name)
	}
	if c.Name == "Instance" {
		t.Errorf("declared type shadowed the reserved Instance name")
	}
}

func TestResolveCompactOfU128(t *testing.T) {
	doc := docWith(map[uint32]metadata.Type{
		0: prim("u128"),
		1: compactOf(0),
	}, 1)

	set, err := Resolve(doc)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if def := set.MustLookup(1); def.Kind != KindCompact || def.Elem != 0 {
		t.Fatalf("compact = %+v", def)
	}
}
