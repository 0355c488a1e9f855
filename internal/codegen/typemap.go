package codegen

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/alfellati/ink-wrapper/internal/registry"
)

// goType maps a resolved type id onto its Go type expression. Named kinds
// become identifier references, containers map onto runtime generics, so
// the recursion only ever walks anonymous container chains.
func (g *generator) goType(id registry.TypeID) *jen.Statement {
	def := g.types.MustLookup(id)
	switch def.Kind {
	case registry.KindPrimitive:
		return primType(def.Prim)
	case registry.KindComposite, registry.KindUnion:
		return jen.Id(def.Name)
	case registry.KindSequence:
		if g.isByte(def.Elem) {
			return jen.Index().Byte()
		}
		return jen.Index().Add(g.goType(def.Elem))
	case registry.KindArray:
		if g.isByte(def.Elem) {
			return jen.Index(jen.Lit(int(def.Len))).Byte()
		}
		return jen.Index(jen.Lit(int(def.Len))).Add(g.goType(def.Elem))
	case registry.KindTuple:
		return g.tupleType(def.Elems)
	case registry.KindCompact:
		return jen.Qual(inktypesPkg, "UCompact")
	case registry.KindOption:
		return jen.Qual(inktypesPkg, "Option").Types(g.goType(def.Elem))
	case registry.KindResult:
		return jen.Qual(inktypesPkg, "Result").Types(g.goType(def.Ok), g.goType(def.Err))
	case registry.KindAccountID:
		return jen.Qual(inktypesPkg, "AccountID")
	case registry.KindHash:
		return jen.Qual(inktypesPkg, "Hash")
	}
	panic(fmt.Sprintf("codegen: type %d has unmapped kind %s", id, def.Kind))
}

// isByte reports whether id resolves to the u8 primitive; u8 containers
// surface as byte slices and arrays.
func (g *generator) isByte(id registry.TypeID) bool {
	def := g.types.MustLookup(id)
	return def.Kind == registry.KindPrimitive && def.Prim == registry.PrimU8
}

func primType(p registry.Prim) *jen.Statement {
	switch p {
	case registry.PrimBool:
		return jen.Bool()
	case registry.PrimChar:
		return jen.Rune()
	case registry.PrimStr:
		return jen.String()
	case registry.PrimU8:
		return jen.Uint8()
	case registry.PrimU16:
		return jen.Uint16()
	case registry.PrimU32:
		return jen.Uint32()
	case registry.PrimU64:
		return jen.Uint64()
	case registry.PrimU128:
		return jen.Qual(inktypesPkg, "U128")
	case registry.PrimI8:
		return jen.Int8()
	case registry.PrimI16:
		return jen.Int16()
	case registry.PrimI32:
		return jen.Int32()
	case registry.PrimI64:
		return jen.Int64()
	case registry.PrimI128:
		return jen.Qual(inktypesPkg, "I128")
	}
	panic(fmt.Sprintf("codegen: unmapped primitive %s", p))
}

var tupleNames = map[int]string{
	2: "Tuple2",
	3: "Tuple3",
	4: "Tuple4",
	5: "Tuple5",
	6: "Tuple6",
}

// tupleType maps tuple arity onto the runtime containers: the empty tuple
// is Unit, a 1-tuple is its element, wider tuples use the TupleN generics.
func (g *generator) tupleType(elems []registry.TypeID) *jen.Statement {
	switch len(elems) {
	case 0:
		return jen.Qual(inktypesPkg, "Unit")
	case 1:
		return g.goType(elems[0])
	}
	name, ok := tupleNames[len(elems)]
	if !ok {
		panic(fmt.Sprintf("codegen: tuple of %d elements survived resolution", len(elems)))
	}
	args := make([]jen.Code, 0, len(elems))
	for _, el := range elems {
		args = append(args, g.goType(el))
	}
	return jen.Qual(inktypesPkg, name).Types(args...)
}

func declComment(def registry.TypeDef) string {
	if len(def.Path) > 0 {
		return "// " + def.Name + " is the contract type " + strings.Join(def.Path, "::") + "."
	}
	return "// " + def.Name + " is a contract type with no declared path."
}
