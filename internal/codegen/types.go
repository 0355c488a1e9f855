package codegen

import (
	"github.com/dave/jennifer/jen"

	"github.com/alfellati/ink-wrapper/internal/registry"
)

// generateTypes declares every named type in topological order, so a
// declaration always follows the declarations it references.
func (g *generator) generateTypes(f *jen.File) {
	for _, id := range g.types.DeclOrder() {
		def := g.types.MustLookup(id)
		switch def.Kind {
		case registry.KindComposite:
			g.generateComposite(f, def)
		case registry.KindUnion:
			g.generateUnion(f, def)
		}
	}
}

// generateComposite declares a plain struct. The codec walks its fields in
// declared order, so the struct needs no wire methods of its own.
func (g *generator) generateComposite(f *jen.File, def registry.TypeDef) {
	fields := make([]jen.Code, 0, len(def.Fields))
	for _, fd := range def.Fields {
		fields = append(fields, jen.Id(fd.Name).Add(g.goType(fd.Type)))
	}
	f.Comment(declComment(def))
	f.Type().Id(def.Name).Struct(fields...)
	f.Line()
}

// generateUnion declares a tagged struct with an Is flag per variant and an
// As payload field where the variant carries data, plus the wire methods
// that write and dispatch on the declared variant index byte.
func (g *generator) generateUnion(f *jen.File, def registry.TypeDef) {
	fields := make([]jen.Code, 0, 2*len(def.Variants))
	for _, v := range def.Variants {
		fields = append(fields, jen.Id("Is"+v.Name).Bool())
		if payload := g.variantPayload(v); payload != nil {
			fields = append(fields, jen.Id("As"+v.Name).Add(payload))
		}
	}
	f.Comment(declComment(def))
	f.Comment("// Exactly one Is flag is set; the matching As field carries the payload.")
	f.Type().Id(def.Name).Struct(fields...)
	f.Line()

	g.generateUnionEncode(f, def)
	g.generateUnionDecode(f, def)
}

// variantPayload picks the As field type: nothing for a bare variant, the
// field's own type for a single tuple-style field, an inline struct with
// the declared field names otherwise.
func (g *generator) variantPayload(v registry.UnionVariant) *jen.Statement {
	switch {
	case len(v.Fields) == 0:
		return nil
	case len(v.Fields) == 1 && v.Fields[0].RawName == "":
		return g.goType(v.Fields[0].Type)
	}
	fields := make([]jen.Code, 0, len(v.Fields))
	for _, fd := range v.Fields {
		fields = append(fields, jen.Id(fd.Name).Add(g.goType(fd.Type)))
	}
	return jen.Struct(fields...)
}

func (g *generator) generateUnionEncode(f *jen.File, def registry.TypeDef) {
	cases := make([]jen.Code, 0, len(def.Variants))
	for _, v := range def.Variants {
		body := []jen.Code{
			jen.If(
				jen.Err().Op(":=").Id("encoder").Dot("PushByte").Call(jen.Lit(int(v.Index))),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Return(jen.Err())),
		}
		if len(v.Fields) == 0 {
			body = append(body, jen.Return(jen.Nil()))
		} else {
			body = append(body, jen.Return(jen.Id("encoder").Dot("Encode").Call(jen.Id("v").Dot("As"+v.Name))))
		}
		cases = append(cases, jen.Case(jen.Id("v").Dot("Is"+v.Name)).Block(body...))
	}

	f.Func().Params(jen.Id("v").Id(def.Name)).Id("Encode").Params(
		jen.Id("encoder").Qual(scalePkg, "Encoder"),
	).Error().Block(
		jen.Switch().Block(cases...),
		jen.Return(jen.Qual("errors", "New").Call(jen.Lit(def.Name+": no variant set"))),
	)
	f.Line()
}

func (g *generator) generateUnionDecode(f *jen.File, def registry.TypeDef) {
	cases := make([]jen.Code, 0, len(def.Variants))
	for _, v := range def.Variants {
		body := []jen.Code{jen.Id("v").Dot("Is" + v.Name).Op("=").Lit(true)}
		if len(v.Fields) == 0 {
			body = append(body, jen.Return(jen.Nil()))
		} else {
			body = append(body, jen.Return(jen.Id("decoder").Dot("Decode").Call(jen.Op("&").Id("v").Dot("As"+v.Name))))
		}
		cases = append(cases, jen.Case(jen.Lit(int(v.Index))).Block(body...))
	}

	f.Func().Params(jen.Id("v").Op("*").Id(def.Name)).Id("Decode").Params(
		jen.Id("decoder").Qual(scalePkg, "Decoder"),
	).Error().Block(
		jen.List(jen.Id("tag"), jen.Err()).Op(":=").Id("decoder").Dot("ReadOneByte").Call(),
		jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Err())),
		jen.Switch(jen.Id("tag")).Block(cases...),
		jen.Return(jen.Qual("fmt", "Errorf").Call(jen.Lit(def.Name+": invalid variant tag %d"), jen.Id("tag"))),
	)
	f.Line()
}
