package codegen

import (
	"github.com/dave/jennifer/jen"
)

// generateEvents emits the sealed event union: one struct per declared
// event, the discriminant-keyed decoder, and the per-instance filter.
func (g *generator) generateEvents(f *jen.File) {
	f.Comment("// Event is implemented by every event this contract emits.")
	f.Type().Id("Event").Interface(jen.Id("isEvent").Params())
	f.Line()

	for i := range g.unit.Events {
		ev := &g.unit.Events[i]
		fields := make([]jen.Code, 0, len(ev.Fields))
		for _, fd := range ev.Fields {
			fields = append(fields, jen.Id(fd.Go).Add(g.goType(fd.Type)))
		}
		commentLines(f, ev.GoName+" is the contract event "+ev.Label+".", ev.Docs)
		f.Type().Id(ev.GoName).Struct(fields...)
		f.Line()
		f.Func().Params(jen.Id(ev.GoName)).Id("isEvent").Params().Block()
		f.Line()
	}

	g.generateDecodeEvent(f)
	g.generateFilterEvents(f)
}

func (g *generator) generateDecodeEvent(f *jen.File) {
	var body []jen.Code
	if len(g.unit.Events) > 0 {
		cases := make([]jen.Code, 0, len(g.unit.Events))
		for i := range g.unit.Events {
			ev := &g.unit.Events[i]
			cases = append(cases, jen.Case(jen.Lit(int(ev.Discriminant))).Block(
				jen.Var().Id("ev").Id(ev.GoName),
				jen.If(
					jen.Err().Op(":=").Id("decoder").Dot("Decode").Call(jen.Op("&").Id("ev")),
					jen.Err().Op("!=").Nil(),
				).Block(jen.Return(jen.Nil(), jen.Err())),
				jen.Return(jen.Id("ev"), jen.Nil()),
			))
		}
		body = append(body,
			jen.Id("decoder").Op(":=").Qual(scalePkg, "NewDecoder").Call(
				jen.Qual("bytes", "NewReader").Call(jen.Id("data")),
			),
			jen.Switch(jen.Id("discriminant")).Block(cases...),
		)
	}
	body = append(body, jen.Return(jen.Nil(), jen.Op("&").Qual(inktypesPkg, "UnknownEventDiscriminantError").Values(
		jen.Dict{jen.Id("Discriminant"): jen.Id("discriminant")},
	)))

	f.Comment("// DecodeEvent decodes one event payload by its declared discriminant.")
	f.Func().Id("DecodeEvent").Params(
		jen.Id("discriminant").Uint8(),
		jen.Id("data").Index().Byte(),
	).Parens(jen.List(jen.Id("Event"), jen.Error())).Block(body...)
	f.Line()
}

func (g *generator) generateFilterEvents(f *jen.File) {
	f.Comment("// FilterEvents keeps the events this contract instance emitted and")
	f.Comment("// decodes them. Each record carries the decoded event or the decode")
	f.Comment("// error, so one stale event does not hide the rest.")
	f.Func().Params(jen.Id("i").Id("Instance")).Id("FilterEvents").Params(
		jen.Id("events").Index().Qual(inktypesPkg, "ContractEvent"),
	).Index().Qual(inktypesPkg, "EventRecord").Types(jen.Id("Event")).Block(
		jen.Var().Id("records").Index().Qual(inktypesPkg, "EventRecord").Types(jen.Id("Event")),
		jen.For(jen.List(jen.Id("_"), jen.Id("ev")).Op(":=").Range().Id("events")).Block(
			jen.If(jen.Id("ev").Dot("Emitter").Op("!=").Id("i").Dot("account")).Block(
				jen.Continue(),
			),
			jen.List(jen.Id("decoded"), jen.Err()).Op(":=").Id("DecodeEvent").Call(
				jen.Id("ev").Dot("Discriminant"), jen.Id("ev").Dot("Data"),
			),
			jen.Id("records").Op("=").Append(jen.Id("records"), jen.Qual(inktypesPkg, "EventRecord").Types(jen.Id("Event")).Values(jen.Dict{
				jen.Id("Event"): jen.Id("decoded"),
				jen.Id("Err"):   jen.Err(),
			})),
		),
		jen.Return(jen.Id("records")),
	)
	f.Line()
}
