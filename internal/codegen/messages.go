package codegen

import (
	"github.com/dave/jennifer/jen"

	"github.com/alfellati/ink-wrapper/internal/analyze"
)

// generateGroups emits one view type per trait group, the accessor that
// scopes the handle to it, and the group's methods. Groups come pre-sorted
// by label from the analyzer.
func (g *generator) generateGroups(f *jen.File) {
	for gi := range g.unit.Groups {
		grp := &g.unit.Groups[gi]

		f.Comment("// " + grp.TypeName + " scopes the handle to the " + grp.Name + " messages.")
		f.Type().Id(grp.TypeName).Struct(jen.Id("instance").Id("Instance"))
		f.Line()

		f.Comment("// " + grp.GoName + " accesses the " + grp.Name + " messages of the contract.")
		f.Func().Params(jen.Id("i").Id("Instance")).Id(grp.GoName).Params().Id(grp.TypeName).Block(
			jen.Return(jen.Id(grp.TypeName).Values(jen.Dict{jen.Id("instance"): jen.Id("i")})),
		)
		f.Line()

		for mi := range grp.Methods {
			g.generateMessage(f, &grp.Methods[mi], grp)
		}
	}
}

func (g *generator) generateUngrouped(f *jen.File) {
	for i := range g.unit.Ungrouped {
		g.generateMessage(f, &g.unit.Ungrouped[i], nil)
	}
}

// generateMessage emits one message method, on the handle for ungrouped
// labels and on the group view otherwise. Read-only messages dry-run and
// decode; mutating messages submit and hand the receipt back untouched.
func (g *generator) generateMessage(f *jen.File, m *analyze.Method, grp *analyze.Group) {
	recv := func() *jen.Statement { return jen.Id("i").Id("Instance") }
	account := func() *jen.Statement { return jen.Id("i").Dot("account") }
	if grp != nil {
		recv = func() *jen.Statement { return jen.Id("v").Id(grp.TypeName) }
		account = func() *jen.Statement { return jen.Id("v").Dot("instance").Dot("account") }
	}

	connIface := "Connection"
	if m.Mutates {
		connIface = "SignedConnection"
	}
	params := []jen.Code{
		jen.Id("ctx").Qual("context", "Context"),
		jen.Id("conn").Qual(inktypesPkg, connIface),
	}
	if m.Payable {
		params = append(params, jen.Id("value").Qual(inktypesPkg, "Balance"))
	}
	params = append(params, g.argParams(m.Args)...)

	if m.Mutates {
		g.generateExec(f, m, recv, account, params)
	} else {
		g.generateRead(f, m, recv, account, params)
	}
}

func (g *generator) generateRead(f *jen.File, m *analyze.Method, recv, account func() *jen.Statement, params []jen.Code) {
	commentLines(f, m.GoName+" executes the read-only message "+m.Label+" as a dry run.", m.Docs)

	if !m.HasReturn {
		body := g.payloadStmts(m, func() jen.Code { return jen.Return(jen.Err()) })
		body = append(body,
			jen.List(jen.Id("_"), jen.Err()).Op(":=").Id("conn").Dot("Read").Call(
				jen.Id("ctx"), account(), jen.Id("payload").Dot("Bytes").Call(),
			),
			jen.Return(jen.Err()),
		)
		f.Func().Params(recv()).Id(m.GoName).Params(params...).Error().Block(body...)
		f.Line()
		return
	}

	body := []jen.Code{jen.Var().Id("result").Add(g.goType(m.Returns))}
	body = append(body, g.payloadStmts(m, func() jen.Code {
		return jen.Return(jen.Id("result"), jen.Err())
	})...)
	body = append(body,
		jen.List(jen.Id("raw"), jen.Err()).Op(":=").Id("conn").Dot("Read").Call(
			jen.Id("ctx"), account(), jen.Id("payload").Dot("Bytes").Call(),
		),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Id("result"), jen.Err()),
		),
		jen.If(
			jen.Err().Op(":=").Qual(scalePkg, "NewDecoder").Call(
				jen.Qual("bytes", "NewReader").Call(jen.Id("raw")),
			).Dot("Decode").Call(jen.Op("&").Id("result")),
			jen.Err().Op("!=").Nil(),
		).Block(
			jen.Return(jen.Id("result"), jen.Err()),
		),
		jen.Return(jen.Id("result"), jen.Nil()),
	)

	f.Func().Params(recv()).Id(m.GoName).Params(params...).Parens(
		jen.List(g.goType(m.Returns), jen.Error()),
	).Block(body...)
	f.Line()
}

func (g *generator) generateExec(f *jen.File, m *analyze.Method, recv, account func() *jen.Statement, params []jen.Code) {
	commentLines(f, m.GoName+" submits the mutating message "+m.Label+".", m.Docs)

	exec := "Exec"
	callArgs := []jen.Code{jen.Id("ctx"), account(), jen.Id("payload").Dot("Bytes").Call()}
	if m.Payable {
		exec = "ExecWithValue"
		callArgs = append(callArgs, jen.Id("value"))
	}

	body := g.payloadStmts(m, func() jen.Code { return jen.Return(jen.Nil(), jen.Err()) })
	body = append(body, jen.Return(jen.Id("conn").Dot(exec).Call(callArgs...)))

	f.Func().Params(recv()).Id(m.GoName).Params(params...).Parens(
		jen.List(jen.Qual(inktypesPkg, "TxInfo"), jen.Error()),
	).Block(body...)
	f.Line()
}
