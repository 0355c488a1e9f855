package codegen

import (
	"github.com/dave/jennifer/jen"

	"github.com/alfellati/ink-wrapper/internal/analyze"
)

func (g *generator) generateCodeHash(f *jen.File) {
	if !g.unit.HasHash {
		return
	}
	f.Comment("// CodeHash identifies the contract code this client was generated from.")
	f.Var().Id("CodeHash").Op("=").Qual(inktypesPkg, "Hash").Values(hexLits(g.unit.Hash[:])...)
	f.Line()
}

func (g *generator) generateInstance(f *jen.File) {
	f.Comment("// Instance is a handle to a deployed " + g.unit.Contract.Name + " contract.")
	f.Type().Id("Instance").Struct(
		jen.Id("account").Qual(inktypesPkg, "AccountID"),
	)
	f.Line()

	f.Comment("// AsInstance binds the client to an already deployed contract account.")
	f.Func().Id("AsInstance").Params(
		jen.Id("account").Qual(inktypesPkg, "AccountID"),
	).Id("Instance").Block(
		jen.Return(jen.Id("Instance").Values(jen.Dict{jen.Id("account"): jen.Id("account")})),
	)
	f.Line()

	f.Comment("// AccountID returns the contract account this handle is bound to.")
	f.Func().Params(jen.Id("i").Id("Instance")).Id("AccountID").Params().Qual(inktypesPkg, "AccountID").Block(
		jen.Return(jen.Id("i").Dot("account")),
	)
	f.Line()
}

func (g *generator) generateConstructors(f *jen.File) {
	for i := range g.unit.Constructors {
		g.generateConstructor(f, &g.unit.Constructors[i])
	}
}

// generateConstructor emits a package-level deploy function. The payload is
// the selector plus the encoded arguments; salt disambiguates repeated
// deployments and payable constructors forward an endowment.
func (g *generator) generateConstructor(f *jen.File, m *analyze.Method) {
	params := []jen.Code{
		jen.Id("ctx").Qual("context", "Context"),
		jen.Id("conn").Qual(inktypesPkg, "SignedConnection"),
	}
	if m.Payable {
		params = append(params, jen.Id("value").Qual(inktypesPkg, "Balance"))
	}
	params = append(params, jen.Id("salt").Index().Byte())
	params = append(params, g.argParams(m.Args)...)

	instantiate := "Instantiate"
	callArgs := []jen.Code{jen.Id("ctx"), jen.Id("CodeHash"), jen.Id("salt"), jen.Id("payload").Dot("Bytes").Call()}
	if m.Payable {
		instantiate = "InstantiateWithValue"
		callArgs = append(callArgs, jen.Id("value"))
	}

	body := g.payloadStmts(m, func() jen.Code {
		return jen.Return(jen.Id("Instance").Values(), jen.Err())
	})
	body = append(body,
		jen.List(jen.Id("account"), jen.Err()).Op(":=").Id("conn").Dot(instantiate).Call(callArgs...),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Id("Instance").Values(), jen.Err()),
		),
		jen.Return(jen.Id("Instance").Values(jen.Dict{jen.Id("account"): jen.Id("account")}), jen.Nil()),
	)

	commentLines(f, m.GoName+" deploys the contract through its "+m.Label+" constructor.", m.Docs)
	f.Func().Id(m.GoName).Params(params...).Parens(jen.List(jen.Id("Instance"), jen.Error())).Block(body...)
	f.Line()
}

// generateUpload emits the idempotent code upload routine. It only exists
// when the contract bytecode was supplied at generation time; the length
// and hash baked in here were checked against the metadata then.
func (g *generator) generateUpload(f *jen.File) {
	code := g.unit.Code
	if code == nil {
		return
	}

	f.Comment("// UploadCode uploads the contract code this client was generated against.")
	f.Comment("// Code that is already stored on chain counts as success.")
	f.Func().Id("UploadCode").Params(
		jen.Id("ctx").Qual("context", "Context"),
		jen.Id("conn").Qual(inktypesPkg, "SignedConnection"),
		jen.Id("code").Index().Byte(),
	).Parens(jen.List(jen.Qual(inktypesPkg, "TxInfo"), jen.Error())).Block(
		jen.If(jen.Len(jen.Id("code")).Op("!=").Lit(code.Length)).Block(
			jen.Return(jen.Nil(), jen.Qual("fmt", "Errorf").Call(
				jen.Lit("code is %d bytes, expected %d"), jen.Len(jen.Id("code")), jen.Lit(code.Length),
			)),
		),
		jen.If(
			jen.Id("got").Op(":=").Qual(inktypesPkg, "CodeHashOf").Call(jen.Id("code")),
			jen.Id("got").Op("!=").Id("CodeHash"),
		).Block(
			jen.Return(jen.Nil(), jen.Qual("fmt", "Errorf").Call(
				jen.Lit("code hash %s does not match %s"), jen.Id("got").Dot("Hex").Call(), jen.Id("CodeHash").Dot("Hex").Call(),
			)),
		),
		jen.List(jen.Id("tx"), jen.Err()).Op(":=").Id("conn").Dot("UploadCode").Call(jen.Id("ctx"), jen.Id("code"), jen.Id("CodeHash")),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.If(jen.Qual("errors", "Is").Call(jen.Err(), jen.Qual(inktypesPkg, "ErrCodeAlreadyStored"))).Block(
				jen.Return(jen.Id("tx"), jen.Nil()),
			),
			jen.Return(jen.Nil(), jen.Err()),
		),
		jen.Return(jen.Id("tx"), jen.Nil()),
	)
	f.Line()
}

// payloadStmts opens the call payload: a buffer seeded with the 4 selector
// bytes, then every argument SCALE-encoded in declared order. onErr builds
// the early return used when an argument fails to encode.
func (g *generator) payloadStmts(m *analyze.Method, onErr func() jen.Code) []jen.Code {
	stmts := []jen.Code{
		jen.Id("payload").Op(":=").Qual("bytes", "NewBuffer").Call(
			jen.Index().Byte().Values(hexLits(m.Selector[:])...),
		),
	}
	if len(m.Args) == 0 {
		return stmts
	}
	stmts = append(stmts, jen.Id("enc").Op(":=").Qual(scalePkg, "NewEncoder").Call(jen.Id("payload")))
	for _, a := range m.Args {
		stmts = append(stmts, jen.If(
			jen.Err().Op(":=").Id("enc").Dot("Encode").Call(jen.Id(a.Go)),
			jen.Err().Op("!=").Nil(),
		).Block(onErr()))
	}
	return stmts
}

func (g *generator) argParams(args []analyze.Arg) []jen.Code {
	params := make([]jen.Code, 0, len(args))
	for _, a := range args {
		params = append(params, jen.Id(a.Go).Add(g.goType(a.Type)))
	}
	return params
}
