// Package codegen emits the Go client source for an analyzed compilation
// unit. The generator builds one jennifer file section by section in a
// fixed order and renders it once, so identical units and options always
// produce identical bytes.
package codegen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/alfellati/ink-wrapper/internal/analyze"
	"github.com/alfellati/ink-wrapper/internal/diag"
	"github.com/alfellati/ink-wrapper/internal/naming"
	"github.com/alfellati/ink-wrapper/internal/registry"
)

// Import paths the generated client is allowed to depend on, beyond the
// standard library.
const (
	inktypesPkg = "github.com/alfellati/ink-wrapper/inktypes"
	scalePkg    = "github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Options controls the emitted package clause.
type Options struct {
	// PackageName names the generated package; empty derives the name from
	// the contract name.
	PackageName string
}

// Generate renders the complete contract client for unit.
func Generate(unit *analyze.Unit, opts Options) (string, error) {
	if len(unit.Constructors) > 0 && !unit.HasHash {
		return "", diag.New(diag.MetaMissingField, "source.hash is required to generate constructors")
	}

	pkg := opts.PackageName
	if pkg == "" {
		pkg = naming.PackageIdent(unit.Contract.Name)
	}

	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by ink-wrapper; DO NOT EDIT.")

	g := &generator{unit: unit, types: unit.Types}
	g.generateCodeHash(f)
	g.generateTypes(f)
	g.generateInstance(f)
	g.generateConstructors(f)
	g.generateUpload(f)
	g.generateGroups(f)
	g.generateUngrouped(f)
	g.generateEvents(f)

	buf := &bytes.Buffer{}
	if err := f.Render(buf); err != nil {
		return "", diag.Wrap(diag.IOWriteError, err)
	}
	return buf.String(), nil
}

type generator struct {
	unit  *analyze.Unit
	types *registry.Set
}

// commentLines writes the generated lead comment followed by the doc lines
// declared in the metadata.
func commentLines(f *jen.File, first string, docs []string) {
	f.Comment("// " + first)
	for _, d := range docs {
		d = strings.TrimSpace(d)
		if d != "" {
			f.Comment("// " + d)
		}
	}
}

// hexLit renders one byte as a 0x literal so selectors and hashes read the
// way the metadata spells them.
func hexLit(b byte) jen.Code {
	return jen.Id(fmt.Sprintf("0x%02x", b))
}

func hexLits(bs []byte) []jen.Code {
	out := make([]jen.Code, 0, len(bs))
	for _, b := range bs {
		out = append(out, hexLit(b))
	}
	return out
}
