package driver

import (
	"os"

	"golang.org/x/crypto/blake2b"

	"github.com/alfellati/ink-wrapper/internal/analyze"
	"github.com/alfellati/ink-wrapper/internal/codegen"
	"github.com/alfellati/ink-wrapper/internal/diag"
	"github.com/alfellati/ink-wrapper/internal/metadata"
	"github.com/alfellati/ink-wrapper/internal/registry"
)

// GenerateOptions задаёт один запуск генератора
type GenerateOptions struct {
	MetadataPath string
	WasmPath     string
	PackageName  string
	OutPath      string
}

type GenerateResult struct {
	Unit    *analyze.Unit
	Source  string
	OutPath string
}

// Generate runs the whole pipeline: load and parse the metadata document,
// resolve the type registry, analyze the callable surface, optionally attach
// verified bytecode, then render the client. When OutPath is set the result
// is also written there.
func Generate(opts GenerateOptions) (*GenerateResult, error) {
	_, unit, err := load(opts.MetadataPath)
	if err != nil {
		return nil, err
	}

	if opts.WasmPath != "" {
		code, err := loadBytecode(opts.WasmPath, unit)
		if err != nil {
			return nil, err
		}
		unit.Code = code
	}

	src, err := codegen.Generate(unit, codegen.Options{PackageName: opts.PackageName})
	if err != nil {
		return nil, err
	}

	if opts.OutPath != "" {
		if err := os.WriteFile(opts.OutPath, []byte(src), 0o644); err != nil {
			return nil, diag.Wrap(diag.IOWriteError, err)
		}
	}
	return &GenerateResult{Unit: unit, Source: src, OutPath: opts.OutPath}, nil
}

func load(path string) (*metadata.Document, *analyze.Unit, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, diag.Wrap(diag.IOLoadFileError, err)
	}
	doc, err := metadata.Parse(raw)
	if err != nil {
		return nil, nil, err
	}
	set, err := registry.Resolve(doc)
	if err != nil {
		return nil, nil, err
	}
	unit, err := analyze.Analyze(doc, set)
	if err != nil {
		return nil, nil, err
	}
	return doc, unit, nil
}

// loadBytecode reads the contract blob and checks it against the hash the
// document declares. A mismatch aborts the run: baking an upload routine for
// the wrong artifact would fail on chain much later and much less clearly.
func loadBytecode(path string, unit *analyze.Unit) (*analyze.Bytecode, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, diag.Wrap(diag.IOLoadFileError, err)
	}
	if !unit.HasHash {
		return nil, diag.New(diag.MetaMissingField, "source.hash is required to verify bytecode")
	}
	sum := blake2b.Sum256(code)
	if sum != unit.Hash {
		return nil, diag.Newf(diag.IOBytecodeMismatch,
			"bytecode hash 0x%x does not match declared 0x%x", sum, unit.Hash)
	}
	return &analyze.Bytecode{Length: len(code), Hash: sum}, nil
}
