package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, data string) string {
	t.Helper()
	path := filepath.Join(dir, "ink-wrapper.toml")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write ink-wrapper.toml: %v", err)
	}
	return path
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	want := writeManifest(t, root, "[contract]\nmetadata = \"flipper.json\"\n")

	got, ok, err := findManifest(nested)
	if err != nil {
		t.Fatalf("findManifest: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found from nested directory")
	}
	if got != want {
		t.Fatalf("findManifest = %q, want %q", got, want)
	}
}

func TestFindManifestReportsAbsence(t *testing.T) {
	_, ok, err := findManifest(t.TempDir())
	if err != nil {
		t.Fatalf("findManifest: %v", err)
	}
	if ok {
		t.Fatal("found a manifest in an empty tree")
	}
}

func TestLoadManifestConfig(t *testing.T) {
	root := t.TempDir()
	path := writeManifest(t, root, `# контракт собирается cargo-contract'ом
[contract]
metadata = "target/ink/flipper.json"
wasm = "target/ink/flipper.wasm"

[generate]
package = "flipper"
out = "client/flipper.go"
`)

	cfg, err := loadManifestConfig(path)
	if err != nil {
		t.Fatalf("loadManifestConfig: %v", err)
	}
	if cfg.Contract.Metadata != "target/ink/flipper.json" {
		t.Fatalf("metadata = %q", cfg.Contract.Metadata)
	}
	if cfg.Contract.Wasm != "target/ink/flipper.wasm" {
		t.Fatalf("wasm = %q", cfg.Contract.Wasm)
	}
	if cfg.Generate.Package != "flipper" || cfg.Generate.Out != "client/flipper.go" {
		t.Fatalf("generate = %+v", cfg.Generate)
	}
}

func TestLoadManifestConfigRequiresMetadata(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{"no contract table", "[generate]\npackage = \"x\"\n", "missing [contract]"},
		{"no metadata key", "[contract]\nwasm = \"a.wasm\"\n", "missing [contract].metadata"},
		{"blank metadata", "[contract]\nmetadata = \"  \"\n", "missing [contract].metadata"},
	}
	for _, tc := range cases {
		path := writeManifest(t, t.TempDir(), tc.data)
		_, err := loadManifestConfig(path)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestManifestResolve(t *testing.T) {
	m := &manifest{Root: filepath.Join("proj", "root")}
	if got := m.resolve("target/ink/flipper.json"); got != filepath.Join("proj", "root", "target", "ink", "flipper.json") {
		t.Fatalf("resolve relative = %q", got)
	}
	if got := m.resolve(""); got != "" {
		t.Fatalf("resolve empty = %q, want empty", got)
	}
	abs := filepath.Join(string(filepath.Separator), "tmp", "flipper.json")
	if got := m.resolve(abs); got != abs {
		t.Fatalf("resolve absolute = %q, want %q", got, abs)
	}
}
