package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const noManifestMessage = "no ink-wrapper.toml found\nplease specify the metadata explicitly, e.g.:\n  ink-wrapper generate -m target/ink/flipper.json"

type manifest struct {
	Path   string
	Root   string
	Config manifestConfig
}

type manifestConfig struct {
	Contract contractConfig `toml:"contract"`
	Generate generateConfig `toml:"generate"`
}

type contractConfig struct {
	Metadata string `toml:"metadata"`
	Wasm     string `toml:"wasm"`
}

type generateConfig struct {
	Package string `toml:"package"`
	Out     string `toml:"out"`
}

// findManifest ищет ink-wrapper.toml от startDir вверх до корня
func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "ink-wrapper.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadManifest(startDir string) (*manifest, bool, error) {
	manifestPath, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadManifestConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadManifestConfig(path string) (manifestConfig, error) {
	var cfg manifestConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return manifestConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("contract") {
		return manifestConfig{}, fmt.Errorf("%s: missing [contract]", path)
	}
	if !meta.IsDefined("contract", "metadata") || strings.TrimSpace(cfg.Contract.Metadata) == "" {
		return manifestConfig{}, fmt.Errorf("%s: missing [contract].metadata", path)
	}
	return cfg, nil
}

// resolve превращает путь из манифеста в путь относительно его каталога
func (m *manifest) resolve(rel string) string {
	rel = strings.TrimSpace(rel)
	if rel == "" {
		return ""
	}
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(m.Root, filepath.FromSlash(rel))
}
