package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file that marks a project root.
const ManifestName = "viewmacro.toml"

// Manifest is a located, parsed project manifest.
type Manifest struct {
	Path   string // absolute path to viewmacro.toml
	Root   string // directory containing it
	Config Config
}

// Config mirrors the manifest document.
type Config struct {
	Package     PackageConfig     `toml:"package"`
	Expand      ExpandConfig      `toml:"expand"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

// ExpandConfig scopes what the expand command processes.
type ExpandConfig struct {
	// Root is the source directory relative to the project root. Empty means
	// the project root itself.
	Root string `toml:"root"`
}

type DiagnosticsConfig struct {
	// Max caps reported diagnostics; 0 keeps the built-in default.
	Max              int  `toml:"max"`
	NoWarnings       bool `toml:"no_warnings"`
	WarningsAsErrors bool `toml:"warnings_as_errors"`
}

// FindManifest walks up from startDir to locate viewmacro.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
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

// Load locates and parses the manifest governing startDir. ok is false when
// no manifest exists anywhere up the tree.
func Load(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if cfg.Diagnostics.Max < 0 {
		return Config{}, fmt.Errorf("%s: [diagnostics].max must not be negative", path)
	}
	return cfg, nil
}

// SourceRoot resolves the configured expand root to an absolute directory.
func (m *Manifest) SourceRoot() string {
	root := strings.TrimSpace(m.Config.Expand.Root)
	if root == "" {
		return m.Root
	}
	return filepath.Join(m.Root, filepath.FromSlash(root))
}
