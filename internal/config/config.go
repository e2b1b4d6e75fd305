// Package config loads bindgen.toml, the per-project settings of the C# generator.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up by Find.
const FileName = "bindgen.toml"

// Config holds configuration for C# code generation.
type Config struct {
	// Namespace is the C# namespace of generated code. Defaults to "uniffi.<namespace>".
	Namespace string `toml:"namespace"`
	// ClassName is the static class holding top-level functions. Defaults to "<Namespace>Methods".
	ClassName string `toml:"class_name"`
	// OutputFile is the generated file name. Defaults to "<namespace>.cs".
	OutputFile string `toml:"output_file"`
	// GenerateComments enables doc comments in generated code.
	GenerateComments bool `toml:"generate_comments"`
	// AccessModifier is "internal" or "public".
	AccessModifier string `toml:"access_modifier"`
}

type fileConfig struct {
	Bindings struct {
		CSharp Config `toml:"csharp"`
	} `toml:"bindings"`
}

// DefaultConfig returns the default generator configuration.
// Empty name fields are derived from the interface namespace at generation time.
func DefaultConfig() Config {
	return Config{
		GenerateComments: true,
		AccessModifier:   "internal",
	}
}

// Load reads a bindgen.toml file. Keys that are not set keep their defaults.
func Load(path string) (Config, error) {
	cfg := fileConfig{}
	cfg.Bindings.CSharp = DefaultConfig()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	// Tables of other languages' generators may share the file.
	var unknown []string

	for _, k := range meta.Undecoded() {
		if len(k) > 2 && k[0] == "bindings" && k[1] == "csharp" {
			unknown = append(unknown, k.String())
		}
	}

	if len(unknown) > 0 {
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(unknown, ", "))
	}

	if err := cfg.Bindings.CSharp.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg.Bindings.CSharp, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	switch c.AccessModifier {
	case "internal", "public":
	default:
		return fmt.Errorf("[bindings.csharp].access_modifier must be \"internal\" or \"public\", got %q", c.AccessModifier)
	}

	return nil
}

// Find walks up from startDir looking for bindgen.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
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

// LoadOrDefault finds and loads bindgen.toml starting at startDir, falling back
// to DefaultConfig when none exists.
func LoadOrDefault(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}

	if !ok {
		return DefaultConfig(), nil
	}

	return Load(path)
}
