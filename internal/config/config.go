// Package config loads the optional .cratews.yaml tool configuration found
// at the workspace root. A missing file yields the defaults; a malformed one
// is a hard error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the tool config file looked up at the workspace root.
const FileName = ".cratews.yaml"

// Config controls workspace layout conventions and post-mutation behavior.
type Config struct {
	MembersRoot  string   `yaml:"members_root,omitempty"`
	ManifestName string   `yaml:"manifest_name,omitempty"`
	DepsSection  string   `yaml:"deps_section,omitempty"`
	BuildCmd     []string `yaml:"build_cmd,omitempty"`
	VCS          *bool    `yaml:"vcs,omitempty"`
}

// Default returns the cargo-flavored defaults.
func Default() *Config {
	return &Config{
		MembersRoot:  "crates",
		ManifestName: "Cargo.toml",
		DepsSection:  "dependencies",
		BuildCmd:     []string{"cargo", "check"},
	}
}

// VCSEnabled reports whether post-mutation VCS snapshots are wanted
// (default true).
func (c *Config) VCSEnabled() bool {
	if c.VCS == nil {
		return true
	}
	return *c.VCS
}

// Load reads and validates the config at path. A missing file is not an
// error; defaults are returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates config content over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if err := validateRelPath(cfg.MembersRoot, "members_root"); err != nil {
		return err
	}
	if cfg.ManifestName == "" || strings.ContainsAny(cfg.ManifestName, "/\\") {
		return fmt.Errorf("config: manifest_name must be a bare file name: %q", cfg.ManifestName)
	}
	if cfg.DepsSection == "" {
		return fmt.Errorf("config: deps_section is required")
	}
	if len(cfg.BuildCmd) == 0 {
		return fmt.Errorf("config: build_cmd must not be empty")
	}
	return nil
}

// validateRelPath ensures a path is relative and does not escape the
// workspace.
func validateRelPath(p, label string) error {
	if p == "" {
		return fmt.Errorf("config: %s is required", label)
	}
	if filepath.IsAbs(p) {
		return fmt.Errorf("config: %s: absolute path is not allowed: %s", label, p)
	}
	cleaned := filepath.Clean(p)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("config: %s: path must not escape workspace (contains ..): %s", label, p)
	}
	return nil
}
