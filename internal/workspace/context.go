package workspace

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cratews/internal/config"
	"cratews/internal/manifest"
)

// Context holds the resolved paths and loaded config for a workspace.
// Resolution is pure: Load never creates or modifies anything.
type Context struct {
	Root         string
	ManifestPath string
	MembersDir   string
	Config       *config.Config
}

// Load resolves the workspace root, loads the tool config, and verifies the
// root manifest carries the [workspace] marker section.
func Load(root string) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace root: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return nil, err
	}

	manifestPath := filepath.Join(root, cfg.ManifestName)
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("%w: no %s found in %s", ErrNotAWorkspace, cfg.ManifestName, root)
	}
	if !manifest.HasSection(string(data), "workspace") {
		return nil, fmt.Errorf("%w: %s has no [workspace] section", ErrNotAWorkspace, manifestPath)
	}

	return &Context{
		Root:         root,
		ManifestPath: manifestPath,
		MembersDir:   filepath.Join(root, cfg.MembersRoot),
		Config:       cfg,
	}, nil
}

// MemberPath returns the registry entry for a member, e.g. "crates/cli".
// Always forward slashes, independent of the host OS.
func (c *Context) MemberPath(name string) string {
	return path.Join(filepath.ToSlash(c.Config.MembersRoot), name)
}

// MemberDir returns the absolute directory of a member.
func (c *Context) MemberDir(name string) string {
	return filepath.Join(c.MembersDir, name)
}

// MemberManifest returns the absolute manifest path of a member.
func (c *Context) MemberManifest(name string) string {
	return filepath.Join(c.MembersDir, name, c.Config.ManifestName)
}

// Members lists member names found on disk: directories under the members
// root that contain a manifest file. A missing members root yields an empty
// list.
func (c *Context) Members() ([]string, error) {
	entries, err := os.ReadDir(c.MembersDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning members: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(c.MembersDir, e.Name(), c.Config.ManifestName)); err == nil {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// RegisteredPaths returns the member paths recorded in the root manifest's
// members array, in manifest order.
func (c *Context) RegisteredPaths() ([]string, error) {
	data, err := os.ReadFile(c.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", c.ManifestPath, err)
	}
	return manifest.ArrayElements(string(data), membersArray), nil
}

// ValidateMemberName rejects names that cannot serve as both a directory
// name and a dependency-reference token.
func ValidateMemberName(name string) error {
	if name == "" {
		return fmt.Errorf("member name is required")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid member name %q", name)
	}
	if strings.ContainsAny(name, "/\\ \t") {
		return fmt.Errorf("member name must not contain path separators or spaces: %q", name)
	}
	return nil
}
