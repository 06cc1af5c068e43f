package workspace

import (
	"fmt"
	"os"

	"cratews/internal/manifest"
)

// DepEntry renders the dependency line declaring an edge to a sibling
// member. Its first whitespace-delimited token is the target name, which is
// what the section filter matches on.
func DepEntry(target string) string {
	return fmt.Sprintf("%s = { path = \"../%s\" }", target, target)
}

// Link records a dependency edge from member to target in member's manifest.
// Linking is idempotent. Self-edges are rejected, and a target without a
// manifest on disk yields ErrMemberNotFound so callers can downgrade it to a
// warning.
func (c *Context) Link(member, target string) (manifest.Outcome, error) {
	if member == target {
		return manifest.NotPresent, fmt.Errorf("member %q cannot depend on itself", member)
	}
	if _, err := os.Stat(c.MemberManifest(target)); err != nil {
		return manifest.NotPresent, fmt.Errorf("%w: link target %q has no manifest", ErrMemberNotFound, target)
	}

	section := c.Config.DepsSection
	return manifest.EditFile(c.MemberManifest(member), func(src string) (string, manifest.Outcome) {
		return manifest.InsertSectionEntry(src, section, target, DepEntry(target))
	})
}

// UnlinkAll removes every dependency edge pointing at target from all other
// members discovered on disk. It returns the names of members whose
// manifests actually changed, in scan order.
func (c *Context) UnlinkAll(target string) ([]string, error) {
	members, err := c.Members()
	if err != nil {
		return nil, err
	}

	section := c.Config.DepsSection
	var modified []string
	for _, m := range members {
		if m == target {
			continue
		}
		outcome, err := manifest.EditFile(c.MemberManifest(m), func(src string) (string, manifest.Outcome) {
			return manifest.RemoveSectionEntry(src, section, target)
		})
		if err != nil {
			return modified, err
		}
		if outcome == manifest.Removed {
			modified = append(modified, m)
		}
	}
	return modified, nil
}
