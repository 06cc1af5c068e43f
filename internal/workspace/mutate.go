package workspace

import (
	"errors"
	"fmt"
	"io"
	"os"

	"cratews/internal/build"
	"cratews/internal/git"
	"cratews/internal/manifest"
	"cratews/internal/scaffold"
)

// Mutator sequences one membership mutation: filesystem change first, then
// registry edit, then dependency-graph edits, then the best-effort VCS and
// build collaborators. Collaborator fields are replaceable in tests.
type Mutator struct {
	Ctx *Context
	Out io.Writer // progress lines
	Err io.Writer // warnings

	Scaffold    func(dir, name, manifestName string, kind scaffold.Kind) (string, error)
	IsVersioned func(root string) bool
	Snapshot    func(root, message string) error
	Verify      func(root string, cmdline []string) error

	SkipVCS    bool
	SkipVerify bool
}

// NewMutator wires the real collaborators. out receives progress, errw
// receives warnings; either may be nil.
func NewMutator(ctx *Context, out, errw io.Writer) *Mutator {
	if out == nil {
		out = io.Discard
	}
	if errw == nil {
		errw = io.Discard
	}
	return &Mutator{
		Ctx:         ctx,
		Out:         out,
		Err:         errw,
		Scaffold:    scaffold.CreateMemberSkeleton,
		IsVersioned: git.IsRepo,
		Snapshot:    git.Snapshot,
		Verify:      build.Verify,
	}
}

// Report summarizes one mutation for the final user-facing summary.
type Report struct {
	Member   string   `json:"member"`
	Path     string   `json:"path"`
	Registry string   `json:"registry"`
	Linked   []string `json:"linked,omitempty"`
	Skipped  []string `json:"skipped,omitempty"`
	Unlinked []string `json:"unlinked,omitempty"`

	Committed  bool   `json:"committed"`
	Verified   bool   `json:"verified"`
	VCSError   string `json:"vcs_error,omitempty"`
	BuildError string `json:"build_error,omitempty"`
}

// Add creates the member on disk, registers it, and links the requested
// dependency targets. Unknown targets are skipped with a warning and listed
// in the report; they never fail the operation.
func (m *Mutator) Add(name string, kind scaffold.Kind, links []string) (*Report, error) {
	if err := ValidateMemberName(name); err != nil {
		return nil, err
	}

	dir := m.Ctx.MemberDir(name)
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrMemberExists, m.Ctx.MemberPath(name))
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating member directory: %w", err)
	}
	if _, err := m.Scaffold(dir, name, m.Ctx.Config.ManifestName, kind); err != nil {
		return nil, fmt.Errorf("scaffolding %s: %w", name, err)
	}
	m.progress("Created %s (%s)", m.Ctx.MemberPath(name), kind)

	rep := &Report{Member: name, Path: m.Ctx.MemberPath(name)}

	outcome, err := m.Ctx.AddToRegistry(name)
	if err != nil {
		return rep, err
	}
	rep.Registry = outcome.String()
	if outcome == manifest.AlreadyPresent {
		m.warn("Registry entry for %s was already present", rep.Path)
	} else {
		m.progress("Registered %s", rep.Path)
	}

	for _, target := range links {
		if target == name {
			m.warn("Skipping self link %q", target)
			rep.Skipped = append(rep.Skipped, target)
			continue
		}
		outcome, err := m.Ctx.Link(name, target)
		switch {
		case errors.Is(err, ErrMemberNotFound):
			m.warn("Skipping unknown link target %q", target)
			rep.Skipped = append(rep.Skipped, target)
		case err != nil:
			return rep, err
		default:
			if outcome == manifest.Added {
				m.progress("Linked %s -> %s", name, target)
			}
			rep.Linked = append(rep.Linked, target)
		}
	}

	m.finish(rep, fmt.Sprintf("Add %s member %s", kind, name))
	return rep, nil
}

// Remove deletes the member directory, drops its registry entry, and strips
// every dependency edge pointing at it from the remaining members.
func (m *Mutator) Remove(name string) (*Report, error) {
	if err := ValidateMemberName(name); err != nil {
		return nil, err
	}

	dir := m.Ctx.MemberDir(name)
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, m.Ctx.MemberPath(name))
	}

	if err := os.RemoveAll(dir); err != nil {
		return nil, fmt.Errorf("removing member directory: %w", err)
	}
	m.progress("Removed %s", m.Ctx.MemberPath(name))

	rep := &Report{Member: name, Path: m.Ctx.MemberPath(name)}

	outcome, err := m.Ctx.RemoveFromRegistry(name)
	if err != nil {
		return rep, err
	}
	rep.Registry = outcome.String()
	if outcome == manifest.NotPresent {
		m.warn("Registry had no entry for %s", rep.Path)
	} else {
		m.progress("Unregistered %s", rep.Path)
	}

	modified, err := m.Ctx.UnlinkAll(name)
	if err != nil {
		return rep, err
	}
	rep.Unlinked = modified
	for _, from := range modified {
		m.progress("Unlinked %s -> %s", from, name)
	}

	m.finish(rep, "Remove member "+name)
	return rep, nil
}

// finish runs the best-effort post-mutation collaborators. Their failures
// land in the report and on the warning stream; the mutation stands either
// way.
func (m *Mutator) finish(rep *Report, message string) {
	if !m.SkipVCS && m.IsVersioned(m.Ctx.Root) {
		if err := m.Snapshot(m.Ctx.Root, message); err != nil {
			rep.VCSError = err.Error()
			m.warn("VCS snapshot failed: %v", err)
		} else {
			rep.Committed = true
			m.progress("Committed workspace changes")
		}
	}

	if !m.SkipVerify {
		if err := m.Verify(m.Ctx.Root, m.Ctx.Config.BuildCmd); err != nil {
			rep.BuildError = err.Error()
			m.warn("Build verification failed: %v", err)
		} else {
			rep.Verified = true
			m.progress("Build verification passed")
		}
	}
}

func (m *Mutator) progress(format string, args ...any) {
	_, _ = fmt.Fprintf(m.Out, format+"\n", args...)
}

func (m *Mutator) warn(format string, args ...any) {
	_, _ = fmt.Fprintf(m.Err, "Warning: "+format+"\n", args...)
}
