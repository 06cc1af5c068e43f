package workspace

import "errors"

var (
	// ErrNotAWorkspace means the root manifest is missing or lacks the
	// [workspace] marker section.
	ErrNotAWorkspace = errors.New("not a workspace")

	// ErrMemberExists means AddMember found the member directory already on
	// disk.
	ErrMemberExists = errors.New("member already exists")

	// ErrMemberNotFound means the named member has no directory (remove) or
	// no manifest (link target).
	ErrMemberNotFound = errors.New("member not found")
)
