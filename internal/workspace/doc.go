// Package workspace resolves workspace paths and performs the two
// membership mutations, AddMember and RemoveMember. A mutation keeps three
// things consistent: the member directory tree, the members array in the
// root manifest, and every other member's dependency section. Each file edit
// is atomic; the sequence across files is fixed but not transactional, so a
// crash mid-operation can leave later steps undone. Post-mutation VCS and
// build collaborators are best-effort and never roll anything back.
package workspace
