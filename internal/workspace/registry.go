package workspace

import (
	"cratews/internal/manifest"
)

// membersArray is the root manifest array naming all members.
const membersArray = "members"

// AddToRegistry records a member path in the root manifest's members array.
// An entry that already exists is left alone and reported AlreadyPresent;
// when the array is absent entirely, a new one is appended holding just this
// member.
func (c *Context) AddToRegistry(name string) (manifest.Outcome, error) {
	entry := c.MemberPath(name)
	return manifest.EditFile(c.ManifestPath, func(src string) (string, manifest.Outcome) {
		return manifest.InsertArrayElement(src, membersArray, entry)
	})
}

// RemoveFromRegistry drops a member path from the members array. A missing
// array or entry is a no-op reported as NotPresent.
func (c *Context) RemoveFromRegistry(name string) (manifest.Outcome, error) {
	entry := c.MemberPath(name)
	return manifest.EditFile(c.ManifestPath, func(src string) (string, manifest.Outcome) {
		return manifest.RemoveArrayElement(src, membersArray, entry)
	})
}
