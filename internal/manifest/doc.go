// Package manifest edits semi-structured manifest files with line-oriented
// state machines instead of a full parser. Two constructs are understood: a
// top-level `name = [...]` array and a named `[section]` block. Everything
// outside the targeted construct passes through byte for byte, so comments,
// blank lines and unrelated sections in human-edited files survive every
// edit. Files are rewritten in memory and replaced atomically.
package manifest
