package manifest

import (
	"regexp"
	"strings"
)

// closingOnly matches a line that is nothing but the array's closing bracket
// (an optional trailing comma tolerated for arrays nested in larger values).
var closingOnly = regexp.MustCompile(`^\s*\]\s*,?\s*$`)

// arrayStart matches a top-level assignment of the named array, e.g.
// `members = [`.
func arrayStart(array string) *regexp.Regexp {
	return regexp.MustCompile(`^\s*` + regexp.QuoteMeta(array) + `\s*=\s*\[`)
}

// InsertArrayElement inserts element into the named array, quoting it. The
// insert is idempotent: an existing element equal to the candidate leaves the
// document untouched and reports AlreadyPresent. Single-line arrays gain the
// element before the closing bracket; multi-line arrays gain a new entry line
// before the bracket-only closing line. When no such array exists anywhere in
// the document, a fresh array holding only the element is appended at
// end-of-file, leaving prior content untouched.
func InsertArrayElement(src, array, element string) (string, Outcome) {
	lines := splitLines(src)
	start := arrayStart(array)
	quoted := quote(element)

	for i, line := range lines {
		if !start.MatchString(line) {
			continue
		}

		open := strings.Index(line, "[")
		if rel := strings.Index(line[open:], "]"); rel >= 0 {
			// Single-line array.
			inner := line[open+1 : open+rel]
			for _, e := range splitElements(inner) {
				if e == quoted {
					return src, AlreadyPresent
				}
			}
			sep := ""
			if strings.TrimSpace(inner) != "" {
				sep = ", "
			}
			at := open + rel
			lines[i] = line[:at] + sep + quoted + line[at:]
			return joinLines(lines), Added
		}

		// Multi-line array: walk to the closing bracket, checking existing
		// entries on the way and matching their indentation.
		indent := "    "
		for j := i + 1; j < len(lines); j++ {
			if closingOnly.MatchString(lines[j]) {
				out := make([]string, 0, len(lines)+1)
				out = append(out, lines[:j]...)
				out = append(out, indent+quoted+",")
				out = append(out, lines[j:]...)
				return joinLines(out), Added
			}
			trimmed := strings.TrimSpace(lines[j])
			if trimmed == "" {
				continue
			}
			if strings.TrimSuffix(trimmed, ",") == quoted {
				return src, AlreadyPresent
			}
			indent = leadingIndent(lines[j])
		}

		// Unterminated array: append the entry as the final line.
		return joinLines(append(lines, indent+quoted+",")), Added
	}

	return appendArray(lines, array, quoted), Added
}

// RemoveArrayElement removes element from the named array. The scan spans
// from the array assignment line to the bracket-only closing line; any entry
// line in between containing the quoted element is dropped. A missing array
// or element is a no-op reporting NotPresent.
func RemoveArrayElement(src, array, element string) (string, Outcome) {
	lines := splitLines(src)
	start := arrayStart(array)
	quoted := quote(element)

	for i, line := range lines {
		if !start.MatchString(line) {
			continue
		}

		open := strings.Index(line, "[")
		if strings.Contains(line[open:], "]") {
			if !strings.Contains(line, quoted) {
				return src, NotPresent
			}
			lines[i] = removeInline(line, quoted)
			return joinLines(lines), Removed
		}

		out := append([]string(nil), lines[:i+1]...)
		removed := false
		j := i + 1
		for ; j < len(lines); j++ {
			if closingOnly.MatchString(lines[j]) {
				break
			}
			if strings.Contains(lines[j], quoted) {
				removed = true
				continue
			}
			out = append(out, lines[j])
		}
		out = append(out, lines[j:]...)
		if !removed {
			return src, NotPresent
		}
		return joinLines(out), Removed
	}

	return src, NotPresent
}

// ArrayElements returns the unquoted elements of the named array, or nil when
// the array is absent. Read-only companion to the splice operations.
func ArrayElements(src, array string) []string {
	lines := splitLines(src)
	start := arrayStart(array)

	for i, line := range lines {
		if !start.MatchString(line) {
			continue
		}

		open := strings.Index(line, "[")
		if rel := strings.Index(line[open:], "]"); rel >= 0 {
			return unquoteAll(splitElements(line[open+1 : open+rel]))
		}

		var elems []string
		for j := i + 1; j < len(lines); j++ {
			if closingOnly.MatchString(lines[j]) {
				break
			}
			elems = append(elems, splitElements(lines[j])...)
		}
		return unquoteAll(elems)
	}
	return nil
}

// appendArray writes a fresh multi-line array at end-of-file, preserving the
// document's trailing-newline state and separating it from prior content with
// a blank line.
func appendArray(lines []string, array, quoted string) string {
	trailing := false
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
		trailing = true
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) != "" {
		lines = append(lines, "")
	}
	lines = append(lines, array+" = [", "    "+quoted+",", "]")
	if trailing {
		lines = append(lines, "")
	}
	return joinLines(lines)
}

// removeInline drops the quoted element from a single-line array together
// with one adjoining comma, leaving every other byte of the line intact.
func removeInline(line, quoted string) string {
	for _, pat := range []string{", " + quoted, "," + quoted, quoted + ", ", quoted + ","} {
		if strings.Contains(line, pat) {
			return strings.Replace(line, pat, "", 1)
		}
	}
	return strings.Replace(line, quoted, "", 1)
}

// splitElements splits array content on commas and trims whitespace,
// dropping empties left by trailing commas.
func splitElements(inner string) []string {
	var elems []string
	for _, part := range strings.Split(inner, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			elems = append(elems, part)
		}
	}
	return elems
}

func unquoteAll(elems []string) []string {
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		out = append(out, strings.Trim(e, `"`))
	}
	return out
}

func quote(s string) string {
	return `"` + s + `"`
}

func leadingIndent(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t"))]
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
