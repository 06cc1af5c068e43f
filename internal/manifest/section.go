package manifest

import (
	"regexp"
	"strings"
)

// headerLine matches the generic shape of a section header. Any header ends
// the section currently being scanned.
var headerLine = regexp.MustCompile(`^\s*\[[^\]]*\]\s*$`)

func sectionHeader(section string) *regexp.Regexp {
	return regexp.MustCompile(`^\s*\[` + regexp.QuoteMeta(section) + `\]\s*$`)
}

// HasSection reports whether the document contains a header for the named
// section.
func HasSection(src, section string) bool {
	target := sectionHeader(section)
	for _, line := range splitLines(src) {
		if target.MatchString(line) {
			return true
		}
	}
	return false
}

// InsertSectionEntry appends entry at the end of the named section unless a
// line whose first whitespace-delimited token equals name is already there.
// When the section is absent, a new header plus the entry is appended at
// end-of-file.
func InsertSectionEntry(src, section, name, entry string) (string, Outcome) {
	lines := splitLines(src)
	target := sectionHeader(section)

	inSection := false
	found := false
	end := -1 // insertion index: just past the section's last non-blank line
	for i, line := range lines {
		if headerLine.MatchString(line) {
			inSection = target.MatchString(line)
			if inSection {
				found = true
				end = i + 1
			}
			continue
		}
		if !inSection {
			continue
		}
		if firstToken(line) == name {
			return src, AlreadyPresent
		}
		if strings.TrimSpace(line) != "" {
			end = i + 1
		}
	}

	if !found {
		return appendSection(lines, section, entry), Added
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:end]...)
	out = append(out, entry)
	out = append(out, lines[end:]...)
	return joinLines(out), Added
}

// RemoveSectionEntry drops every line inside the named section whose first
// whitespace-delimited token equals name exactly. Token equality means
// removing "foo" never touches an entry for "foobar". A missing section or
// entry is a no-op reporting NotPresent.
func RemoveSectionEntry(src, section, name string) (string, Outcome) {
	lines := splitLines(src)
	target := sectionHeader(section)

	inSection := false
	removed := false
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if headerLine.MatchString(line) {
			inSection = target.MatchString(line)
			out = append(out, line)
			continue
		}
		if inSection && firstToken(line) == name {
			removed = true
			continue
		}
		out = append(out, line)
	}

	if !removed {
		return src, NotPresent
	}
	return joinLines(out), Removed
}

// SectionEntryNames returns the first token of each non-blank line in the
// named section, in document order.
func SectionEntryNames(src, section string) []string {
	target := sectionHeader(section)

	inSection := false
	var names []string
	for _, line := range splitLines(src) {
		if headerLine.MatchString(line) {
			inSection = target.MatchString(line)
			continue
		}
		if !inSection {
			continue
		}
		if tok := firstToken(line); tok != "" {
			names = append(names, tok)
		}
	}
	return names
}

func appendSection(lines []string, section, entry string) string {
	trailing := false
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
		trailing = true
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) != "" {
		lines = append(lines, "")
	}
	lines = append(lines, "["+section+"]", entry)
	if trailing {
		lines = append(lines, "")
	}
	return joinLines(lines)
}

// firstToken returns the first whitespace-delimited token of a line, or ""
// for blank lines.
func firstToken(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
