package manifest

// Outcome reports what an edit actually did. AlreadyPresent and NotPresent
// are informational, not errors: callers may proceed after either.
type Outcome int

const (
	Added Outcome = iota
	AlreadyPresent
	Removed
	NotPresent
)

func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case AlreadyPresent:
		return "already present"
	case Removed:
		return "removed"
	case NotPresent:
		return "not present"
	default:
		return "unknown"
	}
}

// Changed reports whether the edit modified the document.
func (o Outcome) Changed() bool {
	return o == Added || o == Removed
}
