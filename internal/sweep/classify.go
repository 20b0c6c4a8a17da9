package sweep

// Class is the classification of one process.
type Class int

const (
	// Ignored marks a process unrelated to the automation setup.
	Ignored Class = iota
	// Target marks a browser process under the automation profile,
	// eligible for termination.
	Target
	// Protected marks the automation server runtime, never terminated.
	// It takes precedence over Target when both patterns match.
	Protected
)

func (c Class) String() string {
	switch c {
	case Target:
		return "target"
	case Protected:
		return "protected"
	default:
		return "ignored"
	}
}

// Classify maps one process to exactly one Class from its display name and
// joined command line. It is a pure function: total, deterministic, and
// case-insensitive on both inputs.
func (m Markers) Classify(name, cmdline string) Class {
	if containsAny(name, m.ServerNames) && containsAny(cmdline, m.ServerMarks) {
		return Protected
	}
	if containsAny(name, m.BrowserNames) && containsAny(cmdline, m.ProfileMarks) {
		return Target
	}
	return Ignored
}
