// Package status defines the plugin verdict severities and their exit codes.
package status

// Status is a monitoring plugin severity. Severities only ever escalate over
// the life of a probe run: once a table raises CRITICAL nothing lowers it.
type Status string

const (
	OK       Status = "OK"
	Warning  Status = "WARNING"
	Critical Status = "CRITICAL"
	Unknown  Status = "UNKNOWN"
)

// statusRank doubles as the conventional plugin exit code for each severity.
var statusRank = map[Status]int{
	OK:       0,
	Warning:  1,
	Critical: 2,
	Unknown:  3,
}

func (s Status) String() string {
	return string(s)
}

// ExitCode returns the process exit code for s. Unrecognized values map to
// the UNKNOWN code so a corrupted status can never report success.
func (s Status) ExitCode() int {
	if _, ok := statusRank[s]; !ok {
		return statusRank[Unknown]
	}
	return statusRank[s]
}

// AtLeast returns true if s is at or above the target severity.
func (s Status) AtLeast(target Status) bool {
	return statusRank[s] >= statusRank[target]
}

// Worse returns the more severe of a and b. UNKNOWN outranks everything; it
// is reserved for aborted runs, never for table-level findings.
func Worse(a, b Status) Status {
	if statusRank[b] > statusRank[a] {
		return b
	}
	return a
}
