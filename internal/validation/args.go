// Package validation checks probe arguments before any connection is
// attempted, so that bad input fails fast as a usage error instead of
// surfacing as a confusing transport failure.
package validation

import (
	"fmt"
	"net"
	"regexp"
)

const (
	MinPort = 1
	MaxPort = 65535

	// The watchdog budget is bounded so a typo cannot disable it.
	MinTimeoutSeconds = 1
	MaxTimeoutSeconds = 3600
)

// tableNameRe mirrors the identifier rule of the storage layer: a leading
// alphanumeric followed by alphanumerics, underscores, dots, colons, or
// hyphens. The catalog tables are exempt and matched by fixed string.
var tableNameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.:-]*$`)

// hostnameRe accepts RFC 1123 labels joined by dots.
var hostnameRe = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?)*$`)

// Host validates a hostname, FQDN, or IP address.
func Host(s string) error {
	if s == "" {
		return fmt.Errorf("host is required")
	}
	if net.ParseIP(s) != nil {
		return nil
	}
	if len(s) > 253 || !hostnameRe.MatchString(s) {
		return fmt.Errorf("invalid host %q: must be a hostname, FQDN, or IP address", s)
	}
	return nil
}

// Port validates a TCP port number.
func Port(n int) error {
	if n < MinPort || n > MaxPort {
		return fmt.Errorf("invalid port %d: must be between %d and %d", n, MinPort, MaxPort)
	}
	return nil
}

// TimeoutSeconds validates the overall probe deadline.
func TimeoutSeconds(n int) error {
	if n < MinTimeoutSeconds || n > MaxTimeoutSeconds {
		return fmt.Errorf("invalid timeout %d: must be between %d and %d seconds", n, MinTimeoutSeconds, MaxTimeoutSeconds)
	}
	return nil
}

// TableName validates a user-supplied table identifier.
func TableName(s string) error {
	if s == "" {
		return fmt.Errorf("empty table name")
	}
	if !tableNameRe.MatchString(s) {
		return fmt.Errorf("invalid table name %q: must start with an alphanumeric and contain only alphanumerics, '_', '.', ':', or '-'", s)
	}
	return nil
}
