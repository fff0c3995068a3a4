package domain

import (
	"fmt"
	"strings"
)

// ConfigurationError reports required configuration keys that are absent.
// It always names every missing key, not just the first.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Missing, ", "))
}

// InvalidArgumentError reports a parameter the operation structurally requires
// but the caller omitted.
type InvalidArgumentError struct {
	Param  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid argument %q: %s", e.Param, e.Reason)
	}
	return fmt.Sprintf("invalid argument %q", e.Param)
}

// NotFoundError reports a referenced entity that does not exist or could not
// be resolved. Alternatives, when set, lists the valid names known at call time.
type NotFoundError struct {
	Resource     string
	ID           string
	Alternatives []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s not found", e.Resource)
	if e.ID != "" {
		msg = fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	if len(e.Alternatives) > 0 {
		msg += fmt.Sprintf(" (available: %s)", strings.Join(e.Alternatives, ", "))
	}
	return msg
}

// NoUsersAvailableError means the tenant has zero resolvable users when one was
// needed as an implicit sender.
type NoUsersAvailableError struct{}

func (e *NoUsersAvailableError) Error() string {
	return "no users available to send email from"
}
