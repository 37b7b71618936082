// Package domain provides shared domain-level sentinel errors.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfig indicates missing or invalid configuration input.
var ErrConfig = errors.New("configuration error")

// ErrTemplate indicates a template problem: an unrecognized kind or a render failure.
var ErrTemplate = errors.New("template error")

// ErrUnknownTemplate indicates the template identifier is not recognized.
var ErrUnknownTemplate = fmt.Errorf("%w: no such template", ErrTemplate)

// ErrSMTP indicates a failure during the SMTP session (connect, auth or send).
var ErrSMTP = errors.New("smtp error")

// ErrPublish indicates a failure to deliver the completion event to the bus.
var ErrPublish = errors.New("publish error")

// MissingVarsError reports every required environment variable that is
// absent, not just the first one found.
type MissingVarsError struct {
	Vars []string
}

func (e *MissingVarsError) Error() string {
	return "missing required environment variables: " + strings.Join(e.Vars, ", ")
}

// Is makes MissingVarsError match ErrConfig in errors.Is chains.
func (e *MissingVarsError) Is(target error) bool {
	return target == ErrConfig
}
