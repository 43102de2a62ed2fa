package tplengine

import (
	"errors"
	"fmt"
	"strings"
)

// Rendering is all-or-nothing: every failure below means no output was
// produced. All three kinds are caller-input errors; retrying with the same
// inputs cannot succeed.
var (
	// ErrTemplateNotFound is returned when a template name does not resolve.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMissingContextValue is returned when a template references a path the
	// context does not supply.
	ErrMissingContextValue = errors.New("missing context value")

	// ErrUnknownFilter is returned when a template names a filter that is not
	// registered with the engine.
	ErrUnknownFilter = errors.New("unknown filter")
)

// classifyParseError maps text/template parse failures onto the engine error
// taxonomy. A reference to an unregistered function surfaces as
// "function X not defined" at parse time.
func classifyParseError(name string, err error) error {
	if strings.Contains(err.Error(), "not defined") && strings.Contains(err.Error(), "function") {
		return fmt.Errorf("template %q: %w: %v", name, ErrUnknownFilter, err)
	}
	return fmt.Errorf("template %q: failed to parse: %w", name, err)
}

// classifyExecError maps execution failures onto the engine error taxonomy.
// With missingkey=error, unresolved map keys fail with "map has no entry for
// key"; lookups through nil or non-struct values fail with the other two
// messages.
func classifyExecError(name string, err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "map has no entry for key"),
		strings.Contains(msg, "nil pointer evaluating"),
		strings.Contains(msg, "can't evaluate field"):
		return fmt.Errorf("template %q: %w: %v", name, ErrMissingContextValue, err)
	}
	return fmt.Errorf("template %q: execution error: %w", name, err)
}
