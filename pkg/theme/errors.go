package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Use errors.Is to test for a failure class and errors.As
// with the typed errors below to extract details.
var (
	ErrUnknownSource    = errors.New("unknown style source")
	ErrInvalidStyle     = errors.New("invalid style")
	ErrCyclicResolution = errors.New("cyclic style resolution")
)

// UnknownSourceError is returned when a name has no registered producer.
type UnknownSourceError struct {
	Name string
}

func (e *UnknownSourceError) Error() string {
	return fmt.Sprintf("unknown style source %q", e.Name)
}

// Is matches ErrUnknownSource.
func (e *UnknownSourceError) Is(target error) bool { return target == ErrUnknownSource }

// InvalidStyleError is returned when a producer or post processor yields
// something that is not a style mapping.
type InvalidStyleError struct {
	Name   string
	Reason string
}

func (e *InvalidStyleError) Error() string {
	if e.Name == "" {
		return "invalid style: " + e.Reason
	}
	return fmt.Sprintf("invalid style for source %q: %s", e.Name, e.Reason)
}

// Is matches ErrInvalidStyle.
func (e *InvalidStyleError) Is(target error) bool { return target == ErrInvalidStyle }

// CyclicResolutionError is returned when resolving a source requires
// resolving itself, through mixins or producer callbacks.
type CyclicResolutionError struct {
	// Path lists the sources being resolved, ending with the repeated name.
	Path []string
}

func (e *CyclicResolutionError) Error() string {
	return "cyclic style resolution: " + strings.Join(e.Path, " -> ")
}

// Is matches ErrCyclicResolution.
func (e *CyclicResolutionError) Is(target error) bool { return target == ErrCyclicResolution }
