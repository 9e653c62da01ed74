package cue

import "fmt"

// FormatError indicates cue text that cannot be geometrically interpreted,
// such as a timestamp that is not MM:SS:FF. The offending literal input is
// always part of the message.
type FormatError struct {
	Input  string
	Reason string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("malformed cue data %q: %s", e.Input, e.Reason)
}

// StructuralError indicates a sheet that parses cleanly but yields no usable
// FILE/TRACK structure.
type StructuralError struct {
	Reason string
}

func (e StructuralError) Error() string {
	return "invalid cue structure: " + e.Reason
}

// InvalidOperationError indicates a valid parse used with an operation whose
// precondition it violates. It points at caller misuse, not bad input data.
type InvalidOperationError struct {
	Op     string
	Reason string
}

func (e InvalidOperationError) Error() string {
	return fmt.Sprintf("invalid %s operation: %s", e.Op, e.Reason)
}

// IntegrityError indicates a dump whose file sizes disagree with its declared
// geometry: a corrupt or non-standard image rather than an environment
// problem.
type IntegrityError struct {
	Path   string
	Reason string
}

func (e IntegrityError) Error() string {
	return fmt.Sprintf("integrity mismatch in %q: %s", e.Path, e.Reason)
}
