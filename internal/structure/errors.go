package structure

import (
	"errors"
	"fmt"
)

// ErrNoStructureFound is returned when a response contains no JSON-shaped region.
var ErrNoStructureFound = errors.New("no valid JSON structure found in the response")

// MalformedError means a JSON-shaped region was found but neither the strict
// nor the repaired parse produced a CodeStructure.
type MalformedError struct {
	Err error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed code structure: %v", e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// CommandError reports a setup command that exited non-zero or timed out.
type CommandError struct {
	Command  string
	Stderr   string
	ExitCode int
	TimedOut bool
	Err      error
}

func (e *CommandError) Error() string {
	if e.TimedOut {
		return fmt.Sprintf("command %q timed out", e.Command)
	}
	msg := fmt.Sprintf("command %q failed with exit code %d", e.Command, e.ExitCode)
	switch {
	case e.Stderr != "":
		msg += " (stderr: " + e.Stderr + ")"
	case e.Err != nil:
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

// FolderError reports a directory that could not be created.
type FolderError struct {
	Path string
	Err  error
}

func (e *FolderError) Error() string {
	return fmt.Sprintf("failed to create folder %s: %v", e.Path, e.Err)
}

func (e *FolderError) Unwrap() error { return e.Err }

// FileWriteError reports a file that could not be written.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("failed to write file %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error { return e.Err }

// UnsafePathError is returned for a folder or file path that resolves outside the base directory.
type UnsafePathError struct {
	Path string
	Base string
}

func (e *UnsafePathError) Error() string {
	return fmt.Sprintf("path %q escapes base directory %s", e.Path, e.Base)
}

// IsInputError reports whether err was caused by the model response itself
// (nothing to extract, unparseable, or unsafe paths) rather than by the
// filesystem or a command.
func IsInputError(err error) bool {
	var malformed *MalformedError
	var unsafe *UnsafePathError
	return errors.Is(err, ErrNoStructureFound) || errors.As(err, &malformed) || errors.As(err, &unsafe)
}
