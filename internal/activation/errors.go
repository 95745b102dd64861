package activation

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies why an activation run failed. The set is closed.
type Kind int

const (
	KindUnclassified Kind = iota
	KindMissingConfig
	KindDirectoryCreation
	KindLaunchFailure
)

func (k Kind) String() string {
	switch k {
	case KindMissingConfig:
		return "MissingConfig"
	case KindDirectoryCreation:
		return "DirectoryCreationFailure"
	case KindLaunchFailure:
		return "LaunchFailure"
	default:
		return "UnclassifiedActivationFailure"
	}
}

// Error is the only error type Run returns.
type Error struct {
	Kind Kind
	// Names lists the unset variables for KindMissingConfig.
	Names []string
	// Path is the directory that could not be prepared for KindDirectoryCreation.
	Path string
	// ExitStatus is the editor status for KindLaunchFailure and KindUnclassified.
	ExitStatus int
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingConfig:
		return fmt.Sprintf("Missing environment variable: %s", strings.Join(e.Names, ", "))
	case KindDirectoryCreation:
		return fmt.Sprintf("Failed to create directory: %s", e.Path)
	case KindLaunchFailure:
		return fmt.Sprintf("Unity activation failed with exit code: %d", e.ExitStatus)
	default:
		return "Unclassified error occurred while trying to activate license."
	}
}

func (e *Error) Unwrap() error { return e.Err }

// ExitCode is the process exit status for this failure. Launch failures
// propagate the editor sentinel; everything else exits 1.
func (e *Error) ExitCode() int {
	if e.Kind == KindLaunchFailure {
		return e.ExitStatus
	}
	return 1
}

// Annotated reports whether the failure gets a CI error annotation.
func (e *Error) Annotated() bool {
	return e.Kind == KindLaunchFailure || e.Kind == KindUnclassified
}

// MissingConfig reports unset configuration variables.
func MissingConfig(names ...string) *Error {
	return &Error{Kind: KindMissingConfig, Names: names}
}

// DirectoryCreationFailure reports a directory that could not be created or entered.
func DirectoryCreationFailure(path string, err error) *Error {
	return &Error{Kind: KindDirectoryCreation, Path: path, Err: err}
}

// LaunchFailure reports that the editor could not be started.
func LaunchFailure(exitStatus int, err error) *Error {
	return &Error{Kind: KindLaunchFailure, ExitStatus: exitStatus, Err: err}
}

// UnclassifiedFailure reports that no attempt produced a zero exit status.
func UnclassifiedFailure(exitStatus int) *Error {
	return &Error{Kind: KindUnclassified, ExitStatus: exitStatus}
}

// IsKind reports whether err is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == k
}

// ExitCode maps any error to a process exit status: 0 for nil, the
// activation exit code for *Error, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.ExitCode()
	}
	return 1
}
