// Package editor launches the Unity Editor in batch mode to activate a license.
//
// One call to Activate spawns exactly one editor process and blocks until it
// exits. The editor's output is passed through untouched; only the exit status
// decides success. Retrying with other credentials is left to the caller.
package editor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"unity-activate/internal/config"
	"unity-activate/internal/credentials"
	"unity-activate/pkg/logging"
)

const subsystem = "Editor"

// LaunchFailureStatus is the exit status reported when the editor process
// could not be started at all.
const LaunchFailureStatus = -1

const redacted = "****"

// For mocking in tests
var execCommand = exec.Command

var versionPattern = regexp.MustCompile(`\{\{\s*version\s*\}\}`)

// ResolvePath substitutes the Unity version into a path template.
func ResolvePath(template, version string) string {
	if template == "" {
		template = config.DefaultPathTemplate
	}
	return versionPattern.ReplaceAllLiteralString(template, version)
}

// LaunchError reports that the editor binary could not be started
// (missing file, permission denied, ...). It is distinct from the editor
// running and exiting non-zero.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to execute Unity at %s: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// Invocation is a fully built editor command line.
type Invocation struct {
	Path string
	Args []string
}

// String renders the invocation with the password and serial redacted.
func (i Invocation) String() string {
	parts := make([]string, 0, len(i.Args)+1)
	parts = append(parts, i.Path)
	for idx := 0; idx < len(i.Args); idx++ {
		parts = append(parts, i.Args[idx])
		if (i.Args[idx] == "-password" || i.Args[idx] == "-serial") && idx+1 < len(i.Args) {
			parts = append(parts, redacted)
			idx++
		}
	}
	return strings.Join(parts, " ")
}

// Editor runs a specific Unity Editor binary.
type Editor struct {
	path      string
	extraArgs []string
	stdout    io.Writer
	stderr    io.Writer
}

// Option configures an Editor.
type Option func(*Editor)

// WithOutput sets where the editor's stdout and stderr go.
// Defaults are os.Stdout and os.Stderr.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(e *Editor) {
		e.stdout = stdout
		e.stderr = stderr
	}
}

// WithExtraArgs appends arguments after the activation flags.
func WithExtraArgs(args ...string) Option {
	return func(e *Editor) {
		e.extraArgs = append(e.extraArgs, args...)
	}
}

// New creates an Editor for the binary at path.
func New(path string, opts ...Option) *Editor {
	e := &Editor{
		path:   path,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Path returns the editor binary this Editor launches.
func (e *Editor) Path() string {
	return e.path
}

// Command builds the batch-mode activation command line for cred.
func (e *Editor) Command(cred credentials.Record, projectPath string) Invocation {
	args := []string{
		"-logFile", "-",
		"-batchmode",
		"-nographics",
		"-quit",
		"-serial", cred.Serial,
		"-username", cred.Email,
		"-password", cred.Password,
		"-projectPath", projectPath,
	}
	args = append(args, e.extraArgs...)
	return Invocation{Path: e.path, Args: args}
}

// Activate runs the editor once with cred and returns its exit status.
// A non-nil error is always a *LaunchError, returned together with
// LaunchFailureStatus.
func (e *Editor) Activate(cred credentials.Record, projectPath string) (int, error) {
	inv := e.Command(cred, projectPath)
	logging.Debug(subsystem, "Running %s", inv)

	cmd := execCommand(inv.Path, inv.Args...)
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		status := exitErr.ExitCode()
		logging.Debug(subsystem, "Unity exited with status %d", status)
		return status, nil
	}

	launchErr := &LaunchError{Path: inv.Path, Err: err}
	logging.Error(subsystem, err, "Failed to execute Unity")
	return LaunchFailureStatus, launchErr
}

// DryRun prints each invocation instead of running it and reports success.
type DryRun struct {
	editor *Editor
	out    io.Writer
}

// NewDryRun wraps editor so that Activate only prints the command line.
func NewDryRun(editor *Editor, out io.Writer) *DryRun {
	return &DryRun{editor: editor, out: out}
}

// Activate prints the redacted command line and returns 0.
func (d *DryRun) Activate(cred credentials.Record, projectPath string) (int, error) {
	fmt.Fprintf(d.out, "[dry-run] %s\n", d.editor.Command(cred, projectPath))
	return 0, nil
}
