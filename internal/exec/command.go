// Package exec provides abstractions for executing external commands.
package exec

//go:generate mockgen -source=command.go -destination=command_mock.go -package=exec

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/cockroachdb/errors"
)

// ErrNotStarted marks results of commands that could not be launched at all,
// for example because the binary is missing from PATH.
var ErrNotStarted = errors.New("command could not be started")

// CommandResult contains the result of a command execution.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// Success reports whether the command ran and exited with status 0.
func (r CommandResult) Success() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Failed is the inverse of Success.
func (r CommandResult) Failed() bool {
	return !r.Success()
}

// CommandRunner executes external commands with timeout and output capture.
type CommandRunner interface {
	// Run executes a command and returns the result.
	Run(ctx context.Context, name string, args ...string) CommandResult

	// RunWithTimeout executes a command with a specific timeout.
	RunWithTimeout(timeout time.Duration, name string, args ...string) CommandResult
}

// commandRunner implements CommandRunner.
type commandRunner struct {
	defaultTimeout time.Duration
}

// NewCommandRunner creates a new CommandRunner. Commands started through Run
// with a context that has no deadline are bounded by defaultTimeout.
func NewCommandRunner(defaultTimeout time.Duration) CommandRunner {
	return &commandRunner{
		defaultTimeout: defaultTimeout,
	}
}

// Run executes a command and returns the result.
func (r *commandRunner) Run(ctx context.Context, name string, args ...string) CommandResult {
	if _, ok := ctx.Deadline(); !ok && r.defaultTimeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, r.defaultTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError

	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		result.Err = errors.Wrapf(err, "running %s", name)
	case ctx.Err() != nil:
		result.ExitCode = -1
		result.Err = errors.Wrapf(ctx.Err(), "running %s", name)
	default:
		result.ExitCode = -1
		result.Err = errors.Mark(errors.Wrapf(err, "starting %s", name), ErrNotStarted)
	}

	return result
}

// RunWithTimeout executes a command with a specific timeout.
func (r *commandRunner) RunWithTimeout(timeout time.Duration, name string, args ...string) CommandResult {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return r.Run(ctx, name, args...)
}
