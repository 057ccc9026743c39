package gateways

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// CommandRunner executes external commands with captured output
type CommandRunner struct {
	defaultTimeout time.Duration
}

// NewCommandRunner creates a new command runner
func NewCommandRunner() *CommandRunner {
	return &CommandRunner{
		defaultTimeout: 2 * time.Minute,
	}
}

// RunConfig contains configuration for executing one command
type RunConfig struct {
	Command    string
	Args       []string
	WorkingDir string
	Timeout    time.Duration
}

// RunResult contains the result of command execution
type RunResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Run executes the command and captures stdout/stderr. A non-zero exit code is
// reported through RunResult, not as an error; errors mean the command could
// not be run at all.
func (r *CommandRunner) Run(ctx context.Context, config RunConfig) (*RunResult, error) {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = r.defaultTimeout
	}

	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	//nolint:gosec // G204: command and args are fixed by the calling step
	cmd := exec.CommandContext(execCtx, config.Command, config.Args...)
	if config.WorkingDir != "" {
		cmd.Dir = config.WorkingDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	result := &RunResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		if execCtx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("command timed out after %v: %s", timeout, config.Command)
		}
		return nil, fmt.Errorf("failed to run %s: %w", config.Command, err)
	}

	return result, nil
}
