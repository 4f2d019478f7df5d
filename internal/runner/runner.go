// Package runner provides the single choke point for external command
// execution. Every delegated CLI call goes through a Runner so that callers
// always see the command's exit status and output, and tests can substitute
// a recording fake.
package runner

import (
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes an external command. A non-nil error means the command
// could not be started or exited non-zero.
type Runner interface {
	// Run returns the command's combined stdout and stderr.
	Run(name string, args ...string) (string, error)

	// Output returns stdout only, for commands whose stdout is an
	// artifact rather than a log.
	Output(name string, args ...string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run executes name with args and returns trimmed combined output
func (ExecRunner) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)

	output, err := cmd.CombinedOutput()
	trimmed := strings.TrimSpace(string(output))
	if err != nil {
		return trimmed, fmt.Errorf("%s %s failed: %w\n%s", name, strings.Join(args, " "), err, trimmed)
	}

	return trimmed, nil
}

// Output executes name with args and returns stdout
func (ExecRunner) Output(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)

	output, err := cmd.Output()
	if err != nil {
		var stderr string
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = strings.TrimSpace(string(exitErr.Stderr))
		}
		return string(output), fmt.Errorf("%s %s failed: %w\n%s", name, strings.Join(args, " "), err, stderr)
	}

	return string(output), nil
}
