// Package circleci wraps the circleci CLI subcommands used during promotion:
// orb pack, orb validate, and orb publish.
package circleci

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/orb-promote/internal/runner"
)

// Client runs circleci subcommands through a Runner
type Client struct {
	bin string
	run runner.Runner
}

// NewClient returns a Client that invokes bin (normally "circleci")
func NewClient(bin string, run runner.Runner) *Client {
	return &Client{bin: bin, run: run}
}

// ValidationError reports that the packed manifest failed orb validation.
// The manifest file is left in place so the operator can inspect it.
type ValidationError struct {
	Manifest string
	Output   string
	Err      error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("orb validation failed for %s: %v", e.Manifest, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Pack assembles the orb source tree into a single manifest file.
// The CLI writes the packed document to stdout; Pack captures it and
// writes manifestPath.
func (c *Client) Pack(srcDir, manifestPath string) error {
	output, err := c.run.Output(c.bin, "orb", "pack", srcDir)
	if err != nil {
		return fmt.Errorf("packing %s: %w", srcDir, err)
	}

	if err := os.WriteFile(manifestPath, []byte(output), 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", manifestPath, err)
	}

	return nil
}

// Validate runs orb validate against the manifest. On failure it returns a
// *ValidationError carrying the validator's output.
func (c *Client) Validate(manifestPath string) error {
	output, err := c.run.Run(c.bin, "orb", "validate", manifestPath)
	if err != nil {
		return &ValidationError{Manifest: manifestPath, Output: output, Err: err}
	}

	return nil
}

// Publish publishes the manifest to the registry as ref, e.g. "my-orb@1.2.3"
func (c *Client) Publish(manifestPath, ref string) error {
	if _, err := c.run.Run(c.bin, "orb", "publish", manifestPath, ref); err != nil {
		return fmt.Errorf("publishing %s: %w", ref, err)
	}

	return nil
}

// Ref formats the registry address for an orb version
func Ref(orbName, semVer string) string {
	return fmt.Sprintf("%s@%s", orbName, semVer)
}
