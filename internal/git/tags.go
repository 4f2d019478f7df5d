// Package git wraps the git CLI operations the promotion flow needs: tag
// lookup, annotated tag creation, tag deletion, and pushing tags to a remote.
package git

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/orb-promote/internal/runner"
)

// Client runs git subcommands through a Runner
type Client struct {
	bin string
	run runner.Runner
}

// NewClient returns a Client that invokes bin (normally "git")
func NewClient(bin string, run runner.Runner) *Client {
	return &Client{bin: bin, run: run}
}

// TagExists reports whether tag exists in the local tag list.
// The match is exact: "v1.2" does not match "v1.2.3".
func (c *Client) TagExists(tag string) (bool, error) {
	output, err := c.run.Run(c.bin, "tag", "--list", tag)
	if err != nil {
		return false, fmt.Errorf("listing tags: %w", err)
	}

	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == tag {
			return true, nil
		}
	}

	return false, nil
}

// CreateAnnotated creates an annotated tag at HEAD
func (c *Client) CreateAnnotated(tag, message string) error {
	if _, err := c.run.Run(c.bin, "tag", "-a", tag, "-m", message); err != nil {
		return fmt.Errorf("creating tag %s: %w", tag, err)
	}
	return nil
}

// Push pushes tag to remote
func (c *Client) Push(remote, tag string) error {
	if _, err := c.run.Run(c.bin, "push", remote, tag); err != nil {
		return fmt.Errorf("pushing tag %s to %s: %w", tag, remote, err)
	}
	return nil
}

// DeleteLocal removes tag from the local repository
func (c *Client) DeleteLocal(tag string) error {
	if _, err := c.run.Run(c.bin, "tag", "-d", tag); err != nil {
		return fmt.Errorf("deleting local tag %s: %w", tag, err)
	}
	return nil
}

// DeleteRemote removes tag from remote
func (c *Client) DeleteRemote(remote, tag string) error {
	if _, err := c.run.Run(c.bin, "push", "--delete", remote, tag); err != nil {
		return fmt.Errorf("deleting tag %s on %s: %w", tag, remote, err)
	}
	return nil
}

// RetagOutcome records what a forced retag actually did
type RetagOutcome struct {
	// RemoteDeleted is false when the remote delete failed, which is
	// expected when the tag was never pushed.
	RemoteDeleted   bool
	RemoteDeleteErr error
}

// Retag force-replaces tag: delete on remote, delete locally, recreate as an
// annotated tag, push. The remote delete is best-effort and its result is
// recorded in the outcome; the remaining three operations are fatal on error.
func (c *Client) Retag(remote, tag, message string) (RetagOutcome, error) {
	outcome := RetagOutcome{RemoteDeleted: true}

	if err := c.DeleteRemote(remote, tag); err != nil {
		outcome.RemoteDeleted = false
		outcome.RemoteDeleteErr = err
	}

	if err := c.DeleteLocal(tag); err != nil {
		return outcome, err
	}

	if err := c.CreateAnnotated(tag, message); err != nil {
		return outcome, err
	}

	if err := c.Push(remote, tag); err != nil {
		return outcome, err
	}

	return outcome, nil
}
