// Package publisher runs the orb promotion pipeline: encode sources, pack
// and validate the manifest, reconcile the version tag against the remote,
// publish, and clean up. Stages run in strict order and the first failure
// aborts the run; completed side effects (encoded files, pushed tags) are
// not rolled back.
package publisher

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/blackwell-systems/orb-promote/internal/circleci"
	"github.com/blackwell-systems/orb-promote/internal/config"
	"github.com/blackwell-systems/orb-promote/internal/encode"
	"github.com/blackwell-systems/orb-promote/internal/git"
	"github.com/blackwell-systems/orb-promote/internal/manifest"
	"github.com/blackwell-systems/orb-promote/internal/runner"
)

// ErrTagExists reports that the version tag is already present and force
// mode is off. The run aborts without touching the tag or publishing.
var ErrTagExists = errors.New("version tag already exists")

// Request carries the immutable per-run inputs
type Request struct {
	OrbName string
	SemVer  string
	Force   bool
}

// Publisher executes the promotion pipeline
type Publisher struct {
	cfg *config.Config
	git *git.Client
	cli *circleci.Client
	out io.Writer

	step *color.Color
	ok   *color.Color
	warn *color.Color
	fail *color.Color
}

// New returns a Publisher that delegates external calls through run
func New(cfg *config.Config, run runner.Runner, out io.Writer) *Publisher {
	return &Publisher{
		cfg:  cfg,
		git:  git.NewClient(cfg.Bins.Git, run),
		cli:  circleci.NewClient(cfg.Bins.CircleCI, run),
		out:  out,
		step: color.New(color.FgCyan),
		ok:   color.New(color.FgGreen),
		warn: color.New(color.FgYellow),
		fail: color.New(color.FgRed),
	}
}

// Run executes all five stages for req
func (p *Publisher) Run(req Request) error {
	if req.OrbName == "" || req.SemVer == "" {
		return fmt.Errorf("orb name and semantic version are required")
	}

	if err := p.encodeSources(); err != nil {
		return err
	}

	if err := p.packAndValidate(); err != nil {
		return err
	}

	tag := p.cfg.TagPrefix + req.SemVer
	if err := p.reconcileTag(tag, req.Force); err != nil {
		return err
	}

	return p.publishAndCleanup(req)
}

func (p *Publisher) encodeSources() error {
	p.step.Fprintln(p.out, "→ Encoding source files...")

	res, err := encode.Run(encode.Options{
		Root:       ".",
		ScriptsDir: p.cfg.ScriptsDir,
		VenvDir:    p.cfg.VenvDir,
	})
	if err != nil {
		p.fail.Fprintf(p.out, "✗ Encoding failed: %v\n", err)
		return err
	}

	p.ok.Fprintf(p.out, "✓ Encoded %d source files, %d script files\n", res.SourceEncoded, res.ScriptsEncoded)
	return nil
}

func (p *Publisher) packAndValidate() error {
	p.step.Fprintf(p.out, "→ Packing %s into %s...\n", p.cfg.SourceDir, p.cfg.ManifestPath)

	if err := p.cli.Pack(p.cfg.SourceDir, p.cfg.ManifestPath); err != nil {
		p.fail.Fprintf(p.out, "✗ Pack failed: %v\n", err)
		return err
	}

	// Local sanity check before the remote validator sees it
	m, err := manifest.Load(p.cfg.ManifestPath)
	if err != nil {
		p.fail.Fprintf(p.out, "✗ Packed manifest is unreadable: %v\n", err)
		return err
	}
	if err := m.Validate(); err != nil {
		p.fail.Fprintf(p.out, "✗ Packed manifest is not a plausible orb: %v\n", err)
		return err
	}

	p.step.Fprintln(p.out, "→ Validating manifest...")

	if err := p.cli.Validate(p.cfg.ManifestPath); err != nil {
		// Manifest stays on disk for operator inspection on this path.
		p.fail.Fprintf(p.out, "✗ Validation failed: %v\n", err)
		var verr *circleci.ValidationError
		if errors.As(err, &verr) && verr.Output != "" {
			fmt.Fprintln(p.out, verr.Output)
		}
		p.warn.Fprintf(p.out, "⚠ %s retained for debugging; remove it manually\n", p.cfg.ManifestPath)
		return err
	}

	p.ok.Fprintln(p.out, "✓ Manifest validated")
	return nil
}

func (p *Publisher) reconcileTag(tag string, force bool) error {
	p.step.Fprintf(p.out, "→ Reconciling tag %s...\n", tag)

	exists, err := p.git.TagExists(tag)
	if err != nil {
		p.fail.Fprintf(p.out, "✗ Tag lookup failed: %v\n", err)
		return err
	}

	message := fmt.Sprintf("CircleCI Promoting to %s", tag)

	switch {
	case exists && !force:
		p.warn.Fprintf(p.out, "⚠ Tag %s already exists; re-run with force to replace it\n", tag)
		return fmt.Errorf("%w: %s", ErrTagExists, tag)

	case exists && force:
		outcome, err := p.git.Retag(p.cfg.Remote, tag, message)
		if !outcome.RemoteDeleted {
			p.warn.Fprintf(p.out, "⚠ Remote tag delete did not succeed (tag may not exist on %s): %v\n", p.cfg.Remote, outcome.RemoteDeleteErr)
		}
		if err != nil {
			p.fail.Fprintf(p.out, "✗ Retag failed: %v\n", err)
			return err
		}
		p.ok.Fprintf(p.out, "✓ Replaced tag %s and pushed to %s\n", tag, p.cfg.Remote)

	default:
		if err := p.git.CreateAnnotated(tag, message); err != nil {
			p.fail.Fprintf(p.out, "✗ Tag creation failed: %v\n", err)
			return err
		}
		if err := p.git.Push(p.cfg.Remote, tag); err != nil {
			p.fail.Fprintf(p.out, "✗ Tag push failed: %v\n", err)
			return err
		}
		p.ok.Fprintf(p.out, "✓ Created tag %s and pushed to %s\n", tag, p.cfg.Remote)
	}

	return nil
}

func (p *Publisher) publishAndCleanup(req Request) error {
	ref := circleci.Ref(req.OrbName, req.SemVer)
	p.step.Fprintf(p.out, "→ Publishing %s...\n", ref)

	if err := p.cli.Publish(p.cfg.ManifestPath, ref); err != nil {
		p.fail.Fprintf(p.out, "✗ Publish failed: %v\n", err)
		return err
	}

	if err := os.Remove(p.cfg.ManifestPath); err != nil && !os.IsNotExist(err) {
		p.warn.Fprintf(p.out, "⚠ Could not remove %s: %v\n", p.cfg.ManifestPath, err)
	}

	p.ok.Fprintf(p.out, "✓ Published %s\n", ref)
	return nil
}
