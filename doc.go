// Package orbpromote holds the orb-promote release tool.
//
// orb-promote packages, tags, and publishes a versioned CircleCI orb to the
// orb registry. A promotion run has five stages:
//   - validate the orb name and semantic version arguments
//   - encode source scripts into base64 sibling files for transport
//   - pack the source tree into a manifest and validate it
//   - reconcile the v<version> tag against the git remote
//   - publish the orb and remove the manifest
//
// # Installation
//
//	go install github.com/blackwell-systems/orb-promote/cmd/orb-promote@latest
//
// # Quick Start
//
//	orb-promote promote my-orb 1.2.3
//	orb-promote promote my-orb 1.2.3 force
//	orb-promote encode
//
// # External collaborators
//
// All registry and repository traffic is delegated to two CLIs that must be
// on PATH: the circleci CLI (orb pack / orb validate / orb publish) and git
// (tag, push). orb-promote itself opens no network connections.
//
// # Documentation
//
// For complete documentation, see:
//   - README.md: Quickstart and usage
//   - DESIGN.md: Design decisions and grounding notes
package orbpromote
