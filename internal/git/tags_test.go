package git

import (
	"errors"
	"testing"

	"github.com/blackwell-systems/orb-promote/internal/runner"
)

func TestTagExists(t *testing.T) {
	tests := []struct {
		name   string
		tag    string
		output string
		want   bool
	}{
		{
			name:   "tag present",
			tag:    "v1.2.3",
			output: "v1.2.3",
			want:   true,
		},
		{
			name:   "tag absent",
			tag:    "v9.9.9",
			output: "",
			want:   false,
		},
		{
			name:   "prefix does not match",
			tag:    "v1.2",
			output: "v1.2.3",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &runner.Fake{
				Responses: map[string]runner.FakeResponse{
					"git tag --list " + tt.tag: {Output: tt.output},
				},
			}
			client := NewClient("git", fake)

			got, err := client.TagExists(tt.tag)
			if err != nil {
				t.Fatalf("TagExists(%q) error = %v", tt.tag, err)
			}
			if got != tt.want {
				t.Errorf("TagExists(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestTagExistsListFailure(t *testing.T) {
	fake := &runner.Fake{
		Responses: map[string]runner.FakeResponse{
			"git tag --list v1.2.3": {Err: errors.New("not a git repository")},
		},
	}
	client := NewClient("git", fake)

	if _, err := client.TagExists("v1.2.3"); err == nil {
		t.Error("TagExists() expected error when git tag fails")
	}
}

func TestRetagHappyPath(t *testing.T) {
	fake := &runner.Fake{}
	client := NewClient("git", fake)

	outcome, err := client.Retag("origin", "v1.2.3", "CircleCI Promoting to v1.2.3")
	if err != nil {
		t.Fatalf("Retag() error = %v", err)
	}
	if !outcome.RemoteDeleted {
		t.Error("Retag() outcome.RemoteDeleted = false, want true")
	}

	want := []string{
		"git push --delete origin v1.2.3",
		"git tag -d v1.2.3",
		"git tag -a v1.2.3 -m CircleCI Promoting to v1.2.3",
		"git push origin v1.2.3",
	}
	if len(fake.Calls) != len(want) {
		t.Fatalf("Retag() made %d calls, want %d: %v", len(fake.Calls), len(want), fake.Calls)
	}
	for i, call := range want {
		if fake.Calls[i] != call {
			t.Errorf("Retag() call %d = %q, want %q", i, fake.Calls[i], call)
		}
	}
}

func TestRetagRemoteDeleteFailureIsNonFatal(t *testing.T) {
	fake := &runner.Fake{
		Responses: map[string]runner.FakeResponse{
			"git push --delete origin v1.2.3": {Err: errors.New("remote ref does not exist")},
		},
	}
	client := NewClient("git", fake)

	outcome, err := client.Retag("origin", "v1.2.3", "msg")
	if err != nil {
		t.Fatalf("Retag() error = %v, want nil when only remote delete fails", err)
	}
	if outcome.RemoteDeleted {
		t.Error("Retag() outcome.RemoteDeleted = true, want false")
	}
	if outcome.RemoteDeleteErr == nil {
		t.Error("Retag() outcome.RemoteDeleteErr = nil, want recorded error")
	}

	// Local delete, create, and push still run
	if got := fake.Count("git tag -d"); got != 1 {
		t.Errorf("local deletes = %d, want 1", got)
	}
	if got := fake.Count("git tag -a"); got != 1 {
		t.Errorf("tag creations = %d, want 1", got)
	}
	if got := fake.Count("git push origin"); got != 1 {
		t.Errorf("pushes = %d, want 1", got)
	}
}

func TestRetagLocalDeleteFailureIsFatal(t *testing.T) {
	fake := &runner.Fake{
		Responses: map[string]runner.FakeResponse{
			"git tag -d v1.2.3": {Err: errors.New("tag not found")},
		},
	}
	client := NewClient("git", fake)

	if _, err := client.Retag("origin", "v1.2.3", "msg"); err == nil {
		t.Fatal("Retag() error = nil, want error when local delete fails")
	}

	if got := fake.Count("git tag -a"); got != 0 {
		t.Errorf("tag creations after failed local delete = %d, want 0", got)
	}
}
