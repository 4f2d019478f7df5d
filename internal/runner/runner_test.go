package runner

import (
	"strings"
	"testing"
)

func TestExecRunnerRun(t *testing.T) {
	var r ExecRunner

	out, err := r.Run("echo", "hello")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out != "hello" {
		t.Errorf("Run() output = %q, want %q", out, "hello")
	}
}

func TestExecRunnerRunFailure(t *testing.T) {
	var r ExecRunner

	if _, err := r.Run("orb-promote-no-such-binary"); err == nil {
		t.Error("Run() error = nil, want error for missing binary")
	}

	_, err := r.Run("sh", "-c", "echo broken 1>&2; exit 3")
	if err == nil {
		t.Fatal("Run() error = nil, want error for non-zero exit")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("Run() error %q does not carry command output", err)
	}
	if strings.HasSuffix(err.Error(), "\n") {
		t.Errorf("Run() error %q carries a trailing newline", err)
	}
}

func TestExecRunnerOutputSeparatesStreams(t *testing.T) {
	var r ExecRunner

	out, err := r.Output("sh", "-c", "echo artifact; echo noise 1>&2")
	if err != nil {
		t.Fatalf("Output() error = %v", err)
	}
	if out != "artifact\n" {
		t.Errorf("Output() = %q, want %q", out, "artifact\n")
	}
}

func TestFakeRecordsAndScripts(t *testing.T) {
	fake := &Fake{
		Responses: map[string]FakeResponse{
			"git tag --list v1.0.0": {Output: "v1.0.0"},
		},
	}

	out, err := fake.Run("git", "tag", "--list", "v1.0.0")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out != "v1.0.0" {
		t.Errorf("Run() output = %q", out)
	}

	if _, err := fake.Run("git", "push", "origin", "v1.0.0"); err != nil {
		t.Fatalf("unscripted Run() error = %v", err)
	}

	if got := fake.Count("git"); got != 2 {
		t.Errorf("Count(git) = %d, want 2", got)
	}
	if got := fake.Count("git push"); got != 1 {
		t.Errorf("Count(git push) = %d, want 1", got)
	}
}
