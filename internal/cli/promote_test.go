package cli

import (
	"bytes"
	"os"
	"testing"
)

func TestForceRequested(t *testing.T) {
	tests := []struct {
		name string
		args []string
		flag bool
		want bool
	}{
		{
			name: "two args, no flag",
			args: []string{"my-orb", "1.2.3"},
			want: false,
		},
		{
			name: "flag set",
			args: []string{"my-orb", "1.2.3"},
			flag: true,
			want: true,
		},
		{
			name: "marker named force",
			args: []string{"my-orb", "1.2.3", "force"},
			want: true,
		},
		{
			name: "any non-empty marker enables force",
			args: []string{"my-orb", "1.2.3", "banana"},
			want: true,
		},
		{
			name: "empty marker does not",
			args: []string{"my-orb", "1.2.3", ""},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := forceRequested(tt.args, tt.flag); got != tt.want {
				t.Errorf("forceRequested(%v, %v) = %v, want %v", tt.args, tt.flag, got, tt.want)
			}
		})
	}
}

func TestPromoteArgumentCount(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "no args", args: []string{}, wantErr: true},
		{name: "name only", args: []string{"my-orb"}, wantErr: true},
		{name: "name and version", args: []string{"my-orb", "1.2.3"}, wantErr: false},
		{name: "with force marker", args: []string{"my-orb", "1.2.3", "force"}, wantErr: false},
		{name: "too many", args: []string{"my-orb", "1.2.3", "force", "extra"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := promoteCmd.Args(promoteCmd, tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("Args(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestPromoteUsageErrorHasNoSideEffects(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"promote", "only-name"})

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("Execute() error = nil, want usage error")
	}

	if !bytes.Contains(out.Bytes(), []byte("Usage:")) {
		t.Errorf("usage text not printed, got: %s", out.String())
	}

	entries, err := os.ReadDir(".")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("usage error left files behind: %v", entries)
	}
}
