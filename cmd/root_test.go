package cmd

import (
	"strings"
	"testing"

	"github.com/irjudson/codalab-cli/testutil"
)

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name:    "version flag",
			args:    []string{"--version"},
			wantErr: false,
		},
		{
			name:    "help flag",
			args:    []string{"--help"},
			wantErr: false,
		},
		{
			name:    "unknown command",
			args:    []string{"nonexistent-command"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Errorf("rootCmd.Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRootCommand_VerboseFlag(t *testing.T) {
	home := testutil.CreateTempDir(t)
	if _, err := runCLI(t, "--verbose", "--home", home, "work", "--shell-key", "1"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !verbose {
		t.Error("--verbose should be parsed")
	}
}

func TestRootCommand_HomeFlag(t *testing.T) {
	home := testutil.CreateTempDir(t)
	if _, err := runCLI(t, "--home", home, "work", "--shell-key", "1"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if cfg.Home != home {
		t.Errorf("cfg.Home = %q, want %q", cfg.Home, home)
	}
}

func TestRootCommand_BadConfig(t *testing.T) {
	home := testutil.CreateTempDir(t)
	_, err := runCLI(t, "--home", home, "--config", home+"/missing.yaml", "work")
	if err == nil {
		t.Fatal("Execute() should fail for a missing --config file")
	}
	if !strings.Contains(err.Error(), "read config") {
		t.Errorf("error = %v, want read config error", err)
	}
}
