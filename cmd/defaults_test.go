package cmd

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/irjudson/codalab-cli/internal"
	"github.com/irjudson/codalab-cli/internal/metadata"
	"github.com/irjudson/codalab-cli/testutil"
)

func runDefaults(t *testing.T, args ...string) map[string]any {
	t.Helper()
	home := testutil.CreateTempDir(t)
	out, err := runCLI(t, append([]string{"--home", home, "defaults", "--format", "json"}, args...)...)
	if err != nil {
		t.Fatalf("defaults error = %v", err)
	}
	var md map[string]any
	testutil.JSONUnmarshal(t, []byte(out), &md)
	return md
}

func TestDefaultsCommand(t *testing.T) {
	dataPath := filepath.Join(testutil.CreateTempDir(t), "c.txt")

	tests := []struct {
		name            string
		args            []string
		wantName        string
		wantDescription string
	}{
		{
			name:            "dataset upload",
			args:            []string{"dataset", "--path", dataPath},
			wantName:        "c.txt",
			wantDescription: "Upload " + dataPath,
		},
		{
			name:            "make positional target",
			args:            []string{"make", "foo"},
			wantName:        "foo",
			wantDescription: "Package foo",
		},
		{
			name:            "make target flag with colon",
			args:            []string{"make", "--target", "a:b"},
			wantName:        "anonymous-make",
			wantDescription: "Package a:b",
		},
		{
			name:            "make several targets",
			args:            []string{"make", "x", "y:z"},
			wantName:        "anonymous-make",
			wantDescription: "Package x, y:z",
		},
		{
			name:            "run",
			args:            []string{"run", "--program-target", "p", "--input-target", "i", "--command", "echo hi"},
			wantName:        "anonymous-run",
			wantDescription: "Run p on i: 'echo hi'",
		},
		{
			name:            "explicit values kept",
			args:            []string{"dataset", "--path", dataPath, "--name", "mine", "--description", ""},
			wantName:        "mine",
			wantDescription: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := runDefaults(t, tt.args...)
			if md[metadata.KeyName] != tt.wantName {
				t.Errorf("name = %v, want %v", md[metadata.KeyName], tt.wantName)
			}
			if md[metadata.KeyDescription] != tt.wantDescription {
				t.Errorf("description = %v, want %v", md[metadata.KeyDescription], tt.wantDescription)
			}
			tags, ok := md[metadata.KeyTags].([]any)
			if !ok || len(tags) != 0 {
				t.Errorf("tags = %#v, want empty list", md[metadata.KeyTags])
			}
		})
	}
}

func TestDefaultsCommand_Architectures(t *testing.T) {
	md := runDefaults(t, "program", "--path", "prog")
	archs, ok := md[metadata.KeyArchitectures].([]any)
	if !ok {
		t.Fatalf("architectures = %#v, want list", md[metadata.KeyArchitectures])
	}
	if machine := metadata.HostMachine(); machine != "" {
		if len(archs) != 1 || archs[0] != machine {
			t.Errorf("architectures = %v, want [%s]", archs, machine)
		}
	}

	md = runDefaults(t, "dataset", "--path", "data")
	if _, ok := md[metadata.KeyArchitectures]; ok {
		t.Error("datasets should not carry architectures")
	}
}

func TestDefaultsCommand_UnknownType(t *testing.T) {
	home := testutil.CreateTempDir(t)
	_, err := runCLI(t, "--home", home, "defaults", "bogus")

	var resolveErr *internal.ResolveError
	if !errors.As(err, &resolveErr) {
		t.Fatalf("error = %v, want *internal.ResolveError", err)
	}
	if resolveErr.BundleType != "bogus" {
		t.Errorf("BundleType = %q, want bogus", resolveErr.BundleType)
	}
}

func TestDefaultsCommand_BadFormat(t *testing.T) {
	home := testutil.CreateTempDir(t)
	if _, err := runCLI(t, "--home", home, "defaults", "run", "--format", "xml"); err == nil {
		t.Error("defaults should reject unknown formats")
	}
}

func TestDefaultsCommand_DoesNotCreateEnvDB(t *testing.T) {
	home := testutil.CreateTempDir(t)
	if _, err := runCLI(t, "--home", home, "defaults", "run"); err != nil {
		t.Fatalf("defaults error = %v", err)
	}
	if (internal.HomePaths{Home: home}).EnvDBExists() {
		t.Error("defaults must not touch the environment database")
	}
}
