package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/srcforge/srcforge/pkg/config"
	"github.com/srcforge/srcforge/pkg/errors"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func newTestCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	root := newTestCLI().RootCommand()

	want := map[string]bool{
		"list":       false,
		"info":       false,
		"tarball":    false,
		"deps":       false,
		"serve":      false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRegistry_RequiresRoot(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(config.EnvRoot, "")

	c := newTestCLI()
	_, err := c.registry()
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %v, want INVALID_CONFIG", errors.GetCode(err))
	}
}

func TestRegistry_FlagOverridesEnv(t *testing.T) {
	flagRoot := t.TempDir()
	envRoot := t.TempDir()
	t.Setenv(config.EnvRoot, envRoot)

	c := newTestCLI()
	c.rootFlag = flagRoot

	reg, err := c.registry()
	if err != nil {
		t.Fatalf("registry failed: %v", err)
	}
	if reg.Root() != flagRoot {
		t.Errorf("Root = %q, want %q (flag wins over env)", reg.Root(), flagRoot)
	}
}

func TestRegistry_ConfigFile(t *testing.T) {
	root := t.TempDir()
	cfgDir := t.TempDir()
	cfgPath := filepath.Join(cfgDir, "srcforge.toml")
	if err := os.WriteFile(cfgPath, []byte(`root = "`+root+`"`), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvRoot, "")

	c := newTestCLI()
	c.configPath = cfgPath

	reg, err := c.registry()
	if err != nil {
		t.Fatalf("registry failed: %v", err)
	}
	if reg.Root() != root {
		t.Errorf("Root = %q, want %q", reg.Root(), root)
	}
}
