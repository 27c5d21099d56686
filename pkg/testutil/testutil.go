package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/organizer/pkg/filesystem"
	"github.com/arthur-debert/organizer/pkg/paths"
	"github.com/arthur-debert/organizer/pkg/types"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	// Create parent directories if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// CreateFiles creates every name -> content entry below dir.
func CreateFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		CreateFile(t, dir, name, content)
	}
}

// CreateDir creates a directory in the specified parent directory.
// It fails the test if the directory cannot be created.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)

	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}

	return path
}

// CreateSymlink creates a symbolic link pointing to target.
// It fails the test if the symlink cannot be created.
func CreateSymlink(t *testing.T, target, link string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(link), 0755); err != nil {
		t.Fatalf("Failed to create parent directory for symlink %s: %v", link, err)
	}

	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("Failed to create symlink %s -> %s: %v", link, target, err)
	}
}

// ReadFile reads a file and fails the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	return string(content)
}

// AssertFileContent checks that a file exists and has the expected content.
func AssertFileContent(t *testing.T, path, expected string) {
	t.Helper()

	if actual := ReadFile(t, path); actual != expected {
		t.Errorf("File %s content mismatch:\nexpected: %q\nactual:   %q", path, expected, actual)
	}
}

// MemoryTree returns an in-memory filesystem holding the given files.
// Parent directories are created as needed.
func MemoryTree(t *testing.T, files map[string]string) types.FS {
	t.Helper()

	fsys := filesystem.NewMemory()
	for name, content := range files {
		if err := fsys.MkdirAll(filepath.Dir(name), 0755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", name, err)
		}
		if err := fsys.WriteFile(name, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", name, err)
		}
	}
	return fsys
}

// Env is an isolated set of organizer directories.
type Env struct {
	Root      string
	ConfigDir string
	StateDir  string
}

// IsolatedEnv points the organizer config and state directories at a fresh
// temporary directory and clears ORGANIZER_* overrides.
func IsolatedEnv(t *testing.T) Env {
	t.Helper()

	root := t.TempDir()
	env := Env{
		Root:      root,
		ConfigDir: filepath.Join(root, "config"),
		StateDir:  filepath.Join(root, "state"),
	}

	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvStateDir, env.StateDir)
	t.Setenv("XDG_STATE_HOME", env.StateDir)
	for _, key := range []string{"ORGANIZER_FALLBACK_CATEGORY", "ORGANIZER_IGNORE_HIDDEN", "ORGANIZER_SKIP_NAMES"} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("Failed to unset %s: %v", key, err)
		}
	}

	return env
}
