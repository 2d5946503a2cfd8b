package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand(&out, &errOut)
	cmd.SetArgs(args)
	cmd.SetOut(&errOut)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestListSorted(t *testing.T) {
	root := t.TempDir()
	for _, f := range []string{"b/x.go", "a/y.go", "a/z.txt", "a/.w.go"} {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o644))
	}

	stdout, _, err := runCommand(t, "--root", root, "--sort", "*/*.go")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a", "y.go"),
		filepath.Join(root, "b", "x.go"),
	}, strings.Fields(stdout))

	stdout, _, err = runCommand(t, "--root", root, "--hidden", "a/*.go")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a", ".w.go"),
		filepath.Join(root, "a", "y.go"),
	}, strings.Fields(stdout))
}

func TestCheck(t *testing.T) {
	stdout, _, err := runCommand(t, "--check", "src/a/b/main.go", "src/**/*.go")
	require.NoError(t, err)
	assert.Equal(t, "true\n", stdout)

	stdout, _, err = runCommand(t, "--check", "src/main.c", "src/**/*.go")
	require.NoError(t, err)
	assert.Equal(t, "false\n", stdout)

	stdout, _, err = runCommand(t, "-i", "--check", "SRC/Main.GO", "src/*.go")
	require.NoError(t, err)
	assert.Equal(t, "true\n", stdout)
}

func TestInvalidPattern(t *testing.T) {
	_, _, err := runCommand(t, "[abc")
	assert.Error(t, err)
}

func TestMissingRoot(t *testing.T) {
	_, _, err := runCommand(t, "--root", filepath.Join(t.TempDir(), "nope"), "*")
	assert.ErrorContains(t, err, "nothing searched")
}

func TestExclude(t *testing.T) {
	root := t.TempDir()
	for _, f := range []string{"src/a.go", "vendor/b.go", "vendor/x/c.go", "src/a_test.go"} {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o644))
	}

	stdout, _, err := runCommand(t, "--root", root, "--sort", "--exclude", "vendor", "--exclude", "**/*_test.go", "**/*.go")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "src", "a.go")}, strings.Fields(stdout))

	_, _, err = runCommand(t, "--root", root, "--exclude", "[oops", "**/*.go")
	assert.ErrorContains(t, err, "exclude")
}

func TestLogLevel(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nope")

	_, stderr, err := runCommand(t, "--root", root, "*")
	assert.Error(t, err)
	assert.Contains(t, stderr, "[WARN]")

	_, stderr, err = runCommand(t, "--root", root, "--log-level", "error", "*")
	assert.Error(t, err)
	assert.NotContains(t, stderr, "[WARN]")
}
