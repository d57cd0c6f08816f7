package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numbers.txt")

	out, err := execute(t, "--file", path, "--count", "25", "--seed", "9")
	require.NoError(t, err)
	assert.Equal(t, "Generating 25 numbers in "+path+"...\nDone.\n", out)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSuffix(string(raw), "\n"), "\n"), 25)
}

func TestRun_EnvCount(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NUMGEN_COUNT", "4")

	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Generating 4 numbers in numbers.txt...")

	raw, err := os.ReadFile("numbers.txt")
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(string(raw), "\n"))
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "--file", filepath.Join(dir, "numbers.txt"), "--count", "-1")
	assert.Error(t, err)

	_, err = execute(t, "--file", filepath.Join(dir, "missing", "numbers.txt"), "--count", "1")
	assert.Error(t, err)

	_, err = execute(t, "extra-arg")
	assert.Error(t, err)
}

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	done := make(chan string)
	go func() {
		b, _ := io.ReadAll(r)
		done <- string(b)
	}()

	fn()
	require.NoError(t, w.Close())
	return <-done
}

func TestRun_ErrorReportedOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "numbers.txt")

	var out string
	var err error
	stderr := captureStderr(t, func() {
		out, err = execute(t, "--file", path, "--count", "1")
	})

	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(out, "Error:"))
	assert.Empty(t, stderr)
}
