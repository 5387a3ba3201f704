package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runLinkbot(t, binaryPath, home, "config", "init", "--admin", "42")
	require.NoError(t, err, "stderr: %s", stderr)

	_, stderr, err = runLinkbot(t, binaryPath, home, "token", "set", "--value", "123456:AAHsmoketestWXYZ")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runLinkbot(t, binaryPath, home, "config", "show")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "123456:****WXYZ")
	assert.Contains(t, stdout, "42")
	assert.NotContains(t, stdout, "AAHsmoketest")
}

func TestSmokeRunRejectsIncompleteConfig(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runLinkbot(t, binaryPath, home, "run")
	require.Error(t, err)
	assert.Contains(t, stderr, "at least one admin")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "linkbot-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/linkbot")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build linkbot binary: %s", string(output))
	return binaryPath
}

func runLinkbot(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "BOT_TOKEN=", "AUTHORIZED_IDS=", "EXCLUDED_USER_IDS=")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
