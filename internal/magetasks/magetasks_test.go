package magetasks

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := Out
	Out = &buf
	t.Cleanup(func() { Out = old })
	return &buf
}

func TestInitialize(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	require.NoError(t, Initialize())

	assert.DirExists(t, filepath.Join(tmpDir, "bin"))
	expected, _ := filepath.EvalSymlinks(tmpDir)
	actual, _ := filepath.EvalSymlinks(ProjectRoot)
	assert.Equal(t, expected, actual)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "github.com/dkoosis/stylo", ModulePath)
	assert.Equal(t, "./bin/stylo", BinPath)
	assert.Equal(t, "./cmd/stylo", MainPackage)
}

func TestLdflags(t *testing.T) {
	built := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	got := Ldflags("v1.2.0", "abc123", built)

	assert.Contains(t, got, "-X 'github.com/dkoosis/stylo/internal/version.Version=v1.2.0'")
	assert.Contains(t, got, "version.CommitHash=abc123'")
	assert.Contains(t, got, "version.BuildDate=2026-01-02T03:04:05Z'")
}

func TestPrinters(t *testing.T) {
	tests := []struct {
		name  string
		print func(string)
		want  string
	}{
		{"h1", PrintH1Header, "Test Title"},
		{"h2", PrintH2Header, "=== Test Title ==="},
		{"success", PrintSuccess, "✅ Test Title"},
		{"warning", PrintWarning, "⚠️  Test Title"},
		{"error", PrintError, "❌ Test Title"},
		{"info", PrintInfo, "ℹ️  Test Title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureOut(t)
			tt.print("Test Title")
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestIsCommandNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"exec.ErrNotFound", exec.ErrNotFound, true},
		{"wrapped", fmt.Errorf("running: %w", exec.ErrNotFound), true},
		{"message", errors.New("executable file not found"), true},
		{"no such file", errors.New("no such file or directory"), true},
		{"other", errors.New("some other error"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCommandNotFound(tt.err))
		})
	}
}

func TestOptional(t *testing.T) {
	buf := captureOut(t)

	assert.NoError(t, optional("tool", "example.com/tool@latest", nil))

	err := optional("tool", "example.com/tool@latest", exec.ErrNotFound)
	assert.ErrorIs(t, err, exec.ErrNotFound)
	assert.Contains(t, buf.String(), "go install example.com/tool@latest")

	err = optional("tool", "", errors.New("exit status 1"))
	assert.EqualError(t, err, "tool failed: exit status 1")
}

func TestRun_MissingCommand(t *testing.T) {
	captureOut(t)
	err := Run("Missing", "stylo-no-such-command-"+fmt.Sprint(os.Getpid()))
	assert.True(t, IsCommandNotFound(err))
}
