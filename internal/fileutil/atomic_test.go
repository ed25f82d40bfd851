package fileutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	report := filepath.Join(tmpDir, "report.json")

	require.NoError(t, WriteAtomic(report, 0o644, writeString(`{"total":2}`)))

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Equal(t, `{"total":2}`, string(data))

	info, err := os.Stat(report)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files should not remain")
}

func TestWriteAtomicOverwrite(t *testing.T) {
	t.Parallel()

	report := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, WriteAtomic(report, 0o644, writeString("first run")))
	require.NoError(t, WriteAtomic(report, 0o644, writeString("second run")))

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Equal(t, "second run", string(data))
}

func TestWriteAtomicFailedWriteKeepsOriginal(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	report := filepath.Join(tmpDir, "report.txt")
	require.NoError(t, WriteAtomic(report, 0o644, writeString("original")))

	boom := errors.New("render failed")
	err := WriteAtomic(report, 0o644, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	require.ErrorIs(t, err, boom)

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteAtomicMissingDirectory(t *testing.T) {
	t.Parallel()

	err := WriteAtomic(filepath.Join(t.TempDir(), "missing", "report.txt"), 0o644, writeString("x"))
	require.Error(t, err)
}
