package util

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	file := path.Join(dir, "c2.gmt")
	require.NoError(t, os.WriteFile(file, []byte("SETA\tlabel\t1\n"), 0o644))

	assert.True(t, DirExists(dir))
	assert.False(t, DirExists(file))
	assert.False(t, DirExists(path.Join(dir, "missing")))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := path.Join(dir, "c2.gmt")
	require.NoError(t, os.WriteFile(file, []byte("SETA\tlabel\t1\n"), 0o644))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(path.Join(dir, "missing.gmt")))
}
