package pkgin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectBinaryOnPath(t *testing.T) {
	bin := writeFakeBinary(t, "exit 0")
	t.Setenv("PATH", filepath.Dir(bin))

	path, err := DetectBinary()
	require.NoError(t, err)
	assert.Equal(t, bin, path)
}

func TestDetectPlatform(t *testing.T) {
	bin := writeFakeBinary(t, "exit 0")
	assert.NoError(t, DetectPlatform(bin))

	notExec := filepath.Join(t.TempDir(), "pkgin")
	require.NoError(t, os.WriteFile(notExec, []byte("data"), 0644))
	assert.ErrorIs(t, DetectPlatform(notExec), ErrBinaryNotFound)

	assert.ErrorIs(t, DetectPlatform(t.TempDir()), ErrBinaryNotFound)
}
