package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckMountedDB(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "noted.db")
	assert.Error(t, checkMountedDB(missing))

	present := filepath.Join(dir, "mounted.db")
	require.NoError(t, os.WriteFile(present, nil, 0o644))
	assert.NoError(t, checkMountedDB(present))
}
