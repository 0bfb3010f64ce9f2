package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptionFileAdapterRead(t *testing.T) {
	sourceDir := t.TempDir()
	content := "Package: xtable\nVersion: 1.8-4\n"
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, DescriptionFileName), []byte(content), 0o644))

	adapter := NewDescriptionFileAdapter()
	got, err := adapter.ReadDescription(sourceDir)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestDescriptionFileAdapterMissingFilePropagates(t *testing.T) {
	adapter := NewDescriptionFileAdapter()
	_, err := adapter.ReadDescription(t.TempDir())
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
