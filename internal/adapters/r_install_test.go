package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRInstallAdapterRunsR(t *testing.T) {
	var gotName string
	var gotArgs []string
	adapter := RInstallAdapter{
		Runner: func(_ context.Context, name string, args ...string) ([]byte, error) {
			gotName = name
			gotArgs = args
			return nil, nil
		},
	}

	args := []string{"--vanilla", "CMD", "INSTALL", "--library=/opt/r/lib", "/tmp/src"}
	require.NoError(t, adapter.Install(t.Context(), args))
	assert.Equal(t, RExecutable, gotName)
	if diff := cmp.Diff(args, gotArgs); diff != "" {
		t.Fatalf("unexpected args (-want +got):\n%s", diff)
	}
}

func TestRInstallAdapterWrapsFailure(t *testing.T) {
	adapter := RInstallAdapter{
		Runner: func(_ context.Context, _ string, _ ...string) ([]byte, error) {
			return []byte("ERROR: compilation failed\n"), errors.New("exit status 1")
		},
	}

	err := adapter.Install(t.Context(), []string{"--vanilla"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "R CMD INSTALL failed")
}
