package diskspace

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableReportsSpace(t *testing.T) {
	n, err := Available(t.TempDir())
	require.NoError(t, err)
	assert.Greater(t, n, int64(0))
}

func TestCheckPassesForSmallRequests(t *testing.T) {
	assert.NoError(t, Check(t.TempDir(), 1))
	assert.NoError(t, Check(t.TempDir(), 0))
}

func TestCheckRejectsImpossibleRequests(t *testing.T) {
	dir := t.TempDir()
	err := Check(dir, math.MaxInt64)
	require.Error(t, err)
	assert.True(t, IsInsufficientSpace(err))
	assert.True(t, IsInsufficientSpace(fmt.Errorf("paste: %w", err)))

	var ise *InsufficientSpaceError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, dir, ise.Path)
	assert.Contains(t, err.Error(), "insufficient disk space")
}

func TestCheckPassesWhenFilesystemUnknown(t *testing.T) {
	assert.NoError(t, Check("/definitely/not/a/dir", math.MaxInt64))
}
