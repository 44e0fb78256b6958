package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, run func(context.Context) error, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(run)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootRuns(t *testing.T) {
	called := false
	_, err := execute(t, func(ctx context.Context) error {
		called = true
		require.NotNil(t, ctx)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestRootRejectsArguments(t *testing.T) {
	_, err := execute(t, func(context.Context) error {
		t.Fatal("run must not be called")
		return nil
	}, "/tmp")
	assert.Error(t, err)
}

func TestRootPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := execute(t, func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestRootVersion(t *testing.T) {
	out, err := execute(t, func(context.Context) error {
		t.Fatal("run must not be called")
		return nil
	}, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}
