package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRun_Help(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})
	require.NoError(t, err)
	require.Contains(t, out.String(), "Usage:")
	require.Contains(t, out.String(), "-addr")
}

func TestRun_ParseError(t *testing.T) {
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snek.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`grid { width = 0 }`), 0600))

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-config", path})
	require.Error(t, err)
	require.Contains(t, err.Error(), "grid must be positive")
}

func TestRun_ServesUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	logs := &bytes.Buffer{}
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, &bytes.Buffer{}, logs, []string{"-addr", "127.0.0.1:0", "-log-format", "json"})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
