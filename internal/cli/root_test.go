// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

//go:build unit

package cli

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platform-engineering-labs/hotreload"
	"github.com/platform-engineering-labs/hotreload/internal/api/enginetest"
	"github.com/platform-engineering-labs/hotreload/internal/api/model"
	"github.com/platform-engineering-labs/hotreload/internal/cli/app"
	"github.com/platform-engineering-labs/hotreload/internal/cli/cmd"
	"github.com/platform-engineering-labs/hotreload/internal/cli/config"
)

func testRoot(t *testing.T, host string) (*bytes.Buffer, *bytes.Buffer, func(args ...string) int) {
	t.Helper()

	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	a := app.New(&config.Settings{
		Host:     host,
		LogLevel: slog.LevelInfo,
		LogFile:  filepath.Join(t.TempDir(), "client.log"),
	})

	var stdout, stderr bytes.Buffer
	run := func(args ...string) int {
		root := NewRootCmd()
		root.SetOut(&stdout)
		root.SetErr(&stderr)
		root.SetContext(cmd.WithApp(context.Background(), a))
		return Execute(root, args, &stderr)
	}

	return &stdout, &stderr, run
}

func TestExecute_ReloadExitCodes(t *testing.T) {
	engine := enginetest.New(model.DefaultResource).Start()
	defer engine.Close()
	cfg := engine.Config()

	stdout, stderr, run := testRoot(t, cfg.Host)

	assert.Equal(t, 0, run("reload", strconv.Itoa(cfg.Port)))
	assert.Contains(t, stdout.String(), model.DefaultResource)
	assert.Empty(t, stderr.String())

	engine.Unload(model.DefaultResource)
	assert.Equal(t, 1, run("reload", strconv.Itoa(cfg.Port)))
	assert.Contains(t, stderr.String(), "Error: ")
	assert.Contains(t, stderr.String(), "answered 404")
	assert.NotContains(t, stderr.String(), "Usage:")
}

func TestExecute_ArgumentErrorPrintsUsage(t *testing.T) {
	_, stderr, run := testRoot(t, "localhost")

	assert.Equal(t, 1, run("reload"))
	assert.Contains(t, stderr.String(), "reload expects the engine port, got 0 arguments")
	assert.Contains(t, stderr.String(), "Usage:")
}

func TestExecute_Version(t *testing.T) {
	stdout, _, run := testRoot(t, "localhost")

	assert.Equal(t, 0, run("--version"))
	assert.Contains(t, stdout.String(), "hotreload version:")
}

func TestExecute_RendersUnreachableEngine(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	_, stderr, run := testRoot(t, "127.0.0.1")

	assert.Equal(t, 1, run("reload", strconv.Itoa(port)))
	assert.Contains(t, stderr.String(), "could not reach an engine at http://127.0.0.1:"+strconv.Itoa(port))
}

func TestNewRootCmd_LongShowsVersion(t *testing.T) {
	assert.Contains(t, NewRootCmd().Long, "v"+hotreload.Version)
}
