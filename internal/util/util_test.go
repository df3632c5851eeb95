// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

//go:build unit

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureFileFolderHierarchy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log", "nested", "client.log")

	require.NoError(t, EnsureFileFolderHierarchy(path))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".pel/hotreload/log/client.log"), ExpandHomePath("~/.pel/hotreload/log/client.log"))
	assert.Equal(t, home, ExpandHomePath("~"))
	assert.Equal(t, "/var/log/client.log", ExpandHomePath("/var/log/client.log"))
	assert.Equal(t, "~other/client.log", ExpandHomePath("~other/client.log"))
}
