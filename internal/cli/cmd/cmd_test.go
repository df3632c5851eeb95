// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

//go:build unit

package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platform-engineering-labs/hotreload/internal/cli/app"
	"github.com/platform-engineering-labs/hotreload/internal/cli/config"
)

func TestParsePort(t *testing.T) {
	port, err := ParsePort("8001")
	require.NoError(t, err)
	assert.Equal(t, 8001, port)

	for _, arg := range []string{"", "http", "0", "-1", "65536", "80.5"} {
		_, err := ParsePort(arg)

		var flagErr *FlagError
		assert.True(t, errors.As(err, &flagErr), "arg %q should be a flag error", arg)
	}
}

func TestAppFromContext(t *testing.T) {
	_, err := AppFromContext(context.Background())
	assert.ErrorIs(t, err, AppNotFoundError{})

	a := app.New(&config.Settings{Host: "localhost"})
	got, err := AppFromContext(WithApp(context.Background(), a))
	require.NoError(t, err)
	assert.Same(t, a, got)
}

func TestExactArgs(t *testing.T) {
	c := &cobra.Command{Use: "reload"}
	check := ExactArgs(1, "the engine port")

	assert.NoError(t, check(c, []string{"8001"}))

	err := check(c, nil)
	assert.EqualError(t, err, "reload expects the engine port, got 0 arguments")

	var flagErr *FlagError
	assert.True(t, errors.As(err, &flagErr))
}

func TestMaximumNArgs(t *testing.T) {
	c := &cobra.Command{Use: "decode"}
	check := MaximumNArgs(1)

	assert.NoError(t, check(c, nil))
	assert.NoError(t, check(c, []string{"payload.bin"}))
	assert.EqualError(t, check(c, []string{"a", "b"}), "decode accepts at most 1 argument, got 2")
}

func TestFlagErrorWrap(t *testing.T) {
	assert.Nil(t, FlagErrorWrap(nil))

	inner := errors.New("bad flag")
	err := FlagErrorWrap(inner)
	assert.ErrorIs(t, err, inner)
}
