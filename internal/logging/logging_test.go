// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

//go:build unit

package logging

import (
	"bytes"
	"log"
	"log/slog"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	glog "github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
)

func TestLogging_LogProxyLevels(t *testing.T) {
	capture, restore := CaptureDefault(slog.LevelDebug)
	defer restore()

	flags := log.Flags()
	log.SetFlags(0)
	log.SetOutput(&slogWriter{})
	defer func() {
		log.SetFlags(flags)
		log.SetOutput(os.Stderr)
	}()

	log.Print("ERROR: broken pipe")
	log.Print("WARN slow engine")
	log.Print("plain line")

	assert.True(t, capture.ContainsAll("level=ERROR", "broken pipe"))
	assert.True(t, capture.ContainsAll("level=WARN", "slow engine"))
	assert.True(t, capture.ContainsAll("level=DEBUG", "plain line"))
}

func TestLogging_EchoLogger(t *testing.T) {
	capture, restore := CaptureDefault(slog.LevelDebug)
	defer restore()

	e := echo.New()
	e.HideBanner = true
	e.Logger = NewEchoLogger()

	e.Logger.Info("test info")
	assert.True(t, capture.ContainsAll("level=INFO", "test info", "component=echo"))

	e.Logger.SetLevel(glog.WARN)
	e.Logger.Info("filtered out")
	assert.False(t, capture.ContainsAll("filtered out"))

	e.Logger.SetPrefix("engine")
	e.Logger.Warnf("slow %s", "request")
	assert.True(t, capture.ContainsAll("level=WARN", "engine slow request"))
}

func TestLogging_EchoLoggerFatalPanics(t *testing.T) {
	_, restore := CaptureDefault(slog.LevelDebug)
	defer restore()

	assert.Panics(t, func() { NewEchoLogger().Fatal("boom") })
}

func TestMultiLevelHandler_RoutesByLevel(t *testing.T) {
	var file, console bytes.Buffer
	logger := slog.New(NewClientHandler(ClientLogging{
		FileLevel:    slog.LevelDebug,
		ConsoleLevel: slog.LevelWarn,
	}, &file, &console))

	logger.Debug("debug only in file")
	logger.With("invocation", "abc").Warn("warn everywhere")

	assert.Contains(t, file.String(), "debug only in file")
	assert.Contains(t, file.String(), "warn everywhere")
	assert.Contains(t, file.String(), "invocation")
	assert.NotContains(t, console.String(), "debug only in file")
	assert.Contains(t, console.String(), "warn everywhere")
}

func TestMultiLevelHandler_ConsoleDisabled(t *testing.T) {
	var file, console bytes.Buffer
	logger := slog.New(NewClientHandler(ClientLogging{
		FileLevel:    slog.LevelInfo,
		ConsoleLevel: NoLoggingLevel,
	}, &file, &console))

	logger.Error("only the file sees this")

	assert.Contains(t, file.String(), "only the file sees this")
	assert.Empty(t, console.String())
}
