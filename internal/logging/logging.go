// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package logging

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/platform-engineering-labs/hotreload/internal/util"
)

const NoLoggingLevel = slog.Level(100) // A level higher than any standard level to disable logging

// ClientLogging describes where a CLI invocation writes its logs.
type ClientLogging struct {
	FilePath     string
	FileLevel    slog.Level
	ConsoleLevel slog.Level
}

func SetupInitialLogging() {
	slog.SetDefault(slog.New(newTintHandler(os.Stderr, slog.LevelDebug)))
	redirectStandardLog()
}

// SetupClientLogging sends logs to a rotating file and, when ConsoleLevel is
// below NoLoggingLevel, to stderr as well. stdout stays reserved for command
// output.
func SetupClientLogging(cfg ClientLogging) {
	if err := util.EnsureFileFolderHierarchy(cfg.FilePath); err != nil {
		slog.Error("Failed to create log folder hierarchy", "error", err)
		return
	}

	slog.SetDefault(slog.New(NewClientHandler(cfg, &lumberjack.Logger{
		Filename: cfg.FilePath,
		Compress: true,
	}, os.Stderr)))

	redirectStandardLog()
}

// NewClientHandler builds the handler SetupClientLogging installs, writing to
// the given file and console writers.
func NewClientHandler(cfg ClientLogging, file io.Writer, console io.Writer) slog.Handler {
	var consoleHandler slog.Handler
	if cfg.ConsoleLevel != NoLoggingLevel && console != nil {
		consoleHandler = newTintHandler(console, cfg.ConsoleLevel)
	}

	return &MultiLevelHandler{
		fileHandler:    newTintHandler(file, cfg.FileLevel),
		consoleHandler: consoleHandler,
	}
}

func newTintHandler(w io.Writer, level slog.Level) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
	})
}

// overwrite standard log so it's always redirected to slog, in case some deep dep is using it
func redirectStandardLog() {
	log.SetFlags(0)
	log.SetOutput(&slogWriter{})
}

type MultiLevelHandler struct {
	fileHandler    slog.Handler
	consoleHandler slog.Handler
}

func (h *MultiLevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if h.fileHandler.Enabled(ctx, level) {
		return true
	}
	return h.consoleHandler != nil && h.consoleHandler.Enabled(ctx, level)
}

func (h *MultiLevelHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.fileHandler.Enabled(ctx, r.Level) {
		if err := h.fileHandler.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}

	if h.consoleHandler != nil && h.consoleHandler.Enabled(ctx, r.Level) {
		if err := h.consoleHandler.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}

	return nil
}

func (h *MultiLevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(func(inner slog.Handler) slog.Handler { return inner.WithAttrs(attrs) })
}

func (h *MultiLevelHandler) WithGroup(name string) slog.Handler {
	return h.derive(func(inner slog.Handler) slog.Handler { return inner.WithGroup(name) })
}

func (h *MultiLevelHandler) derive(fn func(slog.Handler) slog.Handler) slog.Handler {
	derived := &MultiLevelHandler{fileHandler: fn(h.fileHandler)}
	if h.consoleHandler != nil {
		derived.consoleHandler = fn(h.consoleHandler)
	}

	return derived
}
