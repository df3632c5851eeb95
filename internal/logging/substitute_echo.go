// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	glog "github.com/labstack/gommon/log"
)

// EchoLogger implements echo's Logger on top of slog. Fatal and Panic log at
// error level and then panic; the engine stand-in must never exit the test
// binary.
type EchoLogger struct {
	Logger *slog.Logger
	prefix string
	level  glog.Lvl
}

func NewEchoLogger() *EchoLogger {
	return &EchoLogger{
		Logger: slog.Default().With("component", "echo"),
		level:  glog.DEBUG,
	}
}

func (l *EchoLogger) log(lvl glog.Lvl, msg string, args ...any) {
	if lvl < l.level {
		return
	}
	if l.prefix != "" {
		msg = l.prefix + " " + msg
	}
	l.Logger.Log(context.Background(), slogLevel(lvl), msg, args...)
}

func slogLevel(lvl glog.Lvl) slog.Level {
	switch lvl {
	case glog.DEBUG:
		return slog.LevelDebug
	case glog.INFO:
		return slog.LevelInfo
	case glog.WARN:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func (l *EchoLogger) Output() io.Writer     { return io.Discard }
func (l *EchoLogger) SetOutput(w io.Writer) {}
func (l *EchoLogger) Prefix() string        { return l.prefix }
func (l *EchoLogger) SetPrefix(p string)    { l.prefix = p }
func (l *EchoLogger) Level() glog.Lvl       { return l.level }
func (l *EchoLogger) SetLevel(v glog.Lvl)   { l.level = v }
func (l *EchoLogger) SetHeader(h string)    {}

func (l *EchoLogger) Print(i ...any)                    { l.log(glog.INFO, fmt.Sprint(i...)) }
func (l *EchoLogger) Printf(format string, args ...any) { l.log(glog.INFO, fmt.Sprintf(format, args...)) }
func (l *EchoLogger) Printj(j glog.JSON)                { l.log(glog.INFO, "json", "data", j) }

func (l *EchoLogger) Debug(i ...any)                    { l.log(glog.DEBUG, fmt.Sprint(i...)) }
func (l *EchoLogger) Debugf(format string, args ...any) { l.log(glog.DEBUG, fmt.Sprintf(format, args...)) }
func (l *EchoLogger) Debugj(j glog.JSON)                { l.log(glog.DEBUG, "json", "data", j) }

func (l *EchoLogger) Info(i ...any)                    { l.log(glog.INFO, fmt.Sprint(i...)) }
func (l *EchoLogger) Infof(format string, args ...any) { l.log(glog.INFO, fmt.Sprintf(format, args...)) }
func (l *EchoLogger) Infoj(j glog.JSON)                { l.log(glog.INFO, "json", "data", j) }

func (l *EchoLogger) Warn(i ...any)                    { l.log(glog.WARN, fmt.Sprint(i...)) }
func (l *EchoLogger) Warnf(format string, args ...any) { l.log(glog.WARN, fmt.Sprintf(format, args...)) }
func (l *EchoLogger) Warnj(j glog.JSON)                { l.log(glog.WARN, "json", "data", j) }

func (l *EchoLogger) Error(i ...any)                    { l.log(glog.ERROR, fmt.Sprint(i...)) }
func (l *EchoLogger) Errorf(format string, args ...any) { l.log(glog.ERROR, fmt.Sprintf(format, args...)) }
func (l *EchoLogger) Errorj(j glog.JSON)                { l.log(glog.ERROR, "json", "data", j) }

func (l *EchoLogger) Fatal(i ...any)                    { l.Panic(i...) }
func (l *EchoLogger) Fatalf(format string, args ...any) { l.Panicf(format, args...) }
func (l *EchoLogger) Fatalj(j glog.JSON)                { l.Panicj(j) }

func (l *EchoLogger) Panic(i ...any) {
	s := fmt.Sprint(i...)
	l.log(glog.ERROR, s)
	panic(s)
}

func (l *EchoLogger) Panicf(format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	l.log(glog.ERROR, s)
	panic(s)
}

func (l *EchoLogger) Panicj(j glog.JSON) {
	l.log(glog.ERROR, "json", "data", j)
	panic(j)
}
