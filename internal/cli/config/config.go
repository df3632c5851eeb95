// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/segmentio/ksuid"

	"github.com/platform-engineering-labs/hotreload/internal/util"
)

const (
	DataDirectory = ".pel/hotreload"
	LogFileName   = "client.log"
)

// Settings are read from the environment. Command-line flags take precedence
// over every field.
type Settings struct {
	Host       string     `env:"HOTRELOAD_HOST" envDefault:"localhost"`
	LogLevel   slog.Level `env:"HOTRELOAD_LOG_LEVEL" envDefault:"DEBUG"`
	LogFile    string     `env:"HOTRELOAD_LOG_FILE"`
	ConsoleLog bool       `env:"HOTRELOAD_CONSOLE_LOG"`
}

// Load parses Settings from the process environment.
func Load() (*Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &s, nil
}

// LoadFrom parses Settings from the given variables only.
func LoadFrom(environ map[string]string) (*Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &s, nil
}

// LogFilePath returns HOTRELOAD_LOG_FILE with ~ expanded, or the client log
// inside the data directory.
func (s *Settings) LogFilePath() string {
	if s.LogFile != "" {
		return util.ExpandHomePath(s.LogFile)
	}

	return filepath.Join(Config.DataDirectory(), "log", LogFileName)
}

var Config = cliconfig{}

type cliconfig struct{}

func (cliconfig) DataDirectory() string {
	homePath, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(homePath, DataDirectory)
}

func (cliconfig) EnsureDataDirectory() error {
	dataPath := Config.DataDirectory()
	if dataPath == "" {
		return fmt.Errorf("failed to ensure hotreload data directory")
	}

	return os.MkdirAll(dataPath, 0700)
}

// NewInvocationID identifies one CLI run in the client log.
func NewInvocationID() string {
	return ksuid.New().String()
}
