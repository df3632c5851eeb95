// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package model

import (
	"fmt"
	"net"
	"strconv"
)

const (
	DefaultHost = "localhost"
	MinPort     = 1
	MaxPort     = 65535
)

// EngineConfig locates a running engine's debug HTTP server.
type EngineConfig struct {
	Host string
	Port int
}

func (c EngineConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("engine host must not be empty")
	}
	if c.Port < MinPort || c.Port > MaxPort {
		return fmt.Errorf("engine port must be between %d and %d, got %d", MinPort, MaxPort, c.Port)
	}

	return nil
}

func (c EngineConfig) Endpoint() string {
	return "http://" + net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ReloadResult describes an exchange the engine accepted.
type ReloadResult struct {
	InvocationID string   `json:"invocation_id,omitempty"`
	Endpoint     string   `json:"endpoint"`
	Resources    []string `json:"resources"`
	StatusCode   int      `json:"status_code"`
	Body         string   `json:"body,omitempty"`
	ElapsedMs    int64    `json:"elapsed_ms"`
}
