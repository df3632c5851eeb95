// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package model

import (
	"fmt"
	"net/http"
	"strings"
)

// UnexpectedStatusError is returned when the engine answered with anything but 200.
type UnexpectedStatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *UnexpectedStatusError) Error() string {
	msg := fmt.Sprintf("engine at %s rejected the reload: unexpected status code: %d", e.Endpoint, e.StatusCode)
	if text := http.StatusText(e.StatusCode); text != "" {
		msg += " " + text
	}
	if body := strings.TrimSpace(e.Body); body != "" {
		msg += " - " + body
	}

	return msg
}

// EngineUnreachableError is returned when no HTTP exchange took place.
type EngineUnreachableError struct {
	Endpoint string
	Err      error
}

func (e *EngineUnreachableError) Error() string {
	return fmt.Sprintf("engine not reachable at %s: %v", e.Endpoint, e.Err)
}

func (e *EngineUnreachableError) Unwrap() error {
	return e.Err
}
