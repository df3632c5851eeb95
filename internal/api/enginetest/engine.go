// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// Package enginetest provides a stand-in for an engine's debug HTTP server.
// It decodes and records reload requests and answers the way a running
// engine does. It never loads or reloads anything.
package enginetest

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/platform-engineering-labs/hotreload/internal/api"
	"github.com/platform-engineering-labs/hotreload/internal/api/model"
	"github.com/platform-engineering-labs/hotreload/internal/logging"
)

// Request is one reload request as received by the engine.
type Request struct {
	Method      string
	Path        string
	ContentType string
	Resources   []string
}

type Engine struct {
	echo   *echo.Echo
	server *httptest.Server

	mu            sync.Mutex
	loaded        map[string]bool
	requests      []Request
	unknownStatus int
}

// New creates an engine with the given compiled resources loaded. Requests
// naming any other resource are answered with http.StatusNotFound unless
// SetUnknownStatus says otherwise.
func New(loaded ...string) *Engine {
	e := &Engine{
		loaded:        make(map[string]bool),
		unknownStatus: http.StatusNotFound,
	}
	e.Load(loaded...)

	e.echo = echo.New()
	e.echo.HideBanner = true
	e.echo.HidePort = true
	e.echo.Logger = logging.NewEchoLogger()
	e.echo.POST(api.ReloadRoute, e.handleReload)

	return e
}

// Start serves the engine on a random loopback port until Close is called.
func (e *Engine) Start() *Engine {
	e.server = httptest.NewServer(e.echo)
	return e
}

func (e *Engine) Close() {
	if e.server != nil {
		e.server.Close()
	}
}

func (e *Engine) Config() model.EngineConfig {
	u, err := url.Parse(e.server.URL)
	if err != nil {
		panic(fmt.Sprintf("enginetest: bad server url %q: %v", e.server.URL, err))
	}

	port, err := strconv.Atoi(u.Port())
	if err != nil {
		panic(fmt.Sprintf("enginetest: bad server port %q: %v", u.Port(), err))
	}

	return model.EngineConfig{Host: u.Hostname(), Port: port}
}

func (e *Engine) Load(resources ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, r := range resources {
		e.loaded[r] = true
	}
}

func (e *Engine) Unload(resources ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, r := range resources {
		delete(e.loaded, r)
	}
}

func (e *Engine) SetUnknownStatus(status int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.unknownStatus = status
}

// Requests returns a copy of every decoded request in arrival order.
func (e *Engine) Requests() []Request {
	e.mu.Lock()
	defer e.mu.Unlock()

	requests := make([]Request, len(e.requests))
	copy(requests, e.requests)
	return requests
}

func (e *Engine) handleReload(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.String(http.StatusBadRequest, err.Error())
	}

	reload, err := model.UnmarshalReload(payload)
	if err != nil {
		return c.String(http.StatusBadRequest, err.Error())
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.requests = append(e.requests, Request{
		Method:      c.Request().Method,
		Path:        c.Request().URL.Path,
		ContentType: c.Request().Header.Get(echo.HeaderContentType),
		Resources:   reload.Resources,
	})

	for _, r := range reload.Resources {
		if !e.loaded[r] {
			return c.String(e.unknownStatus, fmt.Sprintf("resource not found: %s", r))
		}
	}

	return c.String(http.StatusOK, "OK")
}
