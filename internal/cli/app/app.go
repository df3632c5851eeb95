// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/platform-engineering-labs/hotreload/internal/api"
	"github.com/platform-engineering-labs/hotreload/internal/api/model"
	"github.com/platform-engineering-labs/hotreload/internal/cli/config"
)

type App struct {
	Settings     *config.Settings
	InvocationID string

	// HTTPClient replaces the default transport when set.
	HTTPClient *http.Client
}

func NewApp() (*App, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}

	return New(settings), nil
}

func New(settings *config.Settings) *App {
	return &App{
		Settings:     settings,
		InvocationID: config.NewInvocationID(),
	}
}

// Reload sends one reload request to the engine described by engine.
func (a *App) Reload(ctx context.Context, engine model.EngineConfig, reload *model.Reload) (*model.ReloadResult, error) {
	if err := engine.Validate(); err != nil {
		return nil, err
	}

	log := slog.With("invocation", a.InvocationID)
	client := api.NewClient(engine, a.HTTPClient)

	log.Info("Reloading resources", "endpoint", client.Endpoint(), "resources", reload.Resources)

	result, err := client.Reload(ctx, reload)
	if err != nil {
		log.Error("Reload failed", "endpoint", client.Endpoint(), "error", err)
		return nil, err
	}

	result.InvocationID = a.InvocationID
	log.Info("Reload accepted", "endpoint", result.Endpoint, "status", result.StatusCode, "elapsed_ms", result.ElapsedMs)

	return result, nil
}
