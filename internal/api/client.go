// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"resty.dev/v3"

	"github.com/platform-engineering-labs/hotreload/internal/api/model"
)

// ReloadRoute is served by the engine's debug HTTP server.
const ReloadRoute = "/post/@resource/reload"

// Client talks to a running engine's debug HTTP server. Each call opens a
// fresh connection and closes it once the response has been read. Nothing is
// retried, redirects are not followed and no timeout is imposed beyond the
// caller's context.
type Client struct {
	endpoint string
	resty    *resty.Client
}

func NewClient(cfg model.EngineConfig, net *http.Client) *Client {
	client := resty.New()

	if net != nil {
		client = resty.NewWithClient(net)
	}

	client.SetCloseConnection(true)
	client.SetRedirectPolicy(resty.NoRedirectPolicy())

	return &Client{
		endpoint: cfg.Endpoint(),
		resty:    client,
	}
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// Reload posts the binary request to the engine. Only a 200 answer counts as
// success; the response body is returned as is.
func (c *Client) Reload(ctx context.Context, reload *model.Reload) (*model.ReloadResult, error) {
	payload, err := reload.Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to encode reload request: %w", err)
	}

	slog.Debug("Posting reload request", "endpoint", c.endpoint, "resources", reload.Resources, "bytes", len(payload))

	start := time.Now()
	resp, err := c.resty.R().
		SetContext(ctx).
		SetContentType("application/octet-stream").
		SetBody(payload).
		Post(c.endpoint + ReloadRoute)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("reload request to %s aborted: %w", c.endpoint, err)
		}
		return nil, &model.EngineUnreachableError{Endpoint: c.endpoint, Err: err}
	}

	//nolint:errcheck
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from engine at %s: %w", c.endpoint, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, &model.UnexpectedStatusError{
			Endpoint:   c.endpoint,
			StatusCode: resp.StatusCode(),
			Body:       string(body),
		}
	}

	return &model.ReloadResult{
		Endpoint:   c.endpoint,
		Resources:  append([]string(nil), reload.Resources...),
		StatusCode: resp.StatusCode(),
		Body:       string(body),
		ElapsedMs:  time.Since(start).Milliseconds(),
	}, nil
}
