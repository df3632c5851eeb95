// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package renderer

import (
	"errors"
	"fmt"
	"strings"
	"syscall"

	"github.com/platform-engineering-labs/hotreload/internal/api/model"
	"github.com/platform-engineering-labs/hotreload/internal/cli/display"
)

// RenderErrorMessage turns a failed reload into the message printed before
// the process exits. Every failure exits the same way, the message only
// helps a human tell them apart.
func RenderErrorMessage(err error) string {
	var statusErr *model.UnexpectedStatusError
	if errors.As(err, &statusErr) {
		msg := fmt.Sprintf("the engine at %s answered %d, expected 200", statusErr.Endpoint, statusErr.StatusCode)
		if body := strings.TrimSpace(statusErr.Body); body != "" {
			msg += "\n" + display.Grey("engine said: "+body)
		}
		return msg
	}

	var unreachable *model.EngineUnreachableError
	if errors.As(err, &unreachable) {
		msg := fmt.Sprintf("could not reach an engine at %s", unreachable.Endpoint)
		if errors.Is(err, syscall.ECONNREFUSED) {
			msg += "\n" + display.Grey("connection refused: is the engine running with its debug port on this address?")
		} else {
			msg += "\n" + display.Grey(unreachable.Err.Error())
		}
		return msg
	}

	return err.Error()
}
