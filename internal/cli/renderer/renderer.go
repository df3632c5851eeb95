// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package renderer

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/platform-engineering-labs/hotreload/internal/api/model"
	"github.com/platform-engineering-labs/hotreload/internal/cli/display"
)

// RenderReloadResult summarizes an accepted reload followed by the resources
// it named, in request order.
func RenderReloadResult(result *model.ReloadResult) (string, error) {
	var buf strings.Builder

	buf.WriteString(display.Greenf("Reloaded %s on %s", pluralize(len(result.Resources), "resource"), result.Endpoint))
	buf.WriteString(display.Greyf(" (status %d, %dms)\n", result.StatusCode, result.ElapsedMs))

	table, err := renderResources(result.Resources)
	if err != nil {
		return "", err
	}
	buf.WriteString(table)

	if result.InvocationID != "" {
		buf.WriteString(display.Grey("Invocation: " + result.InvocationID + "\n"))
	}

	return buf.String(), nil
}

// RenderReload describes a request without sending it.
func RenderReload(reload *model.Reload, payloadSize int) (string, error) {
	var buf strings.Builder

	buf.WriteString(display.LightBlue(model.ReloadMessageName))
	buf.WriteString(display.Greyf(" with %s, %d bytes on the wire\n", pluralize(len(reload.Resources), "resource"), payloadSize))

	if len(reload.Resources) == 0 {
		buf.WriteString(display.Gold("No resources.\n"))
		return buf.String(), nil
	}

	table, err := renderResources(reload.Resources)
	if err != nil {
		return "", err
	}
	buf.WriteString(table)

	return buf.String(), nil
}

func renderResources(resources []string) (string, error) {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Settings: tw.Settings{Separators: tw.Separators{BetweenRows: tw.Off}},
		})))

	table.Header(display.LightBlue("#"), "Resource")

	data := make([][]any, len(resources))
	for i, r := range resources {
		data[i] = []any{display.Grey(fmt.Sprintf("%d", i+1)), r}
	}

	if err := table.Bulk(data); err != nil {
		return "", fmt.Errorf("error formatting resources: %v", err)
	}
	if err := table.Render(); err != nil {
		return "", fmt.Errorf("error rendering resources: %v", err)
	}

	return buf.String(), nil
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
