// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/platform-engineering-labs/hotreload/internal/api/model"
	"github.com/platform-engineering-labs/hotreload/internal/cli/app"
	"github.com/platform-engineering-labs/hotreload/internal/cli/display"
	"github.com/platform-engineering-labs/hotreload/internal/logging"
)

var RootCmdUsageTemplate = display.Grey("Usage: ") + display.Green("{{.CommandPath}} [OPTIONS]{{if .HasAvailableSubCommands}} [COMMAND]{{end}}\n") +
	"{{if .HasAvailableSubCommands}}\n" + display.Gold("Commands:") + "{{$types := typeMap .Commands}}" +
	"{{$first := true}}{{range $type, $cmds := $types}}" +
	"{{if $first}}{{$first = false}}{{else}}\n{{end}}\n  " + display.Gold("{{$type}}:") +
	"{{range $cmd := $cmds}}\n    " + display.Green("{{rpad $cmd.Name $cmd.NamePadding}}") + "     {{$cmd.Short}}" +
	"{{if (index $cmd.Annotations \"examples\")}}\n                   " +
	display.Grey("  {{formatExamples (index $cmd.Annotations \"examples\") $cmd}}") + "{{end}}" +
	"{{end}}{{end}}\n{{end}}" +
	"{{if .HasAvailableLocalFlags}}\n" + display.Gold("Options:\n") +
	"{{range .LocalFlags | optionsUsage}}{{.}}\n{{end}}" +
	"{{end}}" +
	display.Links() +
	"\n"

var SimpleCmdUsageTemplate = display.Grey("Usage: ") + display.Green("{{.CommandPath}}{{if .HasAvailableLocalFlags}} [OPTIONS]{{end}}") +
	display.Green("{{if index .Annotations \"args\"}} {{index .Annotations \"args\"}}{{end}}") + "\n" +
	"{{if .HasAvailableLocalFlags}}\n" + display.Gold("Options:\n") +
	"{{range .LocalFlags | optionsUsage}}{{.}}\n{{end}}" +
	"{{end}}" +
	"{{if (index .Annotations \"examples\")}}\n" + display.Gold("Examples:\n") +
	display.Grey("  {{formatExamples (index .Annotations \"examples\") .}}\n") + "{{end}}" +
	display.Links() +
	"\n"

type appKey struct{}

func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

func AppFromContext(ctx context.Context) (*app.App, error) {
	if a, ok := ctx.Value(appKey{}).(*app.App); ok && a != nil {
		return a, nil
	}

	return nil, AppNotFoundError{}
}

func InitCommandWithContext(cmd *cobra.Command) (*cobra.Command, error) {
	a, err := app.NewApp()
	if err != nil {
		return nil, err
	}

	cmd.SetContext(WithApp(context.Background(), a))
	return cmd, nil
}

// SetupClientLogging is shared by every command's PreRun.
func SetupClientLogging(command *cobra.Command) {
	a, err := AppFromContext(command.Context())
	if err != nil {
		return
	}

	cfg := logging.ClientLogging{
		FilePath:     a.Settings.LogFilePath(),
		FileLevel:    a.Settings.LogLevel,
		ConsoleLevel: logging.NoLoggingLevel,
	}
	if a.Settings.ConsoleLog {
		cfg.ConsoleLevel = a.Settings.LogLevel
	}

	logging.SetupClientLogging(cfg)
}

// ParsePort reads the engine port positional argument.
func ParsePort(arg string) (int, error) {
	port, err := strconv.Atoi(arg)
	if err != nil {
		return 0, FlagErrorf("engine port must be a number, got %q", arg)
	}
	if port < model.MinPort || port > model.MaxPort {
		return 0, FlagErrorf("engine port must be between %d and %d, got %d", model.MinPort, model.MaxPort, port)
	}

	return port, nil
}

// ExactArgs is cobra.ExactArgs reporting a FlagError so usage is shown.
func ExactArgs(n int, names string) cobra.PositionalArgs {
	return func(command *cobra.Command, args []string) error {
		if len(args) != n {
			return FlagErrorf("%s expects %s, got %s", command.Name(), names, pluralArgs(len(args)))
		}
		return nil
	}
}

// MaximumNArgs is cobra.MaximumNArgs reporting a FlagError so usage is shown.
func MaximumNArgs(n int) cobra.PositionalArgs {
	return func(command *cobra.Command, args []string) error {
		if len(args) > n {
			return FlagErrorf("%s accepts at most %s, got %d", command.Name(), pluralArgs(n), len(args))
		}
		return nil
	}
}

func pluralArgs(n int) string {
	if n == 1 {
		return "1 argument"
	}
	return fmt.Sprintf("%d arguments", n)
}
