// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/platform-engineering-labs/hotreload"
	"github.com/platform-engineering-labs/hotreload/internal/cli/cmd"
	"github.com/platform-engineering-labs/hotreload/internal/cli/config"
	"github.com/platform-engineering-labs/hotreload/internal/cli/decode"
	"github.com/platform-engineering-labs/hotreload/internal/cli/display"
	"github.com/platform-engineering-labs/hotreload/internal/cli/reload"
	"github.com/platform-engineering-labs/hotreload/internal/cli/renderer"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     display.Tool,
		Short:   display.Tool + " CLI",
		Long:    display.Header() + ": " + display.Green("Reload compiled resources in a running engine"),
		Version: hotreload.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Keep slog off the terminal until a command sets up its own logging
			slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.SetHelpCommand(&cobra.Command{
		Hidden: true,
	})
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetUsageTemplate(cmd.RootCmdUsageTemplate)

	rootCmd.AddCommand(reload.ReloadCmd())
	rootCmd.AddCommand(decode.DecodeCmd())

	rootCmd.PersistentFlags().BoolP("help", "h", false, "Show help for "+rootCmd.Use)
	for _, c := range rootCmd.Commands() {
		c.PersistentFlags().BoolP("help", "h", false, fmt.Sprintf("Show help for %s command", c.Name()))
	}

	rootCmd.PersistentFlags().BoolP("version", "v", false, "Show "+rootCmd.Use+" version information")
	rootCmd.SetVersionTemplate(fmt.Sprintf("%s version: %s\ngo version: %s\n", display.Tool, hotreload.Version, runtime.Version()))

	return rootCmd
}

func init() {
	cobra.AddTemplateFunc("typeMap", func(cmds []*cobra.Command) map[string][]*cobra.Command {
		m := make(map[string][]*cobra.Command)
		for _, c := range cmds {
			if c.IsAvailableCommand() {
				t := c.Annotations["type"]
				if t == "" {
					t = "Tooling"
				}

				m[t] = append(m[t], c)
			}
		}
		return m
	})

	cobra.AddTemplateFunc("formatExamples", func(examples string, cmd *cobra.Command) string {
		replaced := strings.ReplaceAll(examples, "{{.Name}}", cmd.Root().Name())
		return strings.ReplaceAll(replaced, "{{.Command}}", cmd.Name())
	})

	cobra.AddTemplateFunc("optionsUsage", optionsUsage)
}

func optionsUsage(f *pflag.FlagSet) []string {
	longestFlagName := 0
	f.VisitAll(func(flag *pflag.Flag) {
		length := len(flag.Name)
		if flag.Shorthand != "" {
			length += 6
		}
		longestFlagName = max(longestFlagName, length)
	})
	longestFlagName += 10

	var usage []string
	f.VisitAll(func(flag *pflag.Flag) {
		s := fmt.Sprintf("      --%s ", flag.Name)
		if flag.Shorthand != "" {
			s = fmt.Sprintf("  -%s, --%s ", flag.Shorthand, flag.Name)
		}

		s = fmt.Sprintf("%-*s%s", longestFlagName, s, flag.Usage)
		if flag.DefValue != "" &&
			flag.DefValue != "[]" &&
			flag.DefValue != "false" &&
			flag.Name != "help" &&
			flag.Name != "version" {
			s += display.Grey(fmt.Sprintf(" [default: %s]", flag.DefValue))
		}

		usage = append(usage, s)
	})
	return usage
}

// Execute runs the root command with args and returns the process exit code.
// Errors are rendered to stderr; argument errors also print the usage.
func Execute(root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)

	executed, err := root.ExecuteC()
	if err == nil {
		return 0
	}

	display.Error(stderr, renderer.RenderErrorMessage(err))

	var flagErr *cmd.FlagError
	if errors.As(err, &flagErr) && executed != nil {
		fmt.Fprintln(stderr, executed.UsageString())
	}

	return 1
}

func Start() {
	err := config.Config.EnsureDataDirectory()
	if err != nil {
		display.Error(os.Stderr, err.Error())
		os.Exit(1)
	}

	root, err := cmd.InitCommandWithContext(NewRootCmd())
	if err != nil {
		display.Error(os.Stderr, err.Error())
		os.Exit(1)
	}

	os.Exit(Execute(root, os.Args[1:], os.Stderr))
}
