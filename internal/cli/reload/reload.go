// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// Reload command asking a running engine to reload compiled resources.
package reload

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/platform-engineering-labs/hotreload/internal/api/model"
	"github.com/platform-engineering-labs/hotreload/internal/cli/app"
	"github.com/platform-engineering-labs/hotreload/internal/cli/cmd"
	"github.com/platform-engineering-labs/hotreload/internal/cli/printer"
)

type ReloadOptions struct {
	Host           string
	Port           int
	Resources      []string
	DryRun         bool
	OutputConsumer printer.Consumer
	OutputSchema   string
}

func ReloadCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "reload PORT",
		Short: "Ask a running engine to reload compiled resources",
		Long: `Ask a running engine to reload compiled resources.

PORT is the port of the engine's debug HTTP server. The request names every
--resource in the given order. The command succeeds only when the engine
answers with status 200; anything else, including an unreachable engine,
exits with status 1. Nothing is retried.`,
		Args: cmd.ExactArgs(1, "the engine port"),
		PreRun: func(command *cobra.Command, args []string) {
			cmd.SetupClientLogging(command)
		},
		RunE: func(command *cobra.Command, args []string) error {
			app, err := cmd.AppFromContext(command.Context())
			if err != nil {
				return err
			}

			opts := &ReloadOptions{}
			opts.Port, err = cmd.ParsePort(args[0])
			if err != nil {
				return err
			}

			opts.Host, _ = command.Flags().GetString("host")
			if opts.Host == "" {
				opts.Host = app.Settings.Host
			}
			opts.Resources, _ = command.Flags().GetStringArray("resource")
			opts.DryRun, _ = command.Flags().GetBool("dry-run")
			consumer, _ := command.Flags().GetString("output-consumer")
			opts.OutputConsumer = printer.Consumer(consumer)
			opts.OutputSchema, _ = command.Flags().GetString("output-schema")

			return runReload(command.Context(), app, opts, command.OutOrStdout())
		},
		Annotations: map[string]string{
			"type":     "Command",
			"args":     "PORT",
			"examples": "{{.Name}} {{.Command}} 8001 | {{.Name}} {{.Command}} 8001 -r /main/main.collectionc -r /main/hero.goc",
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	command.SetUsageTemplate(cmd.SimpleCmdUsageTemplate)

	command.Flags().String("host", "", "Host of the running engine (default: HOTRELOAD_HOST or localhost)")
	command.Flags().StringArrayP("resource", "r", []string{model.DefaultResource}, "Compiled resource path to reload, repeat for several")
	command.Flags().Bool("dry-run", false, "Print the encoded request instead of sending it")
	command.Flags().String("output-consumer", string(printer.ConsumerHuman), "Consumer of the command result (human | machine)")
	command.Flags().String("output-schema", printer.SchemaJSON, "The schema to use for the machine output (json | yaml)")

	return command
}

func validateReloadOptions(opts *ReloadOptions) error {
	if err := printer.ValidateOutput(opts.OutputConsumer, opts.OutputSchema); err != nil {
		return cmd.FlagErrorWrap(err)
	}
	if len(opts.Resources) == 0 {
		return cmd.FlagErrorf("at least one resource is required")
	}
	if strings.TrimSpace(opts.Host) == "" {
		return cmd.FlagErrorf("engine host must not be empty")
	}

	return nil
}

func runReload(ctx context.Context, app *app.App, opts *ReloadOptions, w io.Writer) error {
	if err := validateReloadOptions(opts); err != nil {
		return err
	}

	request := &model.Reload{Resources: opts.Resources}

	if opts.DryRun {
		return printRequest(request, opts, w)
	}

	result, err := app.Reload(ctx, model.EngineConfig{Host: opts.Host, Port: opts.Port}, request)
	if err != nil {
		return err
	}

	if opts.OutputConsumer == printer.ConsumerHuman {
		return printer.NewHumanReadablePrinter[model.ReloadResult](w).Print(result, printer.PrintOptions{})
	}
	return printer.NewMachineReadablePrinter[model.ReloadResult](w, opts.OutputSchema).Print(result)
}

func printRequest(request *model.Reload, opts *ReloadOptions, w io.Writer) error {
	if opts.OutputConsumer == printer.ConsumerMachine {
		return printer.NewMachineReadablePrinter[model.Reload](w, opts.OutputSchema).Print(request)
	}

	payload, err := request.Marshal()
	if err != nil {
		return err
	}

	return printer.NewHumanReadablePrinter[model.Reload](w).Print(request, printer.PrintOptions{PayloadSize: len(payload)})
}
