// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

// Decode command printing a captured binary reload request.
package decode

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/platform-engineering-labs/hotreload/internal/api/model"
	"github.com/platform-engineering-labs/hotreload/internal/cli/cmd"
	"github.com/platform-engineering-labs/hotreload/internal/cli/printer"
)

type DecodeOptions struct {
	Path           string
	OutputConsumer printer.Consumer
	OutputSchema   string
}

func DecodeCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "decode [FILE]",
		Short: "Print a binary reload request",
		Long: `Print a binary reload request, as sent in the body of a reload POST.

The payload is read from FILE, or from stdin when FILE is omitted or "-".`,
		Args: cmd.MaximumNArgs(1),
		PreRun: func(command *cobra.Command, args []string) {
			cmd.SetupClientLogging(command)
		},
		RunE: func(command *cobra.Command, args []string) error {
			opts := &DecodeOptions{}
			if len(args) == 1 {
				opts.Path = args[0]
			}
			consumer, _ := command.Flags().GetString("output-consumer")
			opts.OutputConsumer = printer.Consumer(consumer)
			opts.OutputSchema, _ = command.Flags().GetString("output-schema")

			return runDecode(opts, command.InOrStdin(), command.OutOrStdout())
		},
		Annotations: map[string]string{
			"type":     "Tooling",
			"args":     "[FILE]",
			"examples": "{{.Name}} {{.Command}} payload.bin | {{.Name}} {{.Command}} --output-consumer machine < payload.bin",
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	command.SetUsageTemplate(cmd.SimpleCmdUsageTemplate)

	command.Flags().String("output-consumer", string(printer.ConsumerHuman), "Consumer of the command result (human | machine)")
	command.Flags().String("output-schema", printer.SchemaJSON, "The schema to use for the machine output (json | yaml)")

	return command
}

func runDecode(opts *DecodeOptions, stdin io.Reader, w io.Writer) error {
	if err := printer.ValidateOutput(opts.OutputConsumer, opts.OutputSchema); err != nil {
		return cmd.FlagErrorWrap(err)
	}

	payload, err := readPayload(opts.Path, stdin)
	if err != nil {
		return err
	}

	reload, err := model.UnmarshalReload(payload)
	if err != nil {
		return err
	}

	if opts.OutputConsumer == printer.ConsumerMachine {
		return printer.NewMachineReadablePrinter[model.Reload](w, opts.OutputSchema).Print(reload)
	}
	return printer.NewHumanReadablePrinter[model.Reload](w).Print(reload, printer.PrintOptions{PayloadSize: len(payload)})
}

func readPayload(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		payload, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload from stdin: %w", err)
		}
		return payload, nil
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	return payload, nil
}
