// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package printer

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/platform-engineering-labs/hotreload/internal/api/model"
	"github.com/platform-engineering-labs/hotreload/internal/cli/renderer"
)

type Consumer string

const (
	ConsumerHuman   Consumer = "human"
	ConsumerMachine Consumer = "machine"
)

const (
	SchemaJSON = "json"
	SchemaYAML = "yaml"
)

// ValidateOutput checks the output-consumer and output-schema flag pair.
func ValidateOutput(consumer Consumer, schema string) error {
	if consumer != ConsumerHuman && consumer != ConsumerMachine {
		return fmt.Errorf("output consumer must be either 'human' or 'machine'")
	}
	if consumer == ConsumerMachine && schema != SchemaJSON && schema != SchemaYAML {
		return fmt.Errorf("output schema must be either 'json' or 'yaml' for machine consumer")
	}

	return nil
}

type MachineReadablePrinter[T any] struct {
	w      io.Writer
	format string
}

func NewMachineReadablePrinter[T any](w io.Writer, format string) *MachineReadablePrinter[T] {
	return &MachineReadablePrinter[T]{
		w:      w,
		format: format,
	}
}

func (p *MachineReadablePrinter[T]) Print(v *T) error {
	var data []byte
	var err error
	switch p.format {
	case SchemaJSON:
		data, err = p.marshalJSON(v)
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
	case SchemaYAML:
		intermediate, convertErr := toIntermediate(v)
		if convertErr != nil {
			return fmt.Errorf("convert to yaml: %w", convertErr)
		}

		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(intermediate); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		data = buf.Bytes()
	default:
		return fmt.Errorf("unsupported format: %s", p.format)
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	_, err = p.w.Write(data)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Reload requests are printed in their canonical protobuf JSON form so the
// output can be fed to other protobuf tooling.
func (p *MachineReadablePrinter[T]) marshalJSON(v *T) ([]byte, error) {
	if reload, ok := any(v).(*model.Reload); ok {
		return reload.JSON()
	}

	return json.MarshalIndent(v, "", "  ")
}

// toIntermediate round-trips v through json so yaml keys follow the json tags.
func toIntermediate(v any) (any, error) {
	jsonData, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var result any
	if err := json.Unmarshal(jsonData, &result); err != nil {
		return nil, err
	}

	return result, nil
}

type HumanReadablePrinter[T any] struct {
	w io.Writer
}

func NewHumanReadablePrinter[T any](w io.Writer) *HumanReadablePrinter[T] {
	return &HumanReadablePrinter[T]{
		w: w,
	}
}

type PrintOptions struct {
	// PayloadSize is the encoded size shown next to a request that was not sent.
	PayloadSize int
}

func (p *HumanReadablePrinter[T]) Print(v *T, opts PrintOptions) error {
	var output string
	var err error

	switch v := any(v).(type) {
	case *model.ReloadResult:
		output, err = renderer.RenderReloadResult(v)
	case *model.Reload:
		output, err = renderer.RenderReload(v, opts.PayloadSize)
	default:
		return fmt.Errorf("unsupported type: %T", v)
	}
	if err != nil {
		return fmt.Errorf("render %T: %w", v, err)
	}

	if _, err = io.WriteString(p.w, output); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
