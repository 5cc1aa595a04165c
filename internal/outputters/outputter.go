// Package outputters picks a formatter for the configured format and
// destination.
package outputters

import (
	"fmt"
	"io"
	"os"

	"github.com/HarshitR2004/GenCoder/internal/config"
	"github.com/HarshitR2004/GenCoder/internal/output"
)

// FormatterFactory creates formatters by format name.
type FormatterFactory interface {
	CreateFormatter(format string, w io.Writer, colorize bool) (output.Formatter, error)
}

// DefaultFormatterFactory builds the console, json and markdown formatters.
type DefaultFormatterFactory struct {
	config *config.Config
}

// CreateFormatter implements FormatterFactory.
func (f *DefaultFormatterFactory) CreateFormatter(format string, w io.Writer, colorize bool) (output.Formatter, error) {
	switch format {
	case "console":
		return output.NewConsoleFormatter(w, f.config.Quiet, f.config.Verbose, colorize), nil
	case "json":
		return output.NewJSONFormatter(w, true), nil
	case "markdown":
		return output.NewMarkdownFormatter(w, f.config.Verbose), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Outputter handles output formatting
type Outputter struct {
	config  *config.Config
	factory FormatterFactory
	stdout  io.Writer
}

// NewOutputter creates a new Outputter writing to stdout or cfg.Output.
func NewOutputter(cfg *config.Config) *Outputter {
	return &Outputter{
		config:  cfg,
		factory: &DefaultFormatterFactory{config: cfg},
		stdout:  os.Stdout,
	}
}

// WithWriter replaces stdout.
func (o *Outputter) WithWriter(w io.Writer) *Outputter {
	o.stdout = w
	return o
}

// WithFactory replaces the formatter factory.
func (o *Outputter) WithFactory(f FormatterFactory) *Outputter {
	o.factory = f
	return o
}

// Emit creates the configured formatter and hands it to render. When an
// output file is configured it is created and closed around the call.
func (o *Outputter) Emit(render func(output.Formatter) error) (err error) {
	w := o.stdout
	colorize := true
	if o.config.Output != "" {
		file, createErr := os.Create(o.config.Output)
		if createErr != nil {
			return fmt.Errorf("error creating output file %s: %w", o.config.Output, createErr)
		}
		defer func() {
			if closeErr := file.Close(); err == nil && closeErr != nil {
				err = fmt.Errorf("error writing to file %s: %w", o.config.Output, closeErr)
			}
		}()
		w = file
		colorize = false
	}

	formatter, err := o.factory.CreateFormatter(o.config.Format, w, colorize)
	if err != nil {
		return err
	}
	if err := render(formatter); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}
