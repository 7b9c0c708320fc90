// Package render provides the render command, which prints summaries of invoke_host_function
// operation records.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/soroban-hostfn-renderer/chain/stellar/hostfn"
	"github.com/smartcontractkit/soroban-hostfn-renderer/chain/stellar/hostfn/renderer"
	"github.com/smartcontractkit/soroban-hostfn-renderer/pkg/config"
	"github.com/smartcontractkit/soroban-hostfn-renderer/pkg/logger"
)

const (
	renderShort = "Render invoke_host_function operation records"
	renderLong  = `Render reads one operation record, or a JSON array of records, and prints a
summary of the first host function call of each record.

Records are read from the file given as argument, or from stdin when the argument is
omitted or "-".`
	renderExample = `  hostfn-render render operation.json
  hostfn-render render --format html --max-length 32 < operations.json
  cat operations.json | hostfn-render render -c render.yml --exact-numbers`
)

// Config holds the configuration for the render command.
type Config struct {
	// Logger is the logger to use for command output. Required.
	Logger logger.Logger

	// Deps holds optional dependencies that can be overridden.
	// If fields are nil, production defaults are used.
	Deps Deps
}

// Deps holds the dependencies of the render command that tests may replace.
type Deps struct {
	// LoadConfig loads the configuration file. Defaults to config.Load.
	LoadConfig func(path string) (*config.Config, error)
	// OpenFile opens a records file. Defaults to os.Open.
	OpenFile func(path string) (io.ReadCloser, error)
}

func (d *Deps) applyDefaults() {
	if d.LoadConfig == nil {
		d.LoadConfig = config.Load
	}
	if d.OpenFile == nil {
		d.OpenFile = func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		}
	}
}

type flags struct {
	configPath   string
	format       string
	maxLength    int
	omission     string
	exactNumbers bool
}

// NewCommand creates the render command.
func NewCommand(cfg Config) (*cobra.Command, error) {
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}
	cfg.Deps.applyDefaults()

	var f flags
	cmd := &cobra.Command{
		Use:     "render [file]",
		Short:   renderShort,
		Long:    renderLong,
		Example: renderExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}

			rcfg, err := resolveConfig(cmd, cfg.Deps, f)
			if err != nil {
				return err
			}

			return run(cmd, cfg.Logger.Named("render"), cfg.Deps, rcfg, path)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Path to a yaml configuration file")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Output format: text, html, table or yaml")
	cmd.Flags().IntVar(&f.maxLength, "max-length", 0, "Longest displayed parameter value")
	cmd.Flags().StringVar(&f.omission, "omission", "", "Suffix of truncated parameter values")
	cmd.Flags().BoolVar(&f.exactNumbers, "exact-numbers", false, "Print every digit of large integers")

	return cmd, nil
}

// resolveConfig loads the configuration and applies the flags that were set.
func resolveConfig(cmd *cobra.Command, deps Deps, f flags) (*config.Config, error) {
	rcfg, err := deps.LoadConfig(f.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed("format") {
		rcfg.Render.Format = f.format
	}
	if cmd.Flags().Changed("max-length") {
		rcfg.Render.MaxLength = f.maxLength
	}
	if cmd.Flags().Changed("omission") {
		rcfg.Render.Omission = f.omission
	}
	if f.exactNumbers {
		rcfg.Render.NumberFormat = "exact"
	}

	if err := rcfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return rcfg, nil
}

func run(cmd *cobra.Command, lggr logger.Logger, deps Deps, rcfg *config.Config, path string) error {
	records, err := readRecords(cmd, deps, path)
	if err != nil {
		return err
	}

	registry, err := renderer.NewDefaultRegistry(rcfg.RenderOptions())
	if err != nil {
		return err
	}
	out, ok := registry.Get(rcfg.Render.Format)
	if !ok {
		return fmt.Errorf("no renderer for format %q", rcfg.Render.Format)
	}

	valueRenderer, err := rcfg.ValueRenderer()
	if err != nil {
		return err
	}
	dispatcher := hostfn.NewDispatcher(hostfn.NewNormalizer(valueRenderer))

	lggr.Infow("Rendering records", "count", len(records), "format", out.ID())
	for i, rec := range records {
		summary, err := dispatcher.Dispatch(rec)
		if err != nil {
			lggr.Errorw("Failed to summarize record", "index", i, "id", rec.ID, "error", err)
			return fmt.Errorf("record %d: %w", i, err)
		}
		if summary.Branch == hostfn.BranchOther {
			lggr.Warnw("Unknown host function type, showing type only", "index", i, "id", rec.ID, "type", summary.Type)
		}
		lggr.Debugw("Summarized record", "index", i, "id", rec.ID, "type", summary.Type, "parameters", len(summary.Parameters))

		if err := out.Render(cmd.OutOrStdout(), summary); err != nil {
			return fmt.Errorf("render record %d: %w", i, err)
		}
	}

	return nil
}

func readRecords(cmd *cobra.Command, deps Deps, path string) ([]hostfn.Record, error) {
	if path == "-" {
		return hostfn.ReadRecords(cmd.InOrStdin())
	}

	f, err := deps.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}
	defer f.Close()

	return hostfn.ReadRecords(f)
}
