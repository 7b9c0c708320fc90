// Package commands provides the CLI commands of the renderer.
//
// There are two ways to use commands from this package:
//
// 1. Via the Commands factory (recommended for most use cases):
//
//	cmds := commands.New(lggr)
//	renderCmd, err := cmds.Render()
//	if err != nil {
//	    return err
//	}
//	app.AddCommand(renderCmd)
//
// 2. Via direct package imports (for advanced DI/testing):
//
//	import "github.com/smartcontractkit/soroban-hostfn-renderer/pkg/commands/render"
//
//	cmd, err := render.NewCommand(render.Config{
//	    Logger: lggr,
//	    Deps:   render.Deps{...}, // inject fakes for testing
//	})
package commands

import (
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/soroban-hostfn-renderer/pkg/commands/render"
	"github.com/smartcontractkit/soroban-hostfn-renderer/pkg/logger"
)

// Commands provides a factory for creating CLI commands with shared configuration.
// This allows setting the logger once and reusing it across all commands.
type Commands struct {
	lggr logger.Logger
}

// New creates a new Commands factory with the given logger.
// The logger will be shared across all commands created by this factory.
func New(lggr logger.Logger) *Commands {
	return &Commands{lggr: lggr}
}

// Render creates the render command.
func (c *Commands) Render() (*cobra.Command, error) {
	return render.NewCommand(render.Config{
		Logger: c.lggr,
	})
}

// Root creates the root command with every command attached.
func (c *Commands) Root(use string) (*cobra.Command, error) {
	root := &cobra.Command{
		Use:           use,
		Short:         "Summaries of Soroban host function operations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	renderCmd, err := c.Render()
	if err != nil {
		return nil, err
	}
	root.AddCommand(renderCmd)

	return root, nil
}
