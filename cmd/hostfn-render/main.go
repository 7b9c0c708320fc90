// Package main provides the hostfn-render CLI, which prints human readable summaries of Soroban
// invoke_host_function operation records.
package main

import (
	"fmt"
	"os"

	"github.com/smartcontractkit/soroban-hostfn-renderer/pkg/commands"
	"github.com/smartcontractkit/soroban-hostfn-renderer/pkg/config"
	"github.com/smartcontractkit/soroban-hostfn-renderer/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	lvl, err := cfg.LogLevel()
	if err != nil {
		return err
	}

	lggr, err := (&logger.Config{Level: lvl, Output: os.Stderr}).New()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = lggr.Sync() }()

	root, err := commands.New(lggr).Root("hostfn-render")
	if err != nil {
		return err
	}

	return root.Execute()
}
