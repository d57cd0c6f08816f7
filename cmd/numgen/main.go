// Package main provides the CLI entry point for numgen.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/htmltable-go/internal/config"
	"github.com/ukaji3/htmltable-go/internal/logger"
	"github.com/ukaji3/htmltable-go/pkg/numgen"
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "numgen",
		Short:        "Write a file of random integers",
		Long:         `numgen writes random integers in [-100, 1000000], one per line.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "Config file (yaml, toml, or json)")
	flags.StringP("file", "f", numgen.DefaultPath, "Output file")
	flags.IntP("count", "n", numgen.DefaultCount, "Number of lines to write")
	flags.Uint64("seed", 0, "Seed for reproducible output (0 picks a random seed)")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadNumgen(cmd.Flags(), configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	opts := numgen.DefaultOptions()
	opts.Path = cfg.File
	opts.Count = cfg.Count
	opts.Seed = cfg.Seed

	fmt.Fprintf(cmd.OutOrStdout(), "Generating %d numbers in %s...\n", opts.Count, opts.Path)
	log.Debug("generating", zap.String("file", opts.Path), zap.Int("count", opts.Count),
		zap.Int("min", opts.Min), zap.Int("max", opts.Max), zap.Uint64("seed", opts.Seed))

	if err := numgen.Generate(opts); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Done.")
	return nil
}
