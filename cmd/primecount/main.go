// Package main provides the CLI entry point for primecount.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/htmltable-go/internal/config"
	"github.com/ukaji3/htmltable-go/internal/logger"
	"github.com/ukaji3/htmltable-go/pkg/primecount"
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "primecount [numbers.txt]",
		Short: "Count the primes in a file of integers",
		Long: `primecount reads integers one per line, as written by numgen, and
reports how many of them are prime. Lines that are not integers are skipped.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "Config file (yaml, toml, or json)")
	flags.StringP("file", "f", "numbers.txt", "Numbers file, unless given as an argument")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadPrimecount(cmd.Flags(), configPath)
	if err != nil {
		return err
	}
	path := cfg.File
	if len(args) == 1 {
		path = args[0]
	}

	log, err := logger.New(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	start := time.Now()
	res, err := primecount.CountFile(path)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if res.Skipped > 0 {
		log.Warn("skipped lines that are not integers", zap.String("file", path), zap.Int("skipped", res.Skipped))
	}
	log.Debug("counted primes", zap.String("file", path), zap.Duration("elapsed", elapsed))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File: %s (%d numbers)\n", path, res.Numbers)
	fmt.Fprintf(out, "Primes: %d\n", res.Primes)
	fmt.Fprintf(out, "Time: %.2f ms\n", float64(elapsed.Nanoseconds())/1e6)
	return nil
}
