// Package main provides the CLI entry point for tablescrape.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ukaji3/htmltable-go/internal/config"
	"github.com/ukaji3/htmltable-go/internal/logger"
	"github.com/ukaji3/htmltable-go/pkg/tablescrape"
	"github.com/ukaji3/htmltable-go/pkg/tablescrape/output"
)

const usage = "Usage: tablescrape <URL | HTML_FILE>"

var configPath string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tablescrape <URL | HTML_FILE>",
		Short: "Extract HTML table rows to a CSV file",
		Long: `tablescrape reads an HTML page from a URL (any argument starting with "http")
or a local file, collects the cells of every table row, and writes them
to output.csv in the current directory.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "Config file (yaml, toml, or json)")
	flags.String("format", string(output.FormatCSV), "Output format: csv, xlsx, or sqlite")
	flags.String("user-agent", tablescrape.DefaultOptions().UserAgent, "User-Agent header for remote sources")
	flags.String("selector", "", "Only extract rows inside elements matching this CSS selector")
	flags.Bool("render", false, "Render remote pages in headless Chrome before extracting")
	flags.Bool("crlf", true, "End CSV lines with CRLF")
	flags.Duration("timeout", 0, "Timeout for remote fetches (0 disables)")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(cmd.OutOrStdout(), usage)
		return nil
	}
	source := args[0]

	cfg, err := config.LoadScrape(cmd.Flags(), configPath)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	opts := tablescrape.Options{
		Format:    format,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
		Render:    cfg.Render,
		Selector:  cfg.Selector,
		UseCRLF:   cfg.CRLF,
		Logger:    log,
	}

	path, err := tablescrape.Run(cmd.Context(), source, "", opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved table data to %s\n", path)
	return nil
}
