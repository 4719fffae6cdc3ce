// Package cmd defines and implements the CLI commands for the lookuply
// crawler executable.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var cfgFile string

// newRootCmd creates and configures the root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookuply-crawler",
		Short: "A multi-language web crawler for the Lookuply search index.",
		Long: `lookuply-crawler collects pages in the 24 official EU languages,
extracts clean article text and metadata, verifies the language of each
page, and writes one JSONL stream per language for downstream indexing.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches ., /etc/lookuply, $HOME/.lookuply)")

	cmd.AddCommand(newCrawlCmd())

	return cmd
}

// Execute is the main entry point. An interrupt is a graceful stop and
// exits zero; command errors exit non-zero.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
