package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "krishisahay",
	Short: "KrishiSahay farmer dashboard service",
	Long: `KrishiSahay serves the farmer dashboard API: demo weather, market, soil and
scheme feeds, the expert and verified advisory chats, crop photo diagnosis
and the translation table for en, hi, te and ta.

Running without a subcommand starts the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, askCmd, translateCmd, exportMarketCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
