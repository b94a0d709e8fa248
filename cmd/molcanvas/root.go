package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/molcanvas/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "molcanvas",
	Short: "molcanvas keeps a structure-editor canvas in sync with declarative configuration",
	Long: `molcanvas drives an embedded structure editor from configuration snapshots.
Use "replay" to step through a scenario file, or "serve" to poke a mounted editor over HTTP.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "off", "Log level: off, debug, info, warn, error")
}

func loggerFor(cmd *cobra.Command) (*slog.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")
	return cli.NewLogger(level)
}
