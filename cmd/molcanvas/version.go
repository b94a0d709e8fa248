package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/molcanvas"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of molcanvas",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "molcanvas version %s\n", strings.TrimSpace(molcanvas.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
