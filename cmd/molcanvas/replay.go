package main

import (
	"fmt"

	"github.com/aretw0/molcanvas/internal/cli"
	"github.com/aretw0/molcanvas/internal/scenario"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <scenario>",
	Short: "Replay a scenario against the in-memory engine",
	Long: `Loads a scenario (YAML, or JSON by extension) and drives a host through its steps,
printing the actions applied to the engine, the callbacks fired, and the cursor and overlay state.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := loggerFor(cmd)
		if err != nil {
			return err
		}
		f, err := scenario.Load(args[0])
		if err != nil {
			return err
		}
		res, err := cli.Replay(cmd.OutOrStdout(), f, logger)
		if err != nil {
			return err
		}
		quiet, _ := cmd.Flags().GetBool("quiet")
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), ">>> %d steps, %d engine calls.\n", res.Steps, len(res.Calls))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolP("quiet", "q", false, "Omit the summary line")
}
