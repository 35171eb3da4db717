package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-dreamwriter/internal/core"
)

func init() {
	rootCmd.AddCommand(tuiCmd)
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Analyze dreams interactively",
	Long:  `Open a form to describe a dream and its emotions, and read the analysis over a background matching your mood.`,
	Run: func(cmd *cobra.Command, args []string) {
		config := core.CurrentConfig()
		analyzer := core.NewAnalyzerFromConfig(config)
		rotation := core.NewRotation(config.BackgroundInterval())
		if err := RunDreamForm(analyzer, rotation); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}
