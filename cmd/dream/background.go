package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-dreamwriter/internal/core"
)

var backgroundOpen int

// Overridden in tests
var openURL = browser.OpenURL

func init() {
	backgroundCmd.Flags().IntVarP(&backgroundOpen, "open", "", 0, "open the N-th image in the browser (starting at 1)")
	rootCmd.AddCommand(backgroundCmd)
}

var backgroundCmd = &cobra.Command{
	Use:   "background [emotion]",
	Short: "Show the background of an emotion",
	Long:  `Print the gradient and the images displayed behind an analysis for an emotion (neutral by default).`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		label := string(core.EmotionNeutral)
		if len(args) > 0 {
			label = args[0]
		}
		emotion, err := core.ParseEmotion(label)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := RunBackground(cmd.OutOrStdout(), emotion, backgroundOpen); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

// RunBackground prints the background of the emotion and optionally opens one of its images.
func RunBackground(out io.Writer, emotion core.Emotion, open int) error {
	background := core.BackgroundFor(emotion)
	if background == nil {
		return fmt.Errorf("no background for emotion %q", emotion)
	}

	fmt.Fprintf(out, "Emotion:  %s\n", emotion)
	fmt.Fprintf(out, "Gradient: %s → %s → %s\n", background.Gradient[0], background.Gradient[1], background.Gradient[2])
	fmt.Fprintln(out, "Images:")
	for i, image := range background.Images {
		fmt.Fprintf(out, "  %d. %s\n", i+1, image)
	}

	if open == 0 {
		return nil
	}
	if open < 0 || open > len(background.Images) {
		return fmt.Errorf("invalid image %d: expected a number between 1 and %d", open, len(background.Images))
	}
	url := background.Images[open-1]
	core.CurrentLogger().Infof("Opening %s", url)
	return openURL(url)
}
