package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-dreamwriter/internal/core"
	"github.com/julien-sobczak/the-dreamwriter/pkg/console"
)

var analyzeDream string
var analyzeEmotions string
var analyzeOutput string
var analyzeNoDelay bool
var analyzeJournal bool

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeDream, "dream", "d", "", "description of the dream")
	analyzeCmd.Flags().StringVarP(&analyzeEmotions, "emotions", "e", "", "emotions felt during the dream")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", string(core.FormatText), "output format (text, markdown, html, yaml)")
	analyzeCmd.Flags().BoolVarP(&analyzeNoDelay, "no-delay", "", false, "skip the thinking delay")
	analyzeCmd.Flags().BoolVarP(&analyzeJournal, "journal", "j", false, "save the analysis in the dream journal")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a dream",
	Long:  `Interpret a dream and the emotions it left, and suggest how to use it.`,
	Run: func(cmd *cobra.Command, args []string) {
		format, err := core.ParseFormat(analyzeOutput)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		options := AnalyzeOptions{
			Dream:    analyzeDream,
			Emotions: analyzeEmotions,
			Format:   format,
			NoDelay:  analyzeNoDelay,
			Journal:  analyzeJournal,
		}
		if err := RunAnalyze(cmd.OutOrStdout(), cmd.ErrOrStderr(), options); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

type AnalyzeOptions struct {
	Dream    string
	Emotions string
	Format   core.Format
	NoDelay  bool
	Journal  bool
}

// RunAnalyze validates the inputs, waits for the thinking delay, and prints the analysis.
// Progress messages go to errOut so that the report can be piped.
func RunAnalyze(out io.Writer, errOut io.Writer, options AnalyzeOptions) error {
	if err := core.Validate(options.Dream, options.Emotions); err != nil {
		return err
	}

	if !options.NoDelay {
		delay := core.NewAnalyzerFromConfig(core.CurrentConfig()).ThinkingDelay()
		core.CurrentLogger().Debugf("Thinking for %s", delay)
		progress := console.NewProgressLog(10, console.ToWriter(errOut), console.HideBar(), console.ShowPercent())
		progress.Wait(delay, "Analyzing Dream Pattern...")
		progress.Clear("")
	}

	analysis, err := core.Analyze(options.Dream, options.Emotions)
	if err != nil {
		return err
	}

	if err := RenderAnalysis(out, analysis, options.Format); err != nil {
		return err
	}

	if options.Journal {
		path, err := core.SaveToJournal(core.CurrentConfig().JournalDir(), analysis)
		if err != nil {
			return fmt.Errorf("unable to save journal entry: %v", err)
		}
		fmt.Fprintf(errOut, "Analysis saved to %s\n", path)
	}

	return nil
}
