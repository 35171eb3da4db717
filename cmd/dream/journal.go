package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-dreamwriter/internal/core"
	"github.com/julien-sobczak/the-dreamwriter/pkg/filesystem"
)

var journalLimit int

func init() {
	journalCmd.Flags().IntVarP(&journalLimit, "limit", "n", 0, "maximum number of entries to show")
	rootCmd.AddCommand(journalCmd)
}

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "List saved analyses",
	Long:  `List the analyses saved in the dream journal, most recent first.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := RunJournal(cmd.OutOrStdout(), core.CurrentConfig().JournalDir(), journalLimit); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

// RunJournal prints the entries of the journal.
func RunJournal(out io.Writer, dir string, limit int) error {
	entries, err := core.ListJournal(dir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintf(out, "No dreams saved in %s yet\n", dir)
		return nil
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for _, entry := range entries {
		fmt.Fprintf(out, "%s  %-40s %8s  %s\n",
			entry.Date.Format("2006-01-02"),
			entry.Slug,
			filesystem.HumanSize(entry.Size),
			entry.Path)
	}
	return nil
}
