package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/julien-sobczak/the-dreamwriter/pkg/clock"
	"github.com/julien-sobczak/the-dreamwriter/pkg/filesystem"
	"github.com/julien-sobczak/the-dreamwriter/pkg/text"
	"golang.org/x/exp/slices"
)

// Number of words of the dream used to name the journal entry
const journalSlugWords = 6

// createJournalFile creates a new file and fails when the file already exists.
var createJournalFile = func(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
}

// GetJournalPath returns the path of the journal entry for the given analysis.
// Ex: <journal>/2023/2023-01-01-i-was-flying-over-the-sea.md
func GetJournalPath(dir string, analysis *Analysis) string {
	date := clock.Now()
	year, month, day := date.Date()
	name := slug.Make(text.FirstWords(analysis.Dream, journalSlugWords))
	if name == "" {
		name = "dream"
	}
	return filepath.Join(dir, fmt.Sprintf("%04d", year), fmt.Sprintf("%04d-%02d-%02d-%s.md", year, month, day, name))
}

// SaveToJournal writes the analysis as a new Markdown file in the journal directory.
// Existing entries are never overwritten. A numeric suffix is added instead.
func SaveToJournal(dir string, analysis *Analysis) (string, error) {
	entryPath := GetJournalPath(dir, analysis)

	// Create the directory hierarchy
	if err := os.MkdirAll(filepath.Dir(entryPath), 0750); err != nil {
		return "", err
	}

	base := text.TrimExtension(entryPath)
	for i := 2; ; i++ {
		f, err := createJournalFile(entryPath)
		if errors.Is(err, os.ErrExist) {
			entryPath = fmt.Sprintf("%s-%d.md", base, i)
			continue
		}
		if err != nil {
			return "", err
		}
		if err := writeJournalEntry(f, analysis); err != nil {
			// Free the name for the next save
			os.Remove(entryPath)
			return "", fmt.Errorf("unable to write to file %q: %v", entryPath, err)
		}
		CurrentLogger().Infof("Analysis saved to %s", entryPath)
		return entryPath, nil
	}
}

// writeJournalEntry writes the Markdown report and closes the file.
func writeJournalEntry(f io.WriteCloser, analysis *Analysis) error {
	if _, err := io.WriteString(f, analysis.Markdown()+"\n"); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// JournalEntry is a previously saved analysis.
type JournalEntry struct {
	Path string
	Date time.Time
	Slug string
	Size int64
}

// ListJournal returns the entries present in the journal directory, most recent first.
// Files not named after a date are ignored.
func ListJournal(dir string) ([]*JournalEntry, error) {
	paths, err := filesystem.ListFiles(dir, ".md")
	if err != nil {
		return nil, fmt.Errorf("unable to list journal entries: %v", err)
	}

	var entries []*JournalEntry
	for _, path := range paths {
		name := text.TrimExtension(filepath.Base(path))
		if len(name) < len(time.DateOnly) {
			continue
		}
		date, err := time.Parse(time.DateOnly, name[:len(time.DateOnly)])
		if err != nil {
			CurrentLogger().Debugf("Ignoring file %s in journal", path)
			continue
		}
		size, err := filesystem.FileSize(path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &JournalEntry{
			Path: path,
			Date: date,
			Slug: strings.TrimPrefix(name[len(time.DateOnly):], "-"),
			Size: size,
		})
	}

	slices.SortStableFunc(entries, func(a, b *JournalEntry) int {
		return b.Date.Compare(a.Date)
	})
	return entries, nil
}
