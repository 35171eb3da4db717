package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gotest.tools/assert"

	"github.com/julien-sobczak/the-dreamwriter/internal/core"
	"github.com/julien-sobczak/the-dreamwriter/pkg/clock"
)

func TestRunJournal(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	require.NoError(t, RunJournal(&out, dir, 0))
	assert.Equal(t, "No dreams saved in "+dir+" yet\n", out.String())

	analysis, err := core.Analyze("I was running through a dark house", "I felt scared")
	require.NoError(t, err)
	for day := 1; day <= 3; day++ {
		clock.FreezeAt(time.Date(2023, time.March, day, 7, 0, 0, 0, time.UTC))
		_, err := core.SaveToJournal(dir, analysis)
		require.NoError(t, err)
	}
	clock.Unfreeze()

	out.Reset()
	require.NoError(t, RunJournal(&out, dir, 2))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, 2, len(lines))
	assert.Assert(t, strings.HasPrefix(lines[0], "2023-03-03  i-was-running-through-a-dark"))
	assert.Assert(t, strings.HasSuffix(lines[1], filepath.Join(dir, "2023", "2023-03-02-i-was-running-through-a-dark.md")))
}
