package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/widgetdemo/internal/config"
	"github.com/jask/widgetdemo/internal/journal"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	f, err := parseFlags(nil)
	require.NoError(t, err)
	require.Equal(t, flags{}, f)

	f, err = parseFlags([]string{"-config", "/tmp/c.toml", "-journal-tail", "5"})
	require.NoError(t, err)
	require.Equal(t, "/tmp/c.toml", f.ConfigPath)
	require.True(t, f.Journal)
	require.Equal(t, 5, f.JournalTail)

	_, err = parseFlags([]string{"-journal-tail", "-1"})
	require.Error(t, err)

	_, err = parseFlags([]string{"-bogus"})
	require.Error(t, err)
}

func TestNewLoggerDiscardsWithoutPath(t *testing.T) {
	t.Parallel()

	logger, closeLog, err := newLogger(config.LogConfig{Level: "info"})
	require.NoError(t, err)
	defer closeLog()
	require.NotNil(t, logger)

	_, _, err = newLogger(config.LogConfig{Level: "shouting"})
	require.Error(t, err)
}

func TestOpenJournalAndPrint(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "journal.db")
	repo, closeDB, err := openJournal(path)
	require.NoError(t, err)
	t.Cleanup(closeDB)

	var empty bytes.Buffer
	require.NoError(t, printJournal(ctx, &empty, repo, 5, time.UTC))
	require.Equal(t, "no journal events\n", empty.String())

	at := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Record(ctx, journal.Event{SessionID: "abcdef123456", Action: "toggle", CreatedAt: at}))
	require.NoError(t, repo.Record(ctx, journal.Event{SessionID: "abcdef123456", Action: "select_option", Detail: "NJS", CreatedAt: at}))

	var out bytes.Buffer
	require.NoError(t, printJournal(ctx, &out, repo, 5, time.UTC))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "select_option")
	require.Contains(t, lines[0], "NJS")
	require.Contains(t, lines[1], "2024-03-15 09:00:00")
	require.Contains(t, lines[1], "abcdef12")
}
