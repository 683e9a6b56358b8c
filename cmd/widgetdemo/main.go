package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/widgetdemo/internal/config"
	"github.com/jask/widgetdemo/internal/database"
	"github.com/jask/widgetdemo/internal/demo"
	"github.com/jask/widgetdemo/internal/journal"
	"github.com/jask/widgetdemo/internal/tui"
)

type flags struct {
	ConfigPath  string
	Journal     bool
	JournalTail int
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("widgetdemo", flag.ContinueOnError)
	fs.StringVar(&f.ConfigPath, "config", "", "Config file (default ~/.config/widgetdemo/config.toml)")
	fs.BoolVar(&f.Journal, "journal", false, "Record interactions to the journal database")
	fs.IntVar(&f.JournalTail, "journal-tail", 0, "Print the last N journal events and exit")
	if err := fs.Parse(args); err != nil {
		return flags{}, err
	}
	if f.JournalTail < 0 {
		return flags{}, fmt.Errorf("journal-tail must not be negative")
	}
	if f.JournalTail > 0 {
		f.Journal = true
	}
	return f, nil
}

func main() {
	f, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("flags: %v", err)
	}

	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if f.Journal {
		cfg.Journal.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer closeLog()
	slog.SetDefault(logger)

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	store := demo.NewStore(demo.Settings{
		Step:       cfg.Progress.Step,
		Delay:      cfg.Progress.Delay,
		DateFormat: cfg.UI.DateFormat,
		Location:   loc,
	}, time.Now())

	if cfg.Journal.Enabled {
		repo, closeDB, err := openJournal(cfg.Journal.Path)
		if err != nil {
			log.Fatalf("journal: %v", err)
		}
		defer closeDB()

		if f.JournalTail > 0 {
			if err := printJournal(context.Background(), os.Stdout, repo, f.JournalTail, loc); err != nil {
				log.Fatalf("journal: %v", err)
			}
			return
		}

		session := uuid.NewString()
		unsubscribe := store.Subscribe(journal.Subscriber(repo, session, logger))
		defer unsubscribe()
		logger.Info("journal enabled", "path", cfg.Journal.Path, "session", session)
	}

	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(tui.New(store, tui.Options{DateFormat: cfg.UI.DateFormat, Location: loc}), opts...)
	if _, err := p.Run(); err != nil {
		logger.Error("program exited with error", "error", err)
		fmt.Printf("error: %v\n", err)
	}
}

// newLogger writes structured logs to path, or discards them when path is
// empty. The terminal is owned by the UI while it runs.
func newLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	lvl, err := config.Config{Log: cfg}.LogLevel()
	if err != nil {
		return nil, nil, err
	}
	if cfg.Path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := tea.LogToFile(cfg.Path, "widgetdemo")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl}))
	return logger, func() { _ = f.Close() }, nil
}

func openJournal(path string) (*journal.Repo, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir journal dir: %w", err)
	}
	if err := database.RunMigrations(path); err != nil {
		return nil, nil, err
	}
	db, err := database.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open journal: %w", err)
	}
	return journal.NewRepo(db), func() { _ = db.Close() }, nil
}

func printJournal(ctx context.Context, w io.Writer, repo *journal.Repo, limit int, loc *time.Location) error {
	events, err := repo.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		_, err := fmt.Fprintln(w, "no journal events")
		return err
	}
	for _, e := range events {
		detail := e.Detail
		if detail == "" {
			detail = "-"
		}
		if _, err := fmt.Fprintf(w, "%s  %-8.8s  %-18s  %-14s  %3d%%\n",
			e.CreatedAt.In(loc).Format(time.DateTime), e.SessionID, e.Action, detail, e.Progress); err != nil {
			return err
		}
	}
	return nil
}
