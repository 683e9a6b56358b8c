package journal

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jask/widgetdemo/internal/database"
	"github.com/jask/widgetdemo/internal/demo"
)

// Event is one journal row.
type Event struct {
	ID        string
	SessionID string
	Action    string
	Detail    string
	Progress  int
	CreatedAt time.Time
}

// Repo handles the events table.
type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo { return &Repo{db: db} }

// Record inserts e, filling ID and CreatedAt when unset.
func (r *Repo) Record(ctx context.Context, e Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = database.Now()
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO events(id, session_id, action, detail, progress, created_at)
	VALUES (?, ?, ?, ?, ?, ?);
	`, e.ID, e.SessionID, e.Action, e.Detail, e.Progress, e.CreatedAt)
	return err
}

// Recent returns up to limit events, newest first.
func (r *Repo) Recent(ctx context.Context, limit int) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, session_id, action, detail, progress, created_at
	FROM events ORDER BY rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Action, &e.Detail, &e.Progress, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&n)
	return n, err
}

const recordTimeout = 2 * time.Second

// Subscriber adapts r to a store subscriber. Write failures are logged and
// never reach the UI loop.
func Subscriber(r *Repo, sessionID string, logger *slog.Logger) demo.Subscriber {
	if logger == nil {
		logger = slog.Default()
	}
	return func(a demo.Action, s demo.State) {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		e := Event{
			SessionID: sessionID,
			Action:    a.Name(),
			Detail:    demo.Detail(a),
			Progress:  s.ProgressPercent,
		}
		if err := r.Record(ctx, e); err != nil {
			logger.Error("journal record failed", "action", e.Action, "error", err)
			return
		}
		logger.Debug("journal recorded", "action", e.Action, "detail", e.Detail)
	}
}
