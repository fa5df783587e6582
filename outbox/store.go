package outbox

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no message has the requested id
var ErrNotFound = errors.New("outbox message not found")

// Status is the delivery outcome of a message
type Status string

const (
	StatusPending Status = "pending"
	StatusOpened  Status = "opened"
	StatusFailed  Status = "failed"
)

// Entry is one recorded message
type Entry struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Recipient   string    `json:"recipient"`
	SenderName  string    `json:"sender_name"`
	SenderEmail string    `json:"sender_email"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	Link        string    `json:"link"`
	Status      Status    `json:"status"`
	Error       string    `json:"error,omitempty"`
}

// Store reads and writes outbox entries
type Store struct {
	db *DB
}

// NewStore creates a Store backed by database
func NewStore(database *DB) *Store {
	return &Store{db: database}
}

// Record inserts e and returns its id; an empty id gets a UUID and an empty status is pending
func (s *Store) Record(ctx context.Context, e Entry) (string, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Status == "" {
		e.Status = StatusPending
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO messages (
			id, created_at, recipient, sender_name, sender_email,
			subject, body, link, status, error
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		e.CreatedAt.UTC().Format(time.DateTime),
		e.Recipient,
		e.SenderName,
		e.SenderEmail,
		e.Subject,
		e.Body,
		e.Link,
		string(e.Status),
		e.Error,
	)
	if err != nil {
		return "", fmt.Errorf("inserting outbox message: %w", err)
	}
	return e.ID, nil
}

// SetStatus records the delivery outcome of message id
func (s *Store) SetStatus(ctx context.Context, id string, status Status, errText string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE messages SET status = ?, error = ? WHERE id = ?`,
		string(status), errText, id)
	if err != nil {
		return fmt.Errorf("updating outbox message: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating outbox message: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Get retrieves a single message
func (s *Store) Get(ctx context.Context, id string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, recipient, sender_name, sender_email,
			   subject, body, link, status, error
		FROM messages WHERE id = ?`, id)

	e, err := scanInto(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading outbox message: %w", err)
	}
	return e, nil
}

// List returns messages newest first; limit <= 0 returns all
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `
		SELECT id, created_at, recipient, sender_name, sender_email,
			   subject, body, link, status, error
		FROM messages ORDER BY created_at DESC, rowid DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing outbox: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanInto(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning outbox row: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// scanner is implemented by both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanInto(sc scanner) (*Entry, error) {
	var (
		e      Entry
		ts     string
		status string
	)
	err := sc.Scan(
		&e.ID, &ts, &e.Recipient, &e.SenderName, &e.SenderEmail,
		&e.Subject, &e.Body, &e.Link, &status, &e.Error,
	)
	if err != nil {
		return nil, err
	}
	e.Status = Status(status)

	if t, parseErr := time.Parse(time.DateTime, ts); parseErr == nil {
		e.CreatedAt = t
	} else if t, parseErr := time.Parse(time.RFC3339, ts); parseErr == nil {
		e.CreatedAt = t
	}
	return &e, nil
}
