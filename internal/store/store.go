package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/niconico/internal/filex"
	"github.com/dmitrijs2005/niconico/secret"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

//go:embed migrations/*.sql
var migrations embed.FS

// ErrNotFound is returned by Get when no session is stored for the account.
var ErrNotFound = errors.New("session not found")

// Session is a stored token.
type Session struct {
	MailTel string
	Token   secret.String
	SavedAt time.Time
}

// SQLiteStore is a session store backed by database/sql and SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// RunMigrations applies the embedded schema migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Open opens (creating if needed) the SQLite database file at path and
// migrates it. The file is restricted to its owner before anything is written.
func Open(ctx context.Context, path string) (*SQLiteStore, error) {
	if err := filex.EnsurePrivateFile(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Save inserts s or replaces the stored session of the same account.
func (r *SQLiteStore) Save(ctx context.Context, s Session) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (mail_tel, token, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(mail_tel) DO UPDATE SET token = excluded.token, saved_at = excluded.saved_at
	`, s.MailTel, s.Token.Expose(), s.SavedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to save session[%s]: %w", s.MailTel, err)
	}
	return nil
}

// Get returns the session stored for mailTel or ErrNotFound.
func (r *SQLiteStore) Get(ctx context.Context, mailTel string) (*Session, error) {
	var (
		token   string
		savedAt int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT token, saved_at FROM sessions WHERE mail_tel = ?`, mailTel,
	).Scan(&token, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", mailTel, err)
	}

	return &Session{
		MailTel: mailTel,
		Token:   secret.New(token),
		SavedAt: time.Unix(savedAt, 0).UTC(),
	}, nil
}

// Delete removes the session of mailTel. Deleting a missing session is not
// an error.
func (r *SQLiteStore) Delete(ctx context.Context, mailTel string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE mail_tel = ?`, mailTel); err != nil {
		return fmt.Errorf("failed to delete session[%s]: %w", mailTel, err)
	}
	return nil
}

// Close closes the underlying database.
func (r *SQLiteStore) Close() error {
	return r.db.Close()
}
