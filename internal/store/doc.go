// Package store keeps NicoNico session tokens in a local SQLite database so
// the CLI can reuse them without logging in again.
//
// The schema is managed by goose migrations embedded in the binary; Open
// applies them on every start. One row is kept per account (mail_tel), and
// Save replaces any earlier token for the same account.
//
// Tokens are stored as plain text. Open creates the database file with
// owner-only permissions and tightens an existing file to the same mode.
package store
