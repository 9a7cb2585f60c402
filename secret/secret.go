// Package secret provides a string container that keeps its contents out of
// logs and formatted output.
//
// A String renders as "[REDACTED]" through every default path: fmt verbs
// (%v, %+v, %#v, %s, %q, ...), log/slog attributes, and JSON encoding. The
// wrapped value is reachable only through Expose.
//
//	pw := secret.New("hunter2")
//	fmt.Println(pw)         // [REDACTED]
//	slog.Info("login", "password", pw) // password=[REDACTED]
//	raw := pw.Expose()      // "hunter2"
package secret

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

// Redacted is what a String renders as.
const Redacted = "[REDACTED]"

// String holds a secret value. The zero value is an empty secret.
type String struct {
	value string
}

// New wraps s.
func New(s string) String {
	return String{value: s}
}

// Expose returns the wrapped value. Callers must not log or print it.
func (s String) Expose() string {
	return s.value
}

// IsZero reports whether the secret is empty.
func (s String) IsZero() bool {
	return s.value == ""
}

func (s String) String() string {
	return Redacted
}

func (s String) GoString() string {
	return "secret.String(" + Redacted + ")"
}

// Format implements fmt.Formatter so that no verb, including %#v and %x,
// reaches the underlying value.
func (s String) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') {
			_, _ = io.WriteString(f, s.GoString())
			return
		}
		_, _ = io.WriteString(f, Redacted)
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", Redacted)
	default:
		_, _ = io.WriteString(f, Redacted)
	}
}

// LogValue implements slog.LogValuer.
func (s String) LogValue() slog.Value {
	return slog.StringValue(Redacted)
}

// MarshalJSON always encodes the redacted placeholder.
func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(Redacted)
}

// UnmarshalJSON accepts a JSON string.
func (s *String) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("secret: %w", err)
	}
	s.value = raw
	return nil
}

// UnmarshalText lets env and flag loaders populate a String.
func (s *String) UnmarshalText(text []byte) error {
	s.value = string(text)
	return nil
}
