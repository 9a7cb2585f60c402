// Package niconico logs in to the NicoNico video platform and returns the
// resulting user session token.
//
// # Overview
//
// Login posts a mail/telephone + password pair to the account login
// endpoint and extracts the "user_session" cookie from the response. The
// call performs exactly one HTTP request: redirects are never followed, and
// nothing is retried or cached.
//
//	creds := niconico.Credentials{
//	    MailTel:  "user@example.com",
//	    Password: secret.New("password123"),
//	}
//	session, err := niconico.Login(ctx, creds)
//	if err != nil {
//	    // errors.Is(err, niconico.ErrInvalidCredentials) etc.
//	}
//	token := session.Token().Expose()
//
// # Error Handling
//
// Failures are reported through sentinel errors that callers match with
// errors.Is: ErrNetwork, ErrInvalidCredentials, ErrUnexpectedResponse.
// A missing session cookie is reported as ErrUnexpectedResponse wrapping
// ErrSessionCookieNotFound.
//
// # Secrets
//
// The password and the session token are held in secret.String values and
// render as "[REDACTED]" in fmt, slog and JSON output. Use Expose to read
// them.
//
// # Concurrency
//
// A Client holds no mutable state after New returns and may be shared
// between goroutines.
package niconico
