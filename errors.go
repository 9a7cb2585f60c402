package niconico

import "errors"

var (
	// ErrNetwork reports a transport failure: connection refused, TLS
	// failure, timeout or context cancellation.
	ErrNetwork = errors.New("network error")

	// ErrInvalidCredentials reports that the endpoint rejected the
	// credential pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnexpectedResponse reports a response that is neither a rejection
	// nor carries a session token.
	ErrUnexpectedResponse = errors.New("unexpected response")

	// ErrSessionCookieNotFound is wrapped by ErrUnexpectedResponse when an
	// otherwise successful response has no user session cookie.
	ErrSessionCookieNotFound = errors.New("user session cookie not found in response")
)
