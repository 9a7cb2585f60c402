package niconico

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/niconico/internal/logging"
	"github.com/google/uuid"
)

const (
	// DefaultEndpoint is the NicoNico account login endpoint.
	DefaultEndpoint = "https://account.nicovideo.jp/login/redirector"
	// DefaultUserAgent is sent unless overridden with WithUserAgent.
	DefaultUserAgent = "toof-jp/niconico"

	sessionValuePrefix = "user_session_"
	rejectionMessage   = "cant_login"

	// maxDrain bounds how much of an unread body is consumed before close.
	maxDrain = 64 << 10
)

// Client performs logins against a single endpoint.
type Client struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
	log        logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the login URL.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithHTTPClient uses hc's transport, timeout and cookie jar. Its redirect
// policy is replaced: the client never follows redirects.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc == nil {
			return
		}
		cp := *hc
		c.httpClient = &cp
	}
}

// WithLogger sends client logs to l. By default logs are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = logging.NewSlogLogger(l) }
}

// New returns a Client configured by opts.
func New(opts ...Option) *Client {
	c := &Client{
		endpoint:   DefaultEndpoint,
		userAgent:  DefaultUserAgent,
		httpClient: &http.Client{},
		log:        logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.httpClient.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return c
}

// Login logs in with a default Client.
func Login(ctx context.Context, creds Credentials) (*UserSession, error) {
	return New().Login(ctx, creds)
}

// Login posts creds to the login endpoint and returns the session carried by
// the response's user_session cookie. It sends exactly one request.
func (c *Client) Login(ctx context.Context, creds Credentials) (*UserSession, error) {
	log := c.log.With("attempt_id", uuid.NewString(), "endpoint", c.endpoint)

	form := url.Values{}
	form.Set("mail_tel", creds.MailTel)
	form.Set("password", creds.Password.Expose())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrNetwork, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	log.Debug(ctx, "sending login request", "mail_tel", creds.MailTel)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, "login request failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))
		_ = resp.Body.Close()
	}()

	session, err := parseResponse(resp)
	if err != nil {
		log.Warn(ctx, "login failed", "status", resp.StatusCode, "error", err)
		return nil, err
	}

	log.Info(ctx, "login succeeded", "status", resp.StatusCode)
	return session, nil
}

// parseResponse maps a login response to a session or a typed error.
func parseResponse(resp *http.Response) (*UserSession, error) {
	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: status %s", ErrInvalidCredentials, resp.Status)

	case isRejectionRedirect(resp):
		return nil, fmt.Errorf("%w: redirected to login page", ErrInvalidCredentials)

	case resp.StatusCode >= 200 && resp.StatusCode < 400:
		token, ok := sessionToken(resp)
		if !ok {
			return nil, fmt.Errorf("%w: %w", ErrUnexpectedResponse, ErrSessionCookieNotFound)
		}
		return newUserSession(token), nil

	default:
		return nil, fmt.Errorf("%w: status %s", ErrUnexpectedResponse, resp.Status)
	}
}

// sessionToken returns the first user_session cookie whose value carries the
// session prefix. The response may set several user_session cookies, some of
// them deleting a previous session.
func sessionToken(resp *http.Response) (string, bool) {
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookieName && strings.HasPrefix(c.Value, sessionValuePrefix) {
			return c.Value, true
		}
	}
	return "", false
}

// isRejectionRedirect reports whether resp sends the browser back to the
// login form with the "cant_login" message.
func isRejectionRedirect(resp *http.Response) bool {
	if resp.StatusCode < 300 || resp.StatusCode >= 400 {
		return false
	}
	loc, err := resp.Location()
	if err != nil {
		return false
	}
	return loc.Query().Get("message") == rejectionMessage
}
