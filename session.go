package niconico

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrijs2005/niconico/secret"
)

// SessionCookieName is the cookie NicoNico uses for authenticated sessions.
const SessionCookieName = "user_session"

// UserSession is the result of a successful login. It cannot be modified
// after Login returns it.
type UserSession struct {
	token secret.String
}

func newUserSession(token string) *UserSession {
	return &UserSession{token: secret.New(token)}
}

// Token returns the session token, wrapped.
func (s UserSession) Token() secret.String {
	return s.token
}

// Cookie returns the session as a cookie suitable for follow-up requests to
// nicovideo.jp. The returned cookie carries the raw token.
func (s UserSession) Cookie() *http.Cookie {
	return &http.Cookie{Name: SessionCookieName, Value: s.token.Expose()}
}

func (s UserSession) String() string {
	return "UserSession{Token:" + secret.Redacted + "}"
}

func (s UserSession) GoString() string {
	return "niconico.UserSession{Token:" + s.token.GoString() + "}"
}

// Format keeps the token out of every fmt verb. The token field is
// unexported, so fmt would otherwise print it through reflection.
func (s UserSession) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		_, _ = io.WriteString(f, s.GoString())
		return
	}
	_, _ = io.WriteString(f, s.String())
}

func (s UserSession) LogValue() slog.Value {
	return slog.GroupValue(slog.Any("token", s.token))
}
