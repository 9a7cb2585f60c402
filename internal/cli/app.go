package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/dmitrijs2005/niconico"
	"github.com/dmitrijs2005/niconico/internal/config"
	"github.com/dmitrijs2005/niconico/internal/filex"
	"github.com/dmitrijs2005/niconico/internal/logging"
	"github.com/dmitrijs2005/niconico/internal/store"
	"github.com/dmitrijs2005/niconico/secret"
)

var (
	ErrNoAccount = errors.New("no account: set MAIL_TEL or enter it at the prompt")
	ErrNoStore   = errors.New("session store is not configured")
)

// Authenticator exchanges credentials for a session.
type Authenticator interface {
	Login(ctx context.Context, creds niconico.Credentials) (*niconico.UserSession, error)
}

// SessionStore keeps sessions between runs.
type SessionStore interface {
	Save(ctx context.Context, s store.Session) error
	Get(ctx context.Context, mailTel string) (*store.Session, error)
	Delete(ctx context.Context, mailTel string) error
	Close() error
}

// getPassword is swapped in tests.
var getPassword = GetPassword

type App struct {
	config *config.Config
	auth   Authenticator
	store  SessionStore
	log    logging.Logger
	reader *bufio.Reader
	prompt io.Writer
	out    io.Writer
	now    func() time.Time
}

// NewApp wires the login client, logger and (when StorePath is set) the
// session store from c.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(c.LogFormat, slog.LevelInfo, os.Stderr)

	client := niconico.New(
		niconico.WithEndpoint(c.LoginURL),
		niconico.WithUserAgent(c.UserAgent),
		niconico.WithHTTPClient(&http.Client{Timeout: c.Timeout}),
		niconico.WithLogger(log.Slog()),
	)

	app := &App{
		config: c,
		auth:   client,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		prompt: os.Stderr,
		out:    os.Stdout,
		now:    time.Now,
	}

	if c.StorePath != "" {
		path, err := filex.EnsureParentDir(c.StorePath)
		if err != nil {
			log.Error(ctx, "error preparing session store", "path", c.StorePath, "error", err)
			return nil, err
		}
		s, err := store.Open(ctx, path)
		if err != nil {
			log.Error(ctx, "error opening session store", "path", c.StorePath, "error", err)
			return nil, err
		}
		app.store = s
	}
	return app, nil
}

// Run performs one login, or with -cached prints the stored session, or with
// -forget removes it. Only the token is written to the app's output. Prompts
// go to stderr and diagnostics to the logger.
func (a *App) Run(ctx context.Context, creds niconico.Credentials) error {
	if creds.MailTel == "" {
		mailTel, err := GetSimpleText(a.reader, "Mail or tel", a.prompt)
		if err != nil || mailTel == "" {
			return ErrNoAccount
		}
		creds.MailTel = mailTel
	}
	log := a.log.With("mail_tel", creds.MailTel)

	if a.config.Forget {
		return a.forget(ctx, log, creds.MailTel)
	}
	if a.config.UseCached {
		return a.printCached(ctx, log, creds.MailTel)
	}

	if creds.Password.IsZero() {
		pw, err := getPassword(a.prompt)
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		creds.Password = secret.New(string(pw))
		wipe(pw)
	}

	session, err := a.auth.Login(ctx, creds)
	if err != nil {
		log.Error(ctx, "login unsuccessful", "error", err)
		return err
	}
	log.Info(ctx, "login successful")

	if a.store != nil {
		err := a.store.Save(ctx, store.Session{
			MailTel: creds.MailTel,
			Token:   session.Token(),
			SavedAt: a.now(),
		})
		if err != nil {
			log.Warn(ctx, "session not stored", "error", err)
		}
	}

	_, err = fmt.Fprintln(a.out, session.Token().Expose())
	return err
}

func (a *App) printCached(ctx context.Context, log logging.Logger, mailTel string) error {
	if a.store == nil {
		return ErrNoStore
	}
	s, err := a.store.Get(ctx, mailTel)
	if err != nil {
		log.Error(ctx, "no stored session", "error", err)
		return err
	}
	log.Info(ctx, "using stored session", "saved_at", s.SavedAt.Format(time.RFC3339))

	_, err = fmt.Fprintln(a.out, s.Token.Expose())
	return err
}

func (a *App) forget(ctx context.Context, log logging.Logger, mailTel string) error {
	if a.store == nil {
		return ErrNoStore
	}
	if err := a.store.Delete(ctx, mailTel); err != nil {
		log.Error(ctx, "error removing stored session", "error", err)
		return err
	}
	log.Info(ctx, "stored session removed")
	return nil
}

// Close releases the session store, if any.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
