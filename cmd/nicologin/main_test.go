package main

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/niconico"
	"github.com/stretchr/testify/require"
)

func loginEndpoint(t *testing.T, status int, token string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if token != "" {
			http.SetCookie(w, &http.Cookie{Name: niconico.SessionCookieName, Value: token})
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func setCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("MAIL_TEL", "cli@example.com")
	t.Setenv("PASSWORD", "pw")
}

func TestRun_ExitCodes(t *testing.T) {
	t.Run("malformed timeout", func(t *testing.T) {
		setCredentials(t)
		require.Equal(t, 2, run([]string{"-t", "abc"}))
	})

	t.Run("rejected login", func(t *testing.T) {
		setCredentials(t)
		srv, hits := loginEndpoint(t, http.StatusUnauthorized, "")

		require.Equal(t, 1, run([]string{"-u", srv.URL, "-t", "5"}))
		require.EqualValues(t, 1, hits.Load())
	})

	t.Run("successful login", func(t *testing.T) {
		setCredentials(t)
		srv, hits := loginEndpoint(t, http.StatusFound, "user_session_cli")

		require.Equal(t, 0, run([]string{"-u", srv.URL, "-t", "5"}))
		require.EqualValues(t, 1, hits.Load())
	})

	t.Run("cached without stored session", func(t *testing.T) {
		setCredentials(t)
		store := filepath.Join(t.TempDir(), "sessions.db")

		require.Equal(t, 1, run([]string{"-s", store, "-cached"}))
	})
}

func TestRun_StoresAndReusesSession(t *testing.T) {
	setCredentials(t)
	srv, hits := loginEndpoint(t, http.StatusFound, "user_session_cli")
	store := filepath.Join(t.TempDir(), "nested", "sessions.db")

	require.Equal(t, 0, run([]string{"-u", srv.URL, "-s", store}))
	require.Equal(t, 0, run([]string{"--s", store, "--cached"}))
	require.EqualValues(t, 1, hits.Load())

	require.Equal(t, 0, run([]string{"-s", store, "-forget"}))
	require.Equal(t, 1, run([]string{"-s", store, "-cached"}))
}
