// Package cli implements the nicologin command: it resolves credentials,
// logs in to NicoNico, prints the session token and optionally keeps it in
// the local session store.
package cli
