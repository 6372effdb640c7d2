package aocsession

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Domain is the default target domain.
const Domain = "adventofcode.com"

// The cookie name is fixed: CookieHeader renders the literal "session".
const sessionCookieName = "session"

// ErrNoSessionCookie is returned by Acquire when the reader completed but no
// cookie named "session" exists for the target domains. Logging in to Advent
// of Code in a supported browser and acquiring again resolves it.
var ErrNoSessionCookie = errors.New("aocsession: no session cookie found")

// ReaderError wraps a failure of the cookie reader capability (permission,
// I/O, unsupported platform, decryption). Unwrap exposes the cause.
type ReaderError struct {
	Err error
}

func (e *ReaderError) Error() string {
	return "aocsession: cookie reader failed: " + e.Err.Error()
}

func (e *ReaderError) Unwrap() error { return e.Err }

// Acquirer produces the current Advent of Code session cookie. The zero
// value reads local browser profiles for adventofcode.com.
type Acquirer struct {
	// Reader supplies cookie records. Nil means a zero-value BrowserReader.
	Reader CookieReader

	// Domains are the target domains. Empty means {Domain}.
	Domains []string

	// EnvVar optionally names an environment variable consulted before any
	// browser read, e.g. "AOC_SESSION". A non-empty value is used as the
	// session verbatim; empty or unset falls through to the reader.
	EnvVar string
}

// Acquire returns the session cookie or a typed failure: *ReaderError when
// the reader capability could not complete its read, ErrNoSessionCookie when
// it completed without finding a matching cookie. Neither failure is retried
// internally; both need external action (log in, or grant store access)
// before another call can succeed.
//
// Values sourced from the browser store or the environment override are
// trusted as issued and not re-validated.
func (a *Acquirer) Acquire(ctx context.Context) (Session, error) {
	if a.EnvVar != "" {
		if v := os.Getenv(a.EnvVar); v != "" {
			return Session{value: v}, nil
		}
	}

	reader := a.Reader
	if reader == nil {
		reader = &BrowserReader{}
	}
	domains := a.Domains
	if len(domains) == 0 {
		domains = []string{Domain}
	}

	cookies, warnings, err := reader.ReadCookies(ctx, domains)
	if err != nil {
		return Session{}, &ReaderError{Err: err}
	}
	for _, c := range cookies {
		if c.Name == sessionCookieName {
			return Session{value: c.Value}, nil
		}
	}
	if len(warnings) > 0 {
		return Session{}, fmt.Errorf("%w (%s)", ErrNoSessionCookie, strings.Join(warnings, "; "))
	}
	return Session{}, ErrNoSessionCookie
}

// Acquire reads the session cookie for adventofcode.com from local browser
// profiles.
func Acquire(ctx context.Context) (Session, error) {
	var a Acquirer
	return a.Acquire(ctx)
}
