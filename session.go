package aocsession

// Session is the value of the Advent of Code "session" cookie.
//
// It has two renderings: String returns the bare value, CookieHeader the
// name=value pair for a Cookie request header. Sessions are immutable once
// created.
type Session struct {
	value string
}

// New wraps a raw session value for tests and fixtures.
//
// It panics if raw contains any character outside 0-9 and lowercase a-z (the
// cookie value is a lowercase base-16 string). Production code obtains
// sessions through Acquire, which trusts the browser store and performs no
// such check; New must not be fed untrusted input.
func New(raw string) Session {
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'z') {
			panic("aocsession: session value must be a lowercase base-16 string")
		}
	}
	return Session{value: raw}
}

// String returns the bare cookie value.
func (s Session) String() string {
	return s.value
}

// CookieHeader returns the cookie in name=value form, e.g. "session=a1b2c3".
func (s Session) CookieHeader() string {
	return "session=" + s.value
}
