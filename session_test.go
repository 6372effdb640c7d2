package aocsession

import "testing"

const fixtureValue = "25a16c7465645f5f286128b604b18e3d5a906611b3eac6740672d5e471a7ab0d3af049fb7363eadb2e07edfe51b600927ddd29b2311ea418ce366e8b9cf98dcc"

func TestNewAcceptsLowercaseBase16(t *testing.T) {
	s := New(fixtureValue)
	if s.String() != fixtureValue {
		t.Fatalf("unexpected value: %q", s.String())
	}
}

func TestNewPanicsOnInvalidInput(t *testing.T) {
	for _, raw := range []string{"A1B2", "a1b2 ", "a1-b2", "session=a1b2", "café"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("New(%q) did not panic", raw)
				}
			}()
			New(raw)
		}()
	}
}

func TestRenderings(t *testing.T) {
	s := New("a1b2c3")
	if got := s.CookieHeader(); got != "session=a1b2c3" {
		t.Fatalf("header form: %q", got)
	}
	if got := s.String(); got != "a1b2c3" {
		t.Fatalf("bare form: %q", got)
	}
}

func TestRenderingsIdempotent(t *testing.T) {
	s := New(fixtureValue)
	if s.CookieHeader() != s.CookieHeader() {
		t.Fatalf("CookieHeader changed between calls")
	}
	if s.String() != s.String() {
		t.Fatalf("String changed between calls")
	}
}
