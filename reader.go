package aocsession

import (
	"context"
	"time"

	"github.com/steipete/sweetcookie"
)

// CookieReader reads the cookies stored for a set of domains from whatever
// sources are available on this machine. Implementations report non-fatal
// per-source problems as warnings and reserve the error return for failures
// that prevented the read entirely.
type CookieReader interface {
	ReadCookies(ctx context.Context, domains []string) (cookies []sweetcookie.Cookie, warnings []string, err error)
}

// BrowserReader reads cookies from local browser profiles via sweetcookie.
//
// Browsers are consulted in priority order and results merged with first-wins
// de-duplication, so when several browsers hold a cookie of the same name for
// a domain the highest-priority browser supplies the value.
type BrowserReader struct {
	// Browsers overrides the source priority order. Empty means
	// sweetcookie.DefaultBrowsers().
	Browsers []sweetcookie.Browser

	// Profiles overrides per-browser profile selection.
	Profiles map[sweetcookie.Browser]string

	// Timeout bounds OS helper calls (keychain/keyring). Zero means the
	// sweetcookie default.
	Timeout time.Duration
}

// ReadCookies implements CookieReader.
func (r *BrowserReader) ReadCookies(ctx context.Context, domains []string) ([]sweetcookie.Cookie, []string, error) {
	res, err := sweetcookie.Get(ctx, r.options(domains))
	if err != nil {
		return nil, nil, err
	}
	return res.Cookies, res.Warnings, nil
}

func (r *BrowserReader) options(domains []string) sweetcookie.Options {
	origins := make([]string, 0, len(domains))
	for _, d := range domains {
		origins = append(origins, "https://"+d+"/")
	}
	return sweetcookie.Options{
		Origins:  origins,
		Browsers: r.Browsers,
		Mode:     sweetcookie.ModeMerge,
		Profiles: r.Profiles,
		Timeout:  r.Timeout,
	}
}
