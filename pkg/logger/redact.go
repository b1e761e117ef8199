package logger

import (
	"net/url"
	"strings"
)

const redacted = "REDACTED"

var secretParams = []string{"appid", "key", "api_key"}

// RedactURL masks credential query parameters so a URL is safe to log.
// Unparsable input is returned with everything after '?' dropped.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		if i := strings.IndexByte(raw, '?'); i >= 0 {
			return raw[:i]
		}
		return raw
	}

	q := u.Query()
	changed := false
	for _, p := range secretParams {
		if q.Has(p) {
			q.Set(p, redacted)
			changed = true
		}
	}
	if !changed {
		return raw
	}
	u.RawQuery = q.Encode()
	return u.String()
}
