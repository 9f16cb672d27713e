package utils

import (
	"net/http"
	"net/url"
)

// UTM carries the attribution triple recorded with every reservation.
type UTM struct {
	Source  string
	Medium  string
	Content string
}

// HarvestUTM resolves attribution for a request. Query parameters win,
// then utm_* cookies, then the query string of the Referer header.
func HarvestUTM(request *http.Request) UTM {
	query := request.URL.Query()

	var refererQuery url.Values
	if referer := request.Header.Get("Referer"); referer != "" {
		if parsed, err := url.Parse(referer); err == nil {
			refererQuery = parsed.Query()
		}
	}

	harvest := func(key string) string {
		if value := query.Get(key); value != "" {
			return value
		}
		if cookie, err := request.Cookie(key); err == nil && cookie.Value != "" {
			if decoded, err := url.QueryUnescape(cookie.Value); err == nil {
				return decoded
			}
			return cookie.Value
		}
		if refererQuery != nil {
			return refererQuery.Get(key)
		}
		return ""
	}

	return UTM{
		Source:  harvest("utm_source"),
		Medium:  harvest("utm_medium"),
		Content: harvest("utm_content"),
	}
}
