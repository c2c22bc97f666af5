package web

import (
	"net/http"
	"strings"
	"time"
)

const cookiePrefix = "worldview_"

// cookieStorage keeps preferences in browser cookies, one per key.
type cookieStorage struct {
	r *http.Request
	w http.ResponseWriter
}

func newCookieStorage(w http.ResponseWriter, r *http.Request) *cookieStorage {
	return &cookieStorage{r: r, w: w}
}

func (c *cookieStorage) Get(key string) (string, bool) {
	cookie, err := c.r.Cookie(cookiePrefix + key)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// Set writes key's cookie, replacing any cookie of the same name already set
// on this response.
func (c *cookieStorage) Set(key, value string) error {
	cookie := &http.Cookie{
		Name:     cookiePrefix + key,
		Value:    value,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	header := c.w.Header()
	prefix := cookie.Name + "="
	var kept []string
	for _, line := range header.Values("Set-Cookie") {
		if !strings.HasPrefix(line, prefix) {
			kept = append(kept, line)
		}
	}
	header.Del("Set-Cookie")
	for _, line := range kept {
		header.Add("Set-Cookie", line)
	}
	header.Add("Set-Cookie", cookie.String())
	return nil
}
