package avatar

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"strings"
)

// GravatarHash is the lowercase hex MD5 of the trimmed, lower-cased identifier.
func GravatarHash(identifier string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(identifier))))
	return hex.EncodeToString(sum[:])
}

// GravatarURL is the avatar URL for identifier; d=404 makes Gravatar answer
// 404 instead of serving its own placeholder.
func (r *Resolver) GravatarURL(identifier string) string {
	return r.gravatarBase + GravatarHash(identifier) + "?d=404"
}

// Gravatar reports the Gravatar URL when the service has an image for
// identifier. Any status other than 404 counts as found.
func (r *Resolver) Gravatar(ctx context.Context, identifier string) (string, bool, error) {
	url := r.GravatarURL(identifier)
	status, _, err := r.get(ctx, url)
	if err != nil {
		return "", false, err
	}
	if status == http.StatusNotFound {
		return "", false, nil
	}
	return url, true, nil
}

// get issues a GET and returns the status and the final URL after redirects.
func (r *Resolver) get(ctx context.Context, url string) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, "", err
	}
	resp, err := r.http.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	final := url
	if resp.Request != nil && resp.Request.URL != nil {
		final = resp.Request.URL.String()
	}
	return resp.StatusCode, final, nil
}
