// Package strutil holds small string and slice helpers.
package strutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Capitalize upper-cases the first character of s and leaves the rest as is.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// RandomHex returns length random hexadecimal digits.
func RandomHex(length int) (string, error) {
	if length <= 0 {
		return "", nil
	}
	b := make([]byte, (length+1)/2)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b)[:length], nil
}

// HexEncode writes each UTF-16 code unit of s as its last two hex digits.
// Code units below 0x10 produce a single digit and wider ones are truncated,
// so the result is not reversible for non-Latin-1 text.
func HexEncode(s string) string {
	var b strings.Builder
	for _, cu := range utf16.Encode([]rune(s)) {
		h := fmt.Sprintf("%x", cu)
		if len(h) > 2 {
			h = h[len(h)-2:]
		}
		b.WriteString(h)
	}
	return b.String()
}

// Domain returns the host (with port, if any) of a URL. The scheme is
// optional; inputs without http:// or https:// are parsed as http.
func Domain(raw string) (string, bool) {
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}
	return strings.ToLower(u.Host), true
}
