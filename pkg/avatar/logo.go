package avatar

import (
	"context"
	"net/http"
	"strings"
)

// Public mail providers whose domains carry no per-company branding.
var mailProviders = map[string]struct{}{
	"gmail":     {},
	"office365": {},
	"live":      {},
	"hotmail":   {},
	"outlook":   {},
	"aol":       {},
	"yahoo":     {},
}

var mailDomains = []string{"me.com", "icloud.com"}

// MailDomain returns the part of identifier after the last '@'.
func MailDomain(identifier string) (string, bool) {
	i := strings.LastIndex(identifier, "@")
	if i < 0 || i == len(identifier)-1 {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(identifier[i+1:])), true
}

// IsMailHost reports whether domain belongs to a large public mail host,
// e.g. gmail.com, yahoo.co.uk, hotmail.fr or icloud.com.
func IsMailHost(domain string) bool {
	domain = strings.ToLower(domain)
	for _, d := range mailDomains {
		if domain == d || strings.HasSuffix(domain, "."+d) {
			return true
		}
	}
	name, _, found := strings.Cut(domain, ".")
	if !found {
		return false
	}
	_, ok := mailProviders[name]
	return ok
}

// Logo looks up the company logo for domain. It returns the final logo URL
// when the service answers 200.
func (r *Resolver) Logo(ctx context.Context, domain string) (string, bool, error) {
	status, final, err := r.get(ctx, r.logoBase+domain)
	if err != nil {
		return "", false, err
	}
	if status != http.StatusOK {
		return "", false, nil
	}
	return final, true, nil
}

// GetLogo is Logo on a default Resolver.
func GetLogo(ctx context.Context, domain string) (string, bool, error) {
	return New(DefaultOptions()).Logo(ctx, domain)
}
