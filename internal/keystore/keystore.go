// Package keystore keeps the kit access token in the OS keyring.
package keystore

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
	"golang.org/x/oauth2"
)

const (
	Service = "kit"
	User    = "access-token"
)

// ErrNotFound means no token has been saved.
var ErrNotFound = errors.New("no access token stored")

// Save stores token, replacing any previous one.
func Save(token string) error {
	if token == "" {
		return errors.New("token must not be empty")
	}
	if err := keyring.Set(Service, User, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// Load returns the stored token.
func Load() (string, error) {
	tok, err := keyring.Get(Service, User)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return tok, nil
}

// Delete removes the stored token. Deleting when nothing is stored is not an
// error.
func Delete() error {
	err := keyring.Delete(Service, User)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

type keyringSource struct{}

func (keyringSource) Token() (*oauth2.Token, error) {
	tok, err := Load()
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{AccessToken: tok, TokenType: "Bearer"}, nil
}

// TokenSource yields explicit when it is set, otherwise the stored token.
// The keyring is read at most once per successful lookup.
func TokenSource(explicit string) oauth2.TokenSource {
	if explicit != "" {
		return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: explicit, TokenType: "Bearer"})
	}
	return oauth2.ReuseTokenSource(nil, keyringSource{})
}
