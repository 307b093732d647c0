package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kernel/kit/internal/keystore"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// TokenStore persists the API access token.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Delete() error
}

type keyringStore struct{}

func (keyringStore) Save(token string) error { return keystore.Save(token) }
func (keyringStore) Load() (string, error)   { return keystore.Load() }
func (keyringStore) Delete() error           { return keystore.Delete() }

// TokenCmd manages the stored access token.
type TokenCmd struct {
	store TokenStore
}

// Set saves token.
func (c TokenCmd) Set(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("token must not be empty")
	}
	if err := c.store.Save(token); err != nil {
		return err
	}
	pterm.Success.Println("Access token saved")
	return nil
}

// Show prints the stored token, masked unless reveal is set.
func (c TokenCmd) Show(reveal bool) error {
	tok, err := c.store.Load()
	if errors.Is(err, keystore.ErrNotFound) {
		pterm.Info.Println("No access token stored")
		return nil
	}
	if err != nil {
		return err
	}
	if !reveal {
		tok = maskToken(tok)
	}
	pterm.Println(tok)
	return nil
}

// Clear removes the stored token.
func (c TokenCmd) Clear() error {
	if err := c.store.Delete(); err != nil {
		return err
	}
	pterm.Success.Println("Access token removed")
	return nil
}

// maskToken keeps the last four characters.
func maskToken(tok string) string {
	if len(tok) <= 4 {
		return strings.Repeat("*", len(tok))
	}
	return strings.Repeat("*", len(tok)-4) + tok[len(tok)-4:]
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the API access token stored in the OS keyring",
}

var tokenSetCmd = &cobra.Command{
	Use:   "set [token]",
	Short: "Save an access token",
	Long:  "Save an access token. Without an argument the token is read from an interactive prompt.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokenSet,
}

var tokenShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored access token",
	Args:  cobra.NoArgs,
	RunE:  runTokenShow,
}

var tokenClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored access token",
	Args:  cobra.NoArgs,
	RunE:  runTokenClear,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(tokenSetCmd)
	tokenCmd.AddCommand(tokenShowCmd)
	tokenCmd.AddCommand(tokenClearCmd)

	tokenShowCmd.Flags().Bool("reveal", false, "Print the token unmasked")
}

func runTokenSet(cmd *cobra.Command, args []string) error {
	var token string
	if len(args) == 1 {
		token = args[0]
	} else {
		v, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Access token")
		if err != nil {
			return err
		}
		token = v
	}
	return TokenCmd{store: keyringStore{}}.Set(token)
}

func runTokenShow(cmd *cobra.Command, args []string) error {
	reveal, _ := cmd.Flags().GetBool("reveal")
	return TokenCmd{store: keyringStore{}}.Show(reveal)
}

func runTokenClear(cmd *cobra.Command, args []string) error {
	return TokenCmd{store: keyringStore{}}.Clear()
}
