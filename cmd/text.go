package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kernel/kit/pkg/convert"
	"github.com/kernel/kit/pkg/strutil"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// readInput returns the named file, or r when name is empty or "-".
func readInput(name string, r io.Reader) (string, error) {
	if name != "" && name != "-" {
		b, err := os.ReadFile(name)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", name, err)
		}
		return string(b), nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(b), nil
}

// HTMLToText prints the visible text of an HTML document.
func HTMLToText(doc string) error {
	text, err := convert.HTMLToText(doc)
	if err != nil {
		return err
	}
	pterm.Println(text)
	return nil
}

// Domain prints the host part of a URL.
func Domain(raw string) error {
	host, ok := strutil.Domain(raw)
	if !ok {
		return fmt.Errorf("no domain in %q", raw)
	}
	pterm.Println(host)
	return nil
}

var html2textCmd = &cobra.Command{
	Use:   "html2text [file]",
	Short: "Extract the visible text from HTML",
	Long:  "Extract the visible text from an HTML file, or from stdin when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var name string
		if len(args) == 1 {
			name = args[0]
		}
		doc, err := readInput(name, cmd.InOrStdin())
		if err != nil {
			return err
		}
		return HTMLToText(doc)
	},
}

var unescapeCmd = &cobra.Command{
	Use:   "unescape <text>",
	Short: "Decode HTML entities",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.Println(convert.UnescapeHTML(strings.Join(args, " ")))
		return nil
	},
}

var hexCmd = &cobra.Command{
	Use:   "hex <text>",
	Short: "Hex-encode text one UTF-16 code unit at a time",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.Println(strutil.HexEncode(strings.Join(args, " ")))
		return nil
	},
}

var randomCmd = &cobra.Command{
	Use:   "random [length]",
	Short: "Print a random hex string",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 16
		if len(args) == 1 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 0 {
				return fmt.Errorf("invalid length %q", args[0])
			}
			n = v
		}
		s, err := strutil.RandomHex(n)
		if err != nil {
			return err
		}
		pterm.Println(s)
		return nil
	},
}

var domainCmd = &cobra.Command{
	Use:   "domain <url>",
	Short: "Print the host of a URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Domain(args[0])
	},
}

func init() {
	rootCmd.AddCommand(html2textCmd)
	rootCmd.AddCommand(unescapeCmd)
	rootCmd.AddCommand(hexCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(domainCmd)
}
