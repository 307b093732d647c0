package cmd

import (
	"strings"

	"github.com/kernel/kit/pkg/clipboard"
	"github.com/kernel/kit/pkg/toast"
	"github.com/spf13/cobra"
)

// copyText is replaced in tests.
var copyText = clipboard.Copy

// Copy puts text on the clipboard and confirms with a toast.
func Copy(text string) error {
	if err := copyText(text); err != nil {
		return err
	}
	toast.Toast("Copied to clipboard")
	return nil
}

var copyCmd = &cobra.Command{
	Use:   "copy [text]",
	Short: "Copy text to the clipboard",
	Long:  "Copy the arguments, or stdin when there are none, to the system clipboard.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return Copy(strings.Join(args, " "))
		}
		text, err := readInput("", cmd.InOrStdin())
		if err != nil {
			return err
		}
		return Copy(strings.TrimRight(text, "\n"))
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
