package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kernel/kit/pkg/icons"
	"github.com/kernel/kit/pkg/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// IconInput holds input for the icon command.
type IconInput struct {
	Names  []string
	Vocab  string
	Output string
}

type iconRow struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Icon string `json:"icon"`
}

// Icons prints the icon for each file name or bare extension.
func Icons(in IconInput) error {
	if err := validateOutput(in.Output); err != nil {
		return err
	}
	vocab, ok := icons.ForName(in.Vocab)
	if !ok {
		return fmt.Errorf("unknown icon set %q: use %s", in.Vocab, strings.Join(icons.Names(), " or "))
	}

	result := make([]iconRow, 0, len(in.Names))
	for _, name := range in.Names {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
		if ext == "" {
			ext = strings.ToLower(name)
		}
		kind, _ := icons.KindOf(ext)
		result = append(result, iconRow{Name: name, Kind: string(kind), Icon: icons.Lookup(vocab, ext)})
	}

	if in.Output == "json" {
		return util.PrintPrettyJSON(result)
	}
	rows := pterm.TableData{{"Name", "Kind", "Icon"}}
	for _, r := range result {
		rows = append(rows, []string{r.Name, util.OrDash(r.Kind), r.Icon})
	}
	PrintTableNoPad(rows, true)
	return nil
}

var iconCmd = &cobra.Command{
	Use:   "icon <file-or-extension>...",
	Short: "Show the icon name for files or extensions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vocab, _ := cmd.Flags().GetString("vocab")
		output, _ := cmd.Flags().GetString("output")
		return Icons(IconInput{Names: args, Vocab: vocab, Output: output})
	},
}

func init() {
	rootCmd.AddCommand(iconCmd)

	iconCmd.Flags().String("vocab", icons.FontAwesome.Name, "Icon set: fa or svg")
	addOutputFlag(iconCmd.Flags())
}
