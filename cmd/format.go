package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kernel/kit/pkg/convert"
	"github.com/kernel/kit/pkg/datefmt"
	"github.com/kernel/kit/pkg/numfmt"
	"github.com/kernel/kit/pkg/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// now is replaced in tests.
var now = time.Now

// DateInput holds input for the date command.
type DateInput struct {
	Value  string
	Window int
	Output string
}

// parseWhen accepts RFC 3339, YYYY-MM-DD, or epoch milliseconds.
func parseWhen(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return datefmt.FromUnixMilli(ms).In(loc), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, s, loc); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q: use RFC 3339, YYYY-MM-DD or epoch milliseconds", s)
}

// Date prints every date form for in.Value.
func Date(in DateInput) error {
	if err := validateOutput(in.Output); err != nil {
		return err
	}
	ref := now()
	t, err := parseWhen(in.Value, ref.Location())
	if err != nil {
		return err
	}

	forms := []struct{ name, value string }{
		{"date", datefmt.Date(t)},
		{"nice_date", datefmt.NiceDate(t)},
		{"nicer_date", datefmt.NicerDate(t)},
		{"time", datefmt.Time(t)},
		{"date_time", datefmt.DateTime(t)},
		{"clock", datefmt.Clock(t)},
		{"nice_date_time", datefmt.NiceDateTime(t, ref, in.Window)},
		{"nicer_date_time", datefmt.NicerDateTime(t, ref)},
		{"month", datefmt.Month(t)},
		{"day", datefmt.Day(t)},
	}

	if in.Output == "json" {
		m := make(map[string]string, len(forms))
		for _, f := range forms {
			m[f.name] = f.value
		}
		return util.PrintPrettyJSON(m)
	}
	rows := pterm.TableData{{"Form", "Value"}}
	for _, f := range forms {
		rows = append(rows, []string{f.name, f.value})
	}
	PrintTableNoPad(rows, true)
	return nil
}

// ObjectID prints the creation time embedded in a 24-hex-digit object ID.
func ObjectID(id string) error {
	t, err := convert.ObjectIDToDate(id)
	if err != nil {
		return err
	}
	rows := pterm.TableData{{"Property", "Value"}}
	rows = append(rows, []string{"Created", datefmt.DateTime(t)})
	rows = append(rows, []string{"Relative", datefmt.NicerDateTime(t, now())})
	rows = append(rows, []string{"RFC 3339", t.UTC().Format(time.RFC3339)})
	PrintTableNoPad(rows, true)
	return nil
}

var dateCmd = &cobra.Command{
	Use:   "date <time>",
	Short: "Format a time in every supported form",
	Long:  "Format a time given as RFC 3339, YYYY-MM-DD or epoch milliseconds, relative to now.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		window, _ := cmd.Flags().GetInt("nice")
		output, _ := cmd.Flags().GetString("output")
		return Date(DateInput{Value: args[0], Window: window, Output: output})
	},
}

var filesizeCmd = &cobra.Command{
	Use:   "filesize <bytes>",
	Short: "Format a byte count for display",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.ParseFloat(args[0], 64)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid byte count %q", args[0])
		}
		pterm.Println(numfmt.Filesize(n))
		return nil
	},
}

var secondsCmd = &cobra.Command{
	Use:   "seconds <n>",
	Short: "Format a number of seconds as HH:MM:SS",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid number of seconds %q", args[0])
		}
		pterm.Println(numfmt.SecondsToTimestring(n))
		return nil
	},
}

var objectIDCmd = &cobra.Command{
	Use:   "objectid <id>",
	Short: "Show when an object ID was created",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return ObjectID(args[0])
	},
}

func init() {
	rootCmd.AddCommand(dateCmd)
	rootCmd.AddCommand(filesizeCmd)
	rootCmd.AddCommand(secondsCmd)
	rootCmd.AddCommand(objectIDCmd)

	dateCmd.Flags().Int("nice", datefmt.DefaultNiceWindow, "Weekday window in days for the compact relative form")
	addOutputFlag(dateCmd.Flags())
}
