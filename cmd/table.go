package cmd

import (
	"strings"

	"github.com/pterm/pterm"
)

// PrintTableNoPad prints data as a table without the trailing padding pterm
// adds to every cell in the last column.
func PrintTableNoPad(data pterm.TableData, hasHeader bool) {
	out, err := pterm.DefaultTable.WithHasHeader(hasHeader).WithData(data).Srender()
	if err != nil {
		pterm.Error.Println("Failed to render table:", err)
		return
	}
	lines := strings.Split(out, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	pterm.Println(strings.Join(lines, "\n"))
}

// truncate shortens s to n runes, marking the cut.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
