// Package toast shows short, transient status messages in the terminal.
package toast

import "github.com/pterm/pterm"

// Toast prints text as an informational line.
func Toast(text string) {
	pterm.Info.Println(text)
}

// Success prints text as a success line.
func Success(text string) {
	pterm.Success.Println(text)
}

// Warn prints text as a warning line.
func Warn(text string) {
	pterm.Warning.Println(text)
}
