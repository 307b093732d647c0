package toast

import (
	"bytes"
	"os"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	pterm.DisableStyling()
	pterm.SetDefaultOutput(&buf)
	t.Cleanup(func() {
		pterm.SetDefaultOutput(os.Stdout)
		pterm.EnableStyling()
	})
	return &buf
}

func TestToast(t *testing.T) {
	buf := capture(t)
	Toast("Copied to clipboard")
	Success("done")
	Warn("careful")

	out := buf.String()
	assert.Contains(t, out, "Copied to clipboard")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "SUCCESS")
	assert.Contains(t, out, "WARNING")
	assert.Contains(t, out, "careful")
}
