package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// RawJSONProvider is implemented by types that carry the JSON they were
// decoded from.
type RawJSONProvider interface {
	RawJSON() string
}

// PrintPrettyJSON prints v to stdout as indented JSON. Raw JSON inputs
// (json.RawMessage, []byte, RawJSONProvider) are indented as-is rather than
// re-marshaled, so the output matches what the server sent.
func PrintPrettyJSON(v any) error {
	return FprintPrettyJSON(os.Stdout, v)
}

// FprintPrettyJSON is PrintPrettyJSON writing to w.
func FprintPrettyJSON(w io.Writer, v any) error {
	var raw []byte
	switch t := v.(type) {
	case RawJSONProvider:
		raw = []byte(t.RawJSON())
	case json.RawMessage:
		raw = t
	case []byte:
		raw = t
	default:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		_, err := fmt.Fprintln(w, "{}")
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, buf.String())
	return err
}
