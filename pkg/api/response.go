package api

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Response is a successful POST result.
type Response struct {
	Status int
	Body   json.RawMessage
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Get looks up a gjson path in the body, e.g. "user.name" or "items.#".
func (r *Response) Get(path string) gjson.Result {
	return gjson.GetBytes(r.Body, path)
}

// MarshalJSON emits the body as-is so a Response prints as the server sent it.
func (r *Response) MarshalJSON() ([]byte, error) {
	if len(r.Body) == 0 {
		return []byte("null"), nil
	}
	return r.Body, nil
}
