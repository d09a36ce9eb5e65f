package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Serialize returns the canonical form hashed to derive the event id:
// the JSON array [0, pubkey, created_at, kind, tags, content] with HTML
// escaping disabled. ID and Sig never participate.
func (ev Event) Serialize() ([]byte, error) {
	tags := ev.Tags
	if tags == nil {
		tags = Tags{}
	}
	arr := []any{0, ev.PubKey, ev.CreatedAt, ev.Kind, tags, ev.Content}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(arr); err != nil {
		return nil, fmt.Errorf("serialize event: %w", err)
	}
	// Encode appends a newline that is not part of the canonical form.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Serialize returns the canonical form of the rumor, which is identical
// to that of the corresponding unsigned event.
func (r Rumor) Serialize() ([]byte, error) {
	return r.Event().Serialize()
}
