package domain

// Tag is an ordered list of strings. The first element is the tag name,
// the second the primary value, and any further elements carry auxiliary
// data such as relay hints.
type Tag []string

// Name returns the tag name, or "" for an empty tag.
func (t Tag) Name() string {
	if len(t) == 0 {
		return ""
	}
	return t[0]
}

// Value returns the primary value, or "" when the tag has none.
func (t Tag) Value() string {
	if len(t) < 2 {
		return ""
	}
	return t[1]
}

// Tags is the ordered tag list carried by an event.
type Tags []Tag

// First returns the first tag with the given name.
func (ts Tags) First(name string) (Tag, bool) {
	for _, t := range ts {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}

// Value returns the primary value of the first tag with the given name,
// or "" when no such tag exists.
func (ts Tags) Value(name string) string {
	t, ok := ts.First(name)
	if !ok {
		return ""
	}
	return t.Value()
}

// Event is the immutable unit of protocol data. ID and Sig are
// established upstream; the store never re-verifies them.
type Event struct {
	ID        string `json:"id"`
	PubKey    string `json:"pubkey"`
	CreatedAt int64  `json:"created_at"`
	Kind      uint16 `json:"kind"`
	Tags      Tags   `json:"tags"`
	Content   string `json:"content"`
	Sig       string `json:"sig"`
}

// Rumor is an event that was never signed. Without a signature it cannot
// be proven to have been authored by PubKey, which is what makes it
// deniable.
type Rumor struct {
	ID        string `json:"id"`
	PubKey    string `json:"pubkey"`
	CreatedAt int64  `json:"created_at"`
	Kind      uint16 `json:"kind"`
	Tags      Tags   `json:"tags"`
	Content   string `json:"content"`
}

// Event returns the rumor as an event with an empty signature.
func (r Rumor) Event() Event {
	return Event{
		ID:        r.ID,
		PubKey:    r.PubKey,
		CreatedAt: r.CreatedAt,
		Kind:      r.Kind,
		Tags:      r.Tags,
		Content:   r.Content,
	}
}

// RumorFrom strips the signature from an event.
func RumorFrom(ev Event) Rumor {
	return Rumor{
		ID:        ev.ID,
		PubKey:    ev.PubKey,
		CreatedAt: ev.CreatedAt,
		Kind:      ev.Kind,
		Tags:      ev.Tags,
		Content:   ev.Content,
	}
}
