package store

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"murmur/internal/domain"
)

// Config controls the event store.
type Config struct {
	// MaxEvents bounds the primary map; must be positive when enabled.
	MaxEvents int `yaml:"max_events"`
	// Enabled is a kill switch: when false every operation is a no-op
	// returning empty results, not an error.
	Enabled bool `yaml:"enabled"`
}

type tagKey struct {
	name  string
	value string
}

type replaceableKey struct {
	pubkey string
	kind   uint16
}

type addressableKey struct {
	pubkey string
	kind   uint16
	d      string
}

// EventStore indexes events by id, kind, author, and tag, tracks the
// current incumbent per replaceable/addressable slot, and evicts the
// least-recently-touched event when over capacity. Recency is updated
// by successful Get and Insert only; index queries read without
// touching.
type EventStore struct {
	cfg Config

	// events maps id to domain.Event and owns recency order. Its
	// eviction callback clears the secondary indices and any incumbent
	// registration in the same step, so an id can never linger as a
	// registered incumbent after leaving the primary map.
	events *lru.Cache

	byKind   map[uint16]map[string]struct{}
	byAuthor map[string]map[string]struct{}
	byTag    map[tagKey]map[string]struct{}

	replaceable map[replaceableKey]string
	addressable map[addressableKey]string
}

// New builds a store. A disabled config never errors; an enabled one
// requires a positive capacity.
func New(cfg Config) (*EventStore, error) {
	s := &EventStore{cfg: cfg}
	if !cfg.Enabled {
		return s, nil
	}
	s.reset()
	cache, err := lru.NewWithEvict(cfg.MaxEvents, s.onEvict)
	if err != nil {
		return nil, fmt.Errorf("event store: %w", err)
	}
	s.events = cache
	return s, nil
}

func (s *EventStore) reset() {
	s.byKind = make(map[uint16]map[string]struct{})
	s.byAuthor = make(map[string]map[string]struct{})
	s.byTag = make(map[tagKey]map[string]struct{})
	s.replaceable = make(map[replaceableKey]string)
	s.addressable = make(map[addressableKey]string)
}

// onEvict runs for every id leaving the primary map, whether by
// capacity pressure, replacement, or explicit removal.
func (s *EventStore) onEvict(key, value any) {
	id := key.(string)
	ev := value.(domain.Event)

	unindex(s.byKind, ev.Kind, id)
	unindex(s.byAuthor, ev.PubKey, id)
	for _, t := range ev.Tags {
		if len(t) < 2 {
			continue
		}
		unindex(s.byTag, tagKey{t.Name(), t.Value()}, id)
	}

	switch class := domain.ClassOf(ev); class.Family {
	case domain.FamilyReplaceable:
		k := replaceableKey{ev.PubKey, ev.Kind}
		if s.replaceable[k] == id {
			delete(s.replaceable, k)
		}
	case domain.FamilyAddressable:
		k := addressableKey{ev.PubKey, ev.Kind, class.D}
		if s.addressable[k] == id {
			delete(s.addressable, k)
		}
	}
}

// Insert stores the event, resolving replacement for the replaceable
// and addressable families first. An event that is not strictly newer
// than the incumbent for its slot is discarded entirely. Re-inserting
// a present id only refreshes its recency.
func (s *EventStore) Insert(ev domain.Event) {
	if !s.cfg.Enabled {
		return
	}

	switch class := domain.ClassOf(ev); class.Family {
	case domain.FamilyReplaceable:
		k := replaceableKey{ev.PubKey, ev.Kind}
		if !s.supersede(s.replaceable[k], ev) {
			return
		}
		s.replaceable[k] = ev.ID
	case domain.FamilyAddressable:
		k := addressableKey{ev.PubKey, ev.Kind, class.D}
		if !s.supersede(s.addressable[k], ev) {
			return
		}
		s.addressable[k] = ev.ID
	}

	if s.events.Contains(ev.ID) {
		s.events.Get(ev.ID) // refresh recency, indices already hold it
		return
	}

	index(s.byKind, ev.Kind, ev.ID)
	index(s.byAuthor, ev.PubKey, ev.ID)
	for _, t := range ev.Tags {
		if len(t) < 2 {
			continue
		}
		index(s.byTag, tagKey{t.Name(), t.Value()}, ev.ID)
	}
	s.events.Add(ev.ID, ev) // may evict the LRU entry via onEvict
}

// supersede resolves a replacement slot against its incumbent. It
// reports whether ev wins; ties keep the incumbent. A winning ev has
// the incumbent fully evicted before the caller re-registers the slot.
func (s *EventStore) supersede(incumbent string, ev domain.Event) bool {
	if incumbent == "" || incumbent == ev.ID {
		return true
	}
	if v, ok := s.events.Peek(incumbent); ok {
		if ev.CreatedAt <= v.(domain.Event).CreatedAt {
			return false
		}
	}
	s.events.Remove(incumbent)
	return true
}

// Get returns the event by id, refreshing its recency on hit.
func (s *EventStore) Get(id string) (domain.Event, bool) {
	if !s.cfg.Enabled {
		return domain.Event{}, false
	}
	v, ok := s.events.Get(id)
	if !ok {
		return domain.Event{}, false
	}
	return v.(domain.Event), true
}

// GetByKind returns all stored events of the kind, in no particular
// order, without touching recency.
func (s *EventStore) GetByKind(kind uint16) []domain.Event {
	if !s.cfg.Enabled {
		return nil
	}
	return s.collect(s.byKind[kind])
}

// GetByAuthor returns all stored events by the author, in no particular
// order, without touching recency.
func (s *EventStore) GetByAuthor(pubkey string) []domain.Event {
	if !s.cfg.Enabled {
		return nil
	}
	return s.collect(s.byAuthor[pubkey])
}

// GetByTag returns all stored events carrying a tag with the given name
// and primary value, in no particular order, without touching recency.
func (s *EventStore) GetByTag(name, value string) []domain.Event {
	if !s.cfg.Enabled {
		return nil
	}
	return s.collect(s.byTag[tagKey{name, value}])
}

// GetByAddress resolves a kind:pubkey:d address to its incumbent event
// without touching recency.
func (s *EventStore) GetByAddress(a domain.Address) (domain.Event, bool) {
	if !s.cfg.Enabled {
		return domain.Event{}, false
	}
	id, ok := s.addressable[addressableKey{a.PubKey, a.Kind, a.D}]
	if !ok {
		return domain.Event{}, false
	}
	v, ok := s.events.Peek(id)
	if !ok {
		return domain.Event{}, false
	}
	return v.(domain.Event), true
}

// Remove deletes the event by id from the primary map, every index, and
// any incumbent registration, all as one step.
func (s *EventStore) Remove(id string) (domain.Event, bool) {
	if !s.cfg.Enabled {
		return domain.Event{}, false
	}
	v, ok := s.events.Peek(id)
	if !ok {
		return domain.Event{}, false
	}
	s.events.Remove(id) // onEvict clears indices and registrations
	return v.(domain.Event), true
}

// Clear empties the store.
func (s *EventStore) Clear() {
	if !s.cfg.Enabled {
		return
	}
	s.events.Purge()
	s.reset()
}

// Len reports the number of stored events; 0 when disabled.
func (s *EventStore) Len() int {
	if !s.cfg.Enabled {
		return 0
	}
	return s.events.Len()
}

func (s *EventStore) collect(ids map[string]struct{}) []domain.Event {
	if len(ids) == 0 {
		return nil
	}
	out := make([]domain.Event, 0, len(ids))
	for id := range ids {
		if v, ok := s.events.Peek(id); ok {
			out = append(out, v.(domain.Event))
		}
	}
	return out
}

func index[K comparable](m map[K]map[string]struct{}, k K, id string) {
	bucket, ok := m[k]
	if !ok {
		bucket = make(map[string]struct{})
		m[k] = bucket
	}
	bucket[id] = struct{}{}
}

func unindex[K comparable](m map[K]map[string]struct{}, k K, id string) {
	bucket, ok := m[k]
	if !ok {
		return
	}
	delete(bucket, id)
	if len(bucket) == 0 {
		delete(m, k)
	}
}
