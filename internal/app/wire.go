package app

import (
	"murmur/internal/crypto"
	"murmur/internal/protocol/envelope"
	"murmur/internal/store"
)

// Wire bundles the components for the CLI.
type Wire struct {
	Store   *store.EventStore
	Wrapper *envelope.Wrapper
	Suite   crypto.Suite
	Subs    *store.SubscriptionIDs
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	st, err := store.New(cfg.Cache)
	if err != nil {
		return nil, err
	}

	suite := crypto.Suite{}
	return &Wire{
		Store:   st,
		Wrapper: envelope.New(suite, suite, suite),
		Suite:   suite,
		Subs:    store.NewSubscriptionIDs(),
	}, nil
}
