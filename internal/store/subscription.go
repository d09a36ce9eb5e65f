package store

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// SubscriptionIDs issues identifiers for relay subscriptions. It is an
// owned counter handed to whichever component opens subscriptions,
// not ambient process state. The random prefix keeps ids from separate
// issuers (or restarts) from colliding at the relay.
type SubscriptionIDs struct {
	prefix string
	n      atomic.Uint64
}

// NewSubscriptionIDs builds an issuer with a fresh random prefix.
func NewSubscriptionIDs() *SubscriptionIDs {
	return &SubscriptionIDs{prefix: uuid.NewString()[:8]}
}

// Next returns the next identifier. Safe for concurrent use.
func (s *SubscriptionIDs) Next() string {
	return fmt.Sprintf("%s:%d", s.prefix, s.n.Add(1))
}
