// Package store keeps validated events in a capacity-bounded in-memory
// cache with secondary indices by kind, author, and tag, and enforces
// the protocol's latest-wins replacement rules for the replaceable and
// addressable kind families.
//
// The store assumes a single logical writer. Index updates span several
// maps that must change as a group, so callers in concurrent programs
// serialize all access behind one lock rather than locking per index.
package store
