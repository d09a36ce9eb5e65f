// Package commands implements the murmur CLI: key generation, gift-wrap
// construction and opening, and bulk event ingestion into the local
// store.
package commands
