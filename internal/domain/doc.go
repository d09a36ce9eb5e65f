// Package domain defines the core data models and interfaces shared across
// murmur: events, tags, rumors, kind families, the addressable reference
// scheme, and the capability contracts the crypto layer satisfies.
package domain
