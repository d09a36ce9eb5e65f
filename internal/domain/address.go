package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadAddress is returned when an address string does not parse as
// "kind:pubkey:d-identifier".
var ErrBadAddress = errors.New("malformed event address")

// Address references an addressable event as "kind:pubkey:d-identifier".
type Address struct {
	Kind   uint16
	PubKey string
	D      string
}

// String renders the canonical "kind:pubkey:d" form.
func (a Address) String() string {
	return fmt.Sprintf("%d:%s:%s", a.Kind, a.PubKey, a.D)
}

// Tag builds the "a" reference tag for this address. A non-empty relay
// hint is appended as the third element.
func (a Address) Tag(relayHint string) Tag {
	if relayHint != "" {
		return Tag{"a", a.String(), relayHint}
	}
	return Tag{"a", a.String()}
}

// ParseAddress parses "kind:pubkey:d". The d identifier may itself
// contain colons and may be empty.
func ParseAddress(s string) (Address, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 || parts[1] == "" {
		return Address{}, fmt.Errorf("%w: %q", ErrBadAddress, s)
	}
	kind, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %q: %v", ErrBadAddress, s, err)
	}
	return Address{Kind: uint16(kind), PubKey: parts[1], D: parts[2]}, nil
}

// AddressOf returns the address of an addressable event, or false for
// events of the other two families.
func AddressOf(ev Event) (Address, bool) {
	c := ClassOf(ev)
	if c.Family != FamilyAddressable {
		return Address{}, false
	}
	return Address{Kind: ev.Kind, PubKey: ev.PubKey, D: c.D}, true
}
