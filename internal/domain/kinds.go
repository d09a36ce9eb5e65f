package domain

// Well-known kind numbers. Seal and gift wrap are fixed wire constants
// and must never be made configurable.
const (
	KindProfile  uint16 = 0
	KindFollows  uint16 = 3
	KindSeal     uint16 = 13
	KindChat     uint16 = 14
	KindGiftWrap uint16 = 1059
)

// Family partitions kinds into the three retention families the
// protocol mandates.
type Family int

const (
	// FamilyRegular events accumulate without bound per author.
	FamilyRegular Family = iota
	// FamilyReplaceable keeps at most one live event per (pubkey, kind).
	FamilyReplaceable
	// FamilyAddressable keeps at most one live event per
	// (pubkey, kind, d-tag value).
	FamilyAddressable
)

// KindFamily classifies a kind number.
func KindFamily(kind uint16) Family {
	switch {
	case kind == KindProfile, kind == KindFollows,
		kind >= 10000 && kind < 20000:
		return FamilyReplaceable
	case kind >= 30000 && kind < 40000:
		return FamilyAddressable
	default:
		return FamilyRegular
	}
}

// Class is the retention family of a concrete event, computed once on
// ingestion. D is only meaningful for the addressable family; an
// addressable event without a d tag gets the empty-string identifier.
type Class struct {
	Family Family
	D      string
}

// ClassOf classifies an event, resolving the d tag for the addressable
// family.
func ClassOf(ev Event) Class {
	f := KindFamily(ev.Kind)
	if f != FamilyAddressable {
		return Class{Family: f}
	}
	return Class{Family: f, D: ev.Tags.Value("d")}
}
