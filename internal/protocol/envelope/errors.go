package envelope

import "errors"

// Shape errors: the inbound event is not the expected layer. Detected
// before any cryptography runs; callers should treat the event as not
// an envelope for them and drop it.
var (
	ErrNotGiftWrap    = errors.New("envelope: not a gift wrap")
	ErrNotSeal        = errors.New("envelope: not a seal")
	ErrNoRecipientTag = errors.New("envelope: gift wrap has no p tag")
	ErrSealHasTags    = errors.New("envelope: seal carries tags")
)

// ErrOpenLayer wraps decryption and payload-decoding failures. A layer
// that cannot be opened may be misdirected or tampered with; the two
// are indistinguishable here.
var ErrOpenLayer = errors.New("envelope: cannot open layer")

// ErrAuthorMismatch means the rumor claims a different author than the
// key that signed the seal. Equivalent in severity to a forged
// signature.
var ErrAuthorMismatch = errors.New("envelope: rumor author does not match seal")
