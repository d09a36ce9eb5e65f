// Package crypto exposes the concrete primitives murmur plugs into the
// envelope protocol and event pipeline.
//
// Contents
//
//   - secp256k1 key generation and hex parsing (GenerateKeypair,
//     PublicKeyOf)
//   - event id derivation over the canonical serialization (EventID)
//   - Schnorr signing and verification over the event id (SignEvent,
//     VerifyEvent)
//   - conversation encryption: ECDH + HKDF-SHA256 + ChaCha20-Poly1305
//     (Encrypt, Decrypt)
//
// Suite adapts all of the above to the capability interfaces declared
// in internal/domain.
package crypto
