package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"murmur/internal/domain"
)

// EventID hashes the canonical serialization of the event.
func EventID(ev domain.Event) (string, error) {
	canonical, err := ev.Serialize()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// SignEvent stamps the event with the signer's public key, recomputes
// the id, and signs it. Any previous ID/Sig values are overwritten.
func SignEvent(ev *domain.Event, privateKey string) error {
	priv, err := parsePrivateKey(privateKey)
	if err != nil {
		return err
	}
	ev.PubKey = hex.EncodeToString(schnorr.SerializePubKey(priv.PubKey()))

	id, err := EventID(*ev)
	if err != nil {
		return err
	}
	ev.ID = id

	digest, err := hex.DecodeString(id)
	if err != nil {
		return fmt.Errorf("sign event: %w", err)
	}
	sig, err := schnorr.Sign(priv, digest)
	if err != nil {
		return fmt.Errorf("sign event: %w", err)
	}
	ev.Sig = hex.EncodeToString(sig.Serialize())
	return nil
}

// VerifyEvent checks that the id matches the canonical serialization
// and that the signature verifies under the event's own public key.
func VerifyEvent(ev domain.Event) (bool, error) {
	id, err := EventID(ev)
	if err != nil {
		return false, err
	}
	if id != ev.ID {
		return false, nil
	}

	pub, err := parsePublicKey(ev.PubKey)
	if err != nil {
		return false, err
	}
	rawSig, err := hex.DecodeString(ev.Sig)
	if err != nil {
		return false, fmt.Errorf("parse signature: %w", err)
	}
	sig, err := schnorr.ParseSignature(rawSig)
	if err != nil {
		return false, fmt.Errorf("parse signature: %w", err)
	}
	digest, err := hex.DecodeString(ev.ID)
	if err != nil {
		return false, fmt.Errorf("parse event id: %w", err)
	}
	return sig.Verify(digest, pub), nil
}
