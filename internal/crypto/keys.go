package crypto

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"murmur/internal/domain"
)

// GenerateKeypair returns a fresh secp256k1 keypair. The public key is
// the 32-byte x-only form, both sides hex encoded.
func GenerateKeypair() (domain.Keypair, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return domain.Keypair{}, fmt.Errorf("generate key: %w", err)
	}
	return domain.Keypair{
		PrivateKey: hex.EncodeToString(priv.Serialize()),
		PublicKey:  hex.EncodeToString(schnorr.SerializePubKey(priv.PubKey())),
	}, nil
}

// PublicKeyOf derives the x-only public key for a hex private key.
func PublicKeyOf(privateKey string) (string, error) {
	priv, err := parsePrivateKey(privateKey)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(schnorr.SerializePubKey(priv.PubKey())), nil
}

func parsePrivateKey(s string) (*secp256k1.PrivateKey, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("parse private key: want 32 bytes, got %d", len(raw))
	}
	return secp256k1.PrivKeyFromBytes(raw), nil
}

// parsePublicKey lifts an x-only hex key to a curve point.
func parsePublicKey(s string) (*secp256k1.PublicKey, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	pub, err := schnorr.ParsePubKey(raw)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	return pub, nil
}
