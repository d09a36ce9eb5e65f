package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// The current supported version of the conversation ciphertext format.
const payloadVersion = 1

// conversationInfo domain-separates the derived AEAD key.
var conversationInfo = []byte("murmur/conversation/v1")

// Returned when a ciphertext cannot be opened: wrong counterparty,
// tampered payload, or a malformed blob.
var ErrCannotOpen = errors.New("cannot open ciphertext")

// Encrypt seals plaintext for the recipient. The payload is
// base64(version || nonce || AEAD ciphertext) under a key derived from
// the ECDH shared point.
func Encrypt(senderPrivateKey, recipientPublicKey, plaintext string) (string, error) {
	key, err := conversationKey(senderPrivateKey, recipientPublicKey)
	if err != nil {
		return "", err
	}
	defer zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	payload := make([]byte, 0, 1+len(nonce)+len(plaintext)+aead.Overhead())
	payload = append(payload, payloadVersion)
	payload = append(payload, nonce...)
	payload = aead.Seal(payload, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(payload), nil
}

// Decrypt opens a payload produced by Encrypt with the mirrored key
// pair. Failures collapse into ErrCannotOpen; callers cannot tell a
// misdirected message from a tampered one.
func Decrypt(receiverPrivateKey, senderPublicKey, ciphertext string) (string, error) {
	payload, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCannotOpen, err)
	}
	if len(payload) < 1+chacha20poly1305.NonceSize+chacha20poly1305.Overhead {
		return "", fmt.Errorf("%w: truncated payload", ErrCannotOpen)
	}
	if payload[0] != payloadVersion {
		return "", fmt.Errorf("%w: unsupported version %d", ErrCannotOpen, payload[0])
	}

	key, err := conversationKey(receiverPrivateKey, senderPublicKey)
	if err != nil {
		return "", err
	}
	defer zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return "", err
	}
	nonce := payload[1 : 1+chacha20poly1305.NonceSize]
	pt, err := aead.Open(nil, nonce, payload[1+chacha20poly1305.NonceSize:], nil)
	if err != nil {
		return "", ErrCannotOpen
	}
	return string(pt), nil
}

// conversationKey derives the shared AEAD key from the x coordinate of
// the ECDH point. Only the x coordinate is used, so the key is the same
// from both directions even though public keys are x-only.
func conversationKey(privateKey, publicKey string) ([]byte, error) {
	priv, err := parsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	pub, err := parsePublicKey(publicKey)
	if err != nil {
		return nil, err
	}

	var point, shared secp256k1.JacobianPoint
	pub.AsJacobian(&point)
	secp256k1.ScalarMultNonConst(&priv.Key, &point, &shared)
	shared.ToAffine()
	sharedX := shared.X.Bytes()
	defer zero(sharedX[:])

	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, sharedX[:], nil, conversationInfo), key); err != nil {
		return nil, fmt.Errorf("derive conversation key: %w", err)
	}
	return key, nil
}

// zero overwrites key material so it does not outlive its use.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
