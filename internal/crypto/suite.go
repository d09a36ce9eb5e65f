package crypto

import "murmur/internal/domain"

// Suite adapts the package primitives to the capability interfaces in
// internal/domain. It is stateless and safe for concurrent use.
type Suite struct{}

var (
	_ domain.Cipher       = Suite{}
	_ domain.Signer       = Suite{}
	_ domain.KeyGenerator = Suite{}
)

// Encrypt implements domain.Cipher.
func (Suite) Encrypt(senderPrivateKey, recipientPublicKey, plaintext string) (string, error) {
	return Encrypt(senderPrivateKey, recipientPublicKey, plaintext)
}

// Decrypt implements domain.Cipher.
func (Suite) Decrypt(receiverPrivateKey, senderPublicKey, ciphertext string) (string, error) {
	return Decrypt(receiverPrivateKey, senderPublicKey, ciphertext)
}

// Sign implements domain.Signer.
func (Suite) Sign(ev *domain.Event, privateKey string) error {
	return SignEvent(ev, privateKey)
}

// Generate implements domain.KeyGenerator.
func (Suite) Generate() (domain.Keypair, error) {
	return GenerateKeypair()
}
