package domain

// Keypair is a hex-encoded secp256k1 private key and its x-only public
// key.
type Keypair struct {
	PrivateKey string
	PublicKey  string
}

// Cipher is the matched asymmetric encrypt/decrypt pair used to seal
// envelope layers. The contract is
// Decrypt(bPriv, aPub, Encrypt(aPriv, bPub, msg)) == msg.
type Cipher interface {
	Encrypt(senderPrivateKey, recipientPublicKey, plaintext string) (string, error)
	Decrypt(receiverPrivateKey, senderPublicKey, ciphertext string) (string, error)
}

// Signer fills in an event's PubKey, ID, and Sig from the private key.
type Signer interface {
	Sign(ev *Event, privateKey string) error
}

// KeyGenerator mints fresh keypairs. It is injected rather than read
// from a global RNG so tests can supply deterministic keys.
type KeyGenerator interface {
	Generate() (Keypair, error)
}
