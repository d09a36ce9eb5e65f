package envelope

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"murmur/internal/crypto"
	"murmur/internal/domain"
)

// timestampWindow is how far into the past envelope timestamps are
// smeared.
const timestampWindow = 2 * 24 * time.Hour

// Wrapper builds and opens gift wraps. The cipher, signer, and key
// generator are injected; the key generator in particular must mint a
// fresh keypair per wrap, which is what makes outer signers unlinkable
// across messages.
type Wrapper struct {
	cipher domain.Cipher
	signer domain.Signer
	keys   domain.KeyGenerator
	now    func() time.Time
}

// Option adjusts a Wrapper.
type Option func(*Wrapper)

// WithClock overrides the wall clock used to anchor randomized
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(w *Wrapper) { w.now = now }
}

// New builds a Wrapper from the injected capabilities.
func New(cipher domain.Cipher, signer domain.Signer, keys domain.KeyGenerator, opts ...Option) *Wrapper {
	w := &Wrapper{
		cipher: cipher,
		signer: signer,
		keys:   keys,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// GiftWrap seals the rumor to the recipient and wraps the seal in an
// anonymous outer layer. The rumor id is recomputed from its canonical
// form; the single-use wrap key is discarded before returning.
func (w *Wrapper) GiftWrap(rumor domain.Rumor, senderPrivateKey, recipientPublicKey string) (domain.Event, error) {
	id, err := crypto.EventID(rumor.Event())
	if err != nil {
		return domain.Event{}, err
	}
	rumor.ID = id

	seal, err := w.seal(rumor, senderPrivateKey, recipientPublicKey)
	if err != nil {
		return domain.Event{}, err
	}

	wrapKey, err := w.keys.Generate()
	if err != nil {
		return domain.Event{}, fmt.Errorf("gift wrap: %w", err)
	}
	payload, err := json.Marshal(seal)
	if err != nil {
		return domain.Event{}, fmt.Errorf("gift wrap: %w", err)
	}
	content, err := w.cipher.Encrypt(wrapKey.PrivateKey, recipientPublicKey, string(payload))
	if err != nil {
		return domain.Event{}, fmt.Errorf("gift wrap: %w", err)
	}

	createdAt, err := w.smearedCreatedAt()
	if err != nil {
		return domain.Event{}, err
	}
	wrap := domain.Event{
		CreatedAt: createdAt,
		Kind:      domain.KindGiftWrap,
		Tags:      domain.Tags{{"p", recipientPublicKey}},
		Content:   content,
	}
	if err := w.signer.Sign(&wrap, wrapKey.PrivateKey); err != nil {
		return domain.Event{}, fmt.Errorf("gift wrap: %w", err)
	}
	return wrap, nil
}

// seal encrypts the rumor to the recipient and signs the result with
// the sender's real key. Seals carry no tags so the layer holds zero
// routing metadata.
func (w *Wrapper) seal(rumor domain.Rumor, senderPrivateKey, recipientPublicKey string) (domain.Event, error) {
	payload, err := json.Marshal(rumor)
	if err != nil {
		return domain.Event{}, fmt.Errorf("seal: %w", err)
	}
	content, err := w.cipher.Encrypt(senderPrivateKey, recipientPublicKey, string(payload))
	if err != nil {
		return domain.Event{}, fmt.Errorf("seal: %w", err)
	}

	createdAt, err := w.smearedCreatedAt()
	if err != nil {
		return domain.Event{}, err
	}
	seal := domain.Event{
		CreatedAt: createdAt,
		Kind:      domain.KindSeal,
		Tags:      domain.Tags{},
		Content:   content,
	}
	if err := w.signer.Sign(&seal, senderPrivateKey); err != nil {
		return domain.Event{}, fmt.Errorf("seal: %w", err)
	}
	return seal, nil
}

// UnwrapGiftWrap peels the outer layer, returning the seal inside.
func (w *Wrapper) UnwrapGiftWrap(wrap domain.Event, recipientPrivateKey string) (domain.Event, error) {
	if wrap.Kind != domain.KindGiftWrap {
		return domain.Event{}, ErrNotGiftWrap
	}
	if _, ok := wrap.Tags.First("p"); !ok {
		return domain.Event{}, ErrNoRecipientTag
	}

	payload, err := w.cipher.Decrypt(recipientPrivateKey, wrap.PubKey, wrap.Content)
	if err != nil {
		return domain.Event{}, fmt.Errorf("%w: %v", ErrOpenLayer, err)
	}
	var seal domain.Event
	if err := json.Unmarshal([]byte(payload), &seal); err != nil {
		return domain.Event{}, fmt.Errorf("%w: %v", ErrOpenLayer, err)
	}
	return seal, nil
}

// UnwrapSeal opens the seal and returns the rumor, enforcing that the
// rumor's claimed author is the key that signed the seal. Without that
// check an intermediary could attribute a forged rumor to any sender.
func (w *Wrapper) UnwrapSeal(seal domain.Event, recipientPrivateKey string) (domain.Rumor, error) {
	if seal.Kind != domain.KindSeal {
		return domain.Rumor{}, ErrNotSeal
	}
	if len(seal.Tags) != 0 {
		return domain.Rumor{}, ErrSealHasTags
	}

	payload, err := w.cipher.Decrypt(recipientPrivateKey, seal.PubKey, seal.Content)
	if err != nil {
		return domain.Rumor{}, fmt.Errorf("%w: %v", ErrOpenLayer, err)
	}
	var rumor domain.Rumor
	if err := json.Unmarshal([]byte(payload), &rumor); err != nil {
		return domain.Rumor{}, fmt.Errorf("%w: %v", ErrOpenLayer, err)
	}
	if rumor.PubKey != seal.PubKey {
		return domain.Rumor{}, ErrAuthorMismatch
	}
	return rumor, nil
}

// Open composes both unwrap steps. Either failure fails the whole
// operation; no partial result is returned.
func (w *Wrapper) Open(wrap domain.Event, recipientPrivateKey string) (domain.Rumor, error) {
	seal, err := w.UnwrapGiftWrap(wrap, recipientPrivateKey)
	if err != nil {
		return domain.Rumor{}, err
	}
	return w.UnwrapSeal(seal, recipientPrivateKey)
}

// smearedCreatedAt draws a timestamp uniformly from the window ending
// now. Each layer draws independently.
func (w *Wrapper) smearedCreatedAt() (int64, error) {
	span := big.NewInt(int64(timestampWindow/time.Second) + 1)
	off, err := rand.Int(rand.Reader, span)
	if err != nil {
		return 0, fmt.Errorf("randomize timestamp: %w", err)
	}
	return w.now().Unix() - off.Int64(), nil
}
