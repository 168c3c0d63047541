package crypto

import (
	"bytes"
	"crypto/ed25519"
	"crypto/subtle"
	"fmt"

	"filippo.io/edwards25519"
	libp2pcrypto "github.com/libp2p/go-libp2p/core/crypto"
	"github.com/libp2p/go-libp2p/core/peer"

	"github.com/tenderlite/tender-lite/util/strkey"
)

const (
	// Ed25519KeypairSize is the size of an expanded keypair: 32 bytes of seed
	// material followed by the corresponding 32-byte public key
	Ed25519KeypairSize = ed25519.PrivateKeySize
	// Ed25519PubKeySize is the size of an ed25519 public key
	Ed25519PubKeySize = ed25519.PublicKeySize
	// Ed25519SeedSize is the size of the seed material
	Ed25519SeedSize = ed25519.SeedSize
)

// Ed25519Keypair owns the raw bytes of an ed25519 expanded keypair.
// It is built only by NewEd25519Keypair, so a reachable instance always
// holds exactly Ed25519KeypairSize bytes.
type Ed25519Keypair struct {
	keypair []byte
}

// Ed25519PubKey is an ed25519 public key.
type Ed25519PubKey struct {
	pubKey ed25519.PublicKey
}

// NewEd25519Keypair copies raw into a new keypair, rejecting any length
// other than Ed25519KeypairSize. The caller keeps scrub responsibility
// for its own copy of the bytes.
func NewEd25519Keypair(raw []byte) (*Ed25519Keypair, error) {
	if len(raw) != Ed25519KeypairSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKeyLength, Ed25519KeypairSize, len(raw))
	}
	k := make([]byte, Ed25519KeypairSize)
	copy(k, raw)
	return &Ed25519Keypair{keypair: k}, nil
}

// Raw returns a copy of the keypair bytes, the caller owns scrubbing it.
func (k *Ed25519Keypair) Raw() ([]byte, error) {
	buf := make([]byte, len(k.keypair))
	copy(buf, k.keypair)
	return buf, nil
}

// Seed returns a copy of the 32-byte seed material, the caller owns scrubbing it.
func (k *Ed25519Keypair) Seed() []byte {
	seed := make([]byte, Ed25519SeedSize)
	copy(seed, k.keypair[:Ed25519SeedSize])
	return seed
}

// GetPublic derives the public key from the trailing bytes of the keypair.
// The derivation is a copy, never an alias, so erasing the keypair cannot
// corrupt a public key handed out earlier.
func (k *Ed25519Keypair) GetPublic() PubKey {
	pub := make([]byte, Ed25519PubKeySize)
	copy(pub, k.keypair[Ed25519KeypairSize-Ed25519PubKeySize:])
	return &Ed25519PubKey{pubKey: pub}
}

// Equals compares two ed25519 keypairs in constant time.
func (k *Ed25519Keypair) Equals(o Key) bool {
	ek, ok := o.(*Ed25519Keypair)
	if !ok {
		return KeyEquals(k, o)
	}
	return subtle.ConstantTimeCompare(k.keypair, ek.keypair) == 1
}

// Sign returns a signature from an input message.
func (k *Ed25519Keypair) Sign(msg []byte) ([]byte, error) {
	return ed25519.Sign(ed25519.PrivateKey(k.keypair), msg), nil
}

// Erase overwrites the keypair bytes with zeros. Every owner must call it
// on every exit path once the key stops being needed, including owners of
// temporary copies made during decode.
func (k *Ed25519Keypair) Erase() {
	ZeroBytes(k.keypair)
}

// LibP2P returns the libp2p model of this key. The libp2p copy is outside
// of the erase guarantee.
func (k *Ed25519Keypair) LibP2P() (libp2pcrypto.PrivKey, error) {
	return libp2pcrypto.UnmarshalEd25519PrivateKey(k.keypair)
}

// Raw returns a copy of the public key bytes.
func (k *Ed25519PubKey) Raw() ([]byte, error) {
	buf := make([]byte, len(k.pubKey))
	copy(buf, k.pubKey)
	return buf, nil
}

// Equals compares two ed25519 public keys.
func (k *Ed25519PubKey) Equals(o Key) bool {
	ek, ok := o.(*Ed25519PubKey)
	if !ok {
		return KeyEquals(k, o)
	}
	return bytes.Equal(k.pubKey, ek.pubKey)
}

// Verify checks a signature against the input data.
func (k *Ed25519PubKey) Verify(data []byte, sig []byte) (bool, error) {
	return ed25519.Verify(k.pubKey, data, sig), nil
}

// Address returns the versioned string representation of the key.
func (k *Ed25519PubKey) Address() string {
	res, _ := strkey.Encode(strkey.AccountAddressVersionByte, k.pubKey)
	return res
}

// PeerId returns the string representation for a peer id.
func (k *Ed25519PubKey) PeerId() (string, error) {
	lk, err := k.LibP2P()
	if err != nil {
		return "", err
	}
	id, err := peer.IDFromPublicKey(lk)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// LibP2P returns the libp2p model of this key.
func (k *Ed25519PubKey) LibP2P() (libp2pcrypto.PubKey, error) {
	return libp2pcrypto.UnmarshalEd25519PublicKey(k.pubKey)
}

// UnmarshalEd25519PrivateKey returns a keypair from input bytes.
func UnmarshalEd25519PrivateKey(data []byte) (PrivKey, error) {
	return NewEd25519Keypair(data)
}

// UnmarshalEd25519PublicKey returns a public key from input bytes.
// Unlike the keypair path it also checks that the bytes decode to a point
// on the curve, so external material is rejected before any verify call.
func UnmarshalEd25519PublicKey(data []byte) (PubKey, error) {
	if len(data) != Ed25519PubKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKeyLength, Ed25519PubKeySize, len(data))
	}
	if _, err := new(edwards25519.Point).SetBytes(data); err != nil {
		return nil, fmt.Errorf("%w: not a valid curve point", ErrInvalidEncoding)
	}
	pub := make([]byte, Ed25519PubKeySize)
	copy(pub, data)
	return &Ed25519PubKey{pubKey: pub}, nil
}
