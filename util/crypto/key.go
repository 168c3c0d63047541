package crypto

import (
	"crypto/subtle"

	libp2pcrypto "github.com/libp2p/go-libp2p/core/crypto"
)

// Key is an abstract interface for all types of keys
type Key interface {
	// Equals returns if the keys are equal
	Equals(Key) bool

	// Raw returns a copy of the raw key bytes
	Raw() ([]byte, error)
}

// PrivKey is an interface for keys that should be used for signing
type PrivKey interface {
	Key

	// Sign signs the raw bytes and returns the signature
	Sign([]byte) ([]byte, error)
	// GetPublic returns the associated public key
	GetPublic() PubKey
	// Seed returns a copy of the 32-byte seed material, the caller owns scrubbing it
	Seed() []byte
	// Erase overwrites the key material with zero bytes,
	// the key must not be used afterwards
	Erase()
	// LibP2P returns libp2p model
	LibP2P() (libp2pcrypto.PrivKey, error)
}

// PubKey is the public key used to verify signatures
type PubKey interface {
	Key

	// Verify verifies the signed message and the signature
	Verify(data []byte, sig []byte) (bool, error)
	// Address returns the versioned string representation of the key
	Address() string
	// PeerId returns string representation for peer id
	PeerId() (string, error)
	// LibP2P returns libp2p model
	LibP2P() (libp2pcrypto.PubKey, error)
}

func KeyEquals(k1, k2 Key) bool {
	a, err := k1.Raw()
	if err != nil {
		return false
	}
	b, err := k2.Raw()
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
