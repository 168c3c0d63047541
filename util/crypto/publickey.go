package crypto

import (
	"encoding/json"
	"fmt"
)

// PublicKey is the tagged wire form counterpart of PrivateKey. It carries
// no secret material, so it has no scrub obligations.
type PublicKey struct {
	ed25519 *Ed25519PubKey
}

func NewPublicKeyEd25519(pubKey *Ed25519PubKey) PublicKey {
	return PublicKey{ed25519: pubKey}
}

// Key returns the active variant as a PubKey.
func (p PublicKey) Key() PubKey {
	switch {
	case p.ed25519 != nil:
		return p.ed25519
	}
	panic("public key has no active scheme")
}

// Verify verifies the signature with the active variant.
func (p PublicKey) Verify(data, sig []byte) (bool, error) {
	switch {
	case p.ed25519 != nil:
		return p.ed25519.Verify(data, sig)
	}
	return false, ErrUnknownScheme
}

func (p PublicKey) MarshalJSON() ([]byte, error) {
	switch {
	case p.ed25519 != nil:
		raw, err := p.ed25519.Raw()
		if err != nil {
			return nil, err
		}
		return json.Marshal(taggedKey{Type: Ed25519PubKeyTag, Value: raw})
	}
	return nil, ErrUnknownScheme
}

func (p *PublicKey) UnmarshalJSON(data []byte) error {
	var tk taggedKey
	if err := json.Unmarshal(data, &tk); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	switch tk.Type {
	case Ed25519PubKeyTag:
		pub, err := UnmarshalEd25519PublicKey(tk.Value)
		if err != nil {
			return err
		}
		p.ed25519 = pub.(*Ed25519PubKey)
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownScheme, tk.Type)
	}
}
