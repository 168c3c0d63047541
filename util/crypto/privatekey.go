package crypto

import (
	"encoding/json"
	"fmt"
)

// Wire tags of the supported key schemes.
const (
	Ed25519PrivKeyTag = "tendermint/PrivKeyEd25519"
	Ed25519PubKeyTag  = "tendermint/PubKeyEd25519"
)

// PrivateKey is a private key as parsed from configuration files.
// It is a closed tagged choice over the supported schemes: exactly one
// variant is set, adding a scheme means extending the switches here.
type PrivateKey struct {
	ed25519 *Ed25519Keypair
}

// taggedKey is the wire form of a key: the type tag selects the scheme,
// the value carries the base64 of the raw bytes.
type taggedKey struct {
	Type  string `json:"type"`
	Value []byte `json:"value"`
}

func NewPrivateKeyEd25519(keypair *Ed25519Keypair) PrivateKey {
	return PrivateKey{ed25519: keypair}
}

// PublicKey returns the public key derived from the active variant.
func (p PrivateKey) PublicKey() PublicKey {
	switch {
	case p.ed25519 != nil:
		return PublicKey{ed25519: p.ed25519.GetPublic().(*Ed25519PubKey)}
	}
	panic("private key has no active scheme")
}

// Ed25519Keypair borrows the underlying keypair if the active scheme is
// ed25519, otherwise nil. The secret is never copied out.
func (p PrivateKey) Ed25519Keypair() *Ed25519Keypair {
	return p.ed25519
}

// Sign signs the message with the active variant.
func (p PrivateKey) Sign(msg []byte) ([]byte, error) {
	switch {
	case p.ed25519 != nil:
		return p.ed25519.Sign(msg)
	}
	return nil, ErrUnknownScheme
}

// Erase scrubs the key material of the active variant.
func (p PrivateKey) Erase() {
	if p.ed25519 != nil {
		p.ed25519.Erase()
	}
}

func (p PrivateKey) MarshalJSON() ([]byte, error) {
	switch {
	case p.ed25519 != nil:
		raw, err := p.ed25519.Raw()
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(taggedKey{Type: Ed25519PrivKeyTag, Value: raw})
		ZeroBytes(raw)
		return data, err
	}
	return nil, ErrUnknownScheme
}

func (p *PrivateKey) UnmarshalJSON(data []byte) error {
	var tk taggedKey
	if err := json.Unmarshal(data, &tk); err != nil {
		ZeroBytes(tk.Value)
		return fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	switch tk.Type {
	case Ed25519PrivKeyTag:
		keypair, err := NewEd25519Keypair(tk.Value)
		ZeroBytes(tk.Value)
		if err != nil {
			return err
		}
		p.ed25519 = keypair
		return nil
	default:
		ZeroBytes(tk.Value)
		return fmt.Errorf("%w %q", ErrUnknownScheme, tk.Type)
	}
}
