package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeKeyString(t *testing.T) {
	keypair, priv := newTestKeypair(t)
	str, err := EncodeKeyToString(keypair)
	require.NoError(t, err)

	decoded, err := DecodeKeyFromString(str, NewEd25519Keypair, nil)
	require.NoError(t, err)
	raw, err := decoded.Raw()
	require.NoError(t, err)
	assert.Equal(t, []byte(priv), raw)
}

func TestDecodeKeyFromString_InvalidEncoding(t *testing.T) {
	_, err := DecodeKeyFromString("%%%", NewEd25519Keypair, nil)
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestDecodeKeyFromString_ScrubsTemporary(t *testing.T) {
	keypair, _ := newTestKeypair(t)
	str, err := EncodeKeyToString(keypair)
	require.NoError(t, err)

	var captured []byte
	construct := func(b []byte) (*Ed25519Keypair, error) {
		captured = b
		return NewEd25519Keypair(b)
	}
	_, err = DecodeKeyFromString(str, construct, nil)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, Ed25519KeypairSize), captured)
}

func TestDecodeKeyFromString_ScrubsTemporaryOnFailure(t *testing.T) {
	str := EncodeBytesToString(make([]byte, 16))

	var captured []byte
	construct := func(b []byte) (*Ed25519Keypair, error) {
		captured = b
		return NewEd25519Keypair(b)
	}
	_, err := DecodeKeyFromString(str, construct, nil)
	require.ErrorIs(t, err, ErrInvalidKeyLength)
	assert.Equal(t, make([]byte, 16), captured)
}
