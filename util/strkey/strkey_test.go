package strkey

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	payload := make([]byte, 32)
	_, err := rand.Read(payload)
	require.NoError(t, err)

	str, err := Encode(AccountAddressVersionByte, payload)
	require.NoError(t, err)
	res, err := Decode(AccountAddressVersionByte, str)
	require.NoError(t, err)
	assert.Equal(t, payload, res)
}

func TestDecode_WrongVersion(t *testing.T) {
	str, err := Encode(AccountAddressVersionByte, make([]byte, 32))
	require.NoError(t, err)
	_, err = Decode(NodeAddressVersionByte, str)
	require.ErrorIs(t, err, ErrInvalidVersionByte)
}

func TestDecode_CorruptedChecksum(t *testing.T) {
	payload := make([]byte, 32)
	payload[0] = 42
	str, err := Encode(AccountAddressVersionByte, payload)
	require.NoError(t, err)

	raw := []byte(str)
	// flip a payload character without touching version or checksum chars
	if raw[4] == 'x' {
		raw[4] = 'y'
	} else {
		raw[4] = 'x'
	}
	_, err = Decode(AccountAddressVersionByte, string(raw))
	require.Error(t, err)
}

func TestDecode_NotBase58(t *testing.T) {
	_, err := Decode(AccountAddressVersionByte, "0OIl")
	require.Error(t, err)
}
