package crypto

import (
	"encoding/base64"
	"fmt"
)

// EncodeKeyToString returns the base64 form of the raw key bytes.
// For private keys the intermediate copy is scrubbed before returning.
func EncodeKeyToString[T Key](key T) (str string, err error) {
	raw, err := key.Raw()
	if err != nil {
		return
	}
	str = EncodeBytesToString(raw)
	ZeroBytes(raw)
	return
}

func EncodeBytesToString(bytes []byte) string {
	return base64.StdEncoding.EncodeToString(bytes)
}

// DecodeKeyFromString decodes the base64 string and builds a key with the
// given constructor. The decoded temporary is scrubbed on all paths.
func DecodeKeyFromString[T Key](str string, construct func([]byte) (T, error), def T) (T, error) {
	dec, err := DecodeBytesFromString(str)
	if err != nil {
		return def, err
	}
	res, err := construct(dec)
	ZeroBytes(dec)
	if err != nil {
		return def, err
	}
	return res, nil
}

func DecodeBytesFromString(str string) ([]byte, error) {
	dec, err := base64.StdEncoding.DecodeString(str)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return dec, nil
}
