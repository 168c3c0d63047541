package hash

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Size of a content hash in bytes.
const Size = 32

var ErrInvalidHashSize = errors.New("invalid hash size")

// Hash is a fixed-size content hash value. It only carries bytes produced
// elsewhere, the hashing function is up to the producer. The zero value is
// the empty hash.
type Hash []byte

// FromBytes copies b into a new hash, rejecting any size other than Size.
func FromBytes(b []byte) (Hash, error) {
	if len(b) != Size {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidHashSize, Size, len(b))
	}
	h := make(Hash, Size)
	copy(h, b)
	return h, nil
}

// FromString parses the canonical upper-case hex form.
func FromString(s string) (Hash, error) {
	if s == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return FromBytes(b)
}

func (h Hash) Equal(o Hash) bool {
	return bytes.Equal(h, o)
}

// Compare orders hashes bytewise, the empty hash sorts first.
func (h Hash) Compare(o Hash) int {
	return bytes.Compare(h, o)
}

// String returns the canonical upper-case hex form.
func (h Hash) String() string {
	return strings.ToUpper(hex.EncodeToString(h))
}

func (h Hash) MarshalJSON() ([]byte, error) {
	return []byte(`"` + h.String() + `"`), nil
}

func (h *Hash) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("hash must be a json string")
	}
	res, err := FromString(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*h = res
	return nil
}
