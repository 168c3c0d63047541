package block

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/tenderlite/tender-lite/util/hash"
)

// ErrMalformedTotal means the total field of a parts header is not a
// non-negative decimal integer.
var ErrMalformedTotal = errors.New("malformed parts total")

// PartsHeader identifies the set of parts a block was split into: how many
// there are and the hash of the set. Immutable once constructed.
type PartsHeader struct {
	Total uint64
	Hash  hash.Hash
}

func NewPartsHeader(total uint64, h hash.Hash) PartsHeader {
	return PartsHeader{Total: total, Hash: h}
}

// Equals compares headers structurally.
func (p PartsHeader) Equals(o PartsHeader) bool {
	return p.Total == o.Total && p.Hash.Equal(o.Hash)
}

// Compare orders headers by (total, hash), so sorted collections of headers
// are deterministic.
func (p PartsHeader) Compare(o PartsHeader) int {
	if p.Total != o.Total {
		if p.Total < o.Total {
			return -1
		}
		return 1
	}
	return p.Hash.Compare(o.Hash)
}

// wireHeader carries total as a decimal string: json numbers lose precision
// above 2^53, a uint64 count must survive exactly.
type wireHeader struct {
	Total string    `json:"total"`
	Hash  hash.Hash `json:"hash"`
}

func (p PartsHeader) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireHeader{
		Total: strconv.FormatUint(p.Total, 10),
		Hash:  p.Hash,
	})
}

func (p *PartsHeader) UnmarshalJSON(data []byte) error {
	var w wireHeader
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	total, err := strconv.ParseUint(w.Total, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrMalformedTotal, w.Total)
	}
	p.Total = total
	p.Hash = w.Hash
	return nil
}
