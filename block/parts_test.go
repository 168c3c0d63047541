package block

import (
	"encoding/json"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenderlite/tender-lite/util/hash"
)

func testHash(t *testing.T, b byte) hash.Hash {
	t.Helper()
	src := make([]byte, hash.Size)
	src[0] = b
	h, err := hash.FromBytes(src)
	require.NoError(t, err)
	return h
}

func TestPartsHeader_JsonRoundTrip(t *testing.T) {
	header := NewPartsHeader(math.MaxUint64, testHash(t, 0x7f))

	data, err := json.Marshal(header)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"total":"18446744073709551615"`)

	var decoded PartsHeader
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, header.Equals(decoded))
}

func TestPartsHeader_UnmarshalMalformedTotal(t *testing.T) {
	for _, total := range []string{"abc", "-1", "", "1.5", "18446744073709551616"} {
		var decoded PartsHeader
		err := json.Unmarshal([]byte(`{"total":"`+total+`","hash":""}`), &decoded)
		require.ErrorIs(t, err, ErrMalformedTotal, "total=%q", total)
	}
}

func TestPartsHeader_Compare(t *testing.T) {
	low := NewPartsHeader(1, testHash(t, 0xff))
	high := NewPartsHeader(2, testHash(t, 0x00))
	assert.Equal(t, -1, low.Compare(high), "total dominates hash bytes")
	assert.Equal(t, 1, high.Compare(low))

	a := NewPartsHeader(2, testHash(t, 0x01))
	b := NewPartsHeader(2, testHash(t, 0x02))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 0, a.Compare(a))
}

func TestPartsHeader_SortDeterministic(t *testing.T) {
	headers := []PartsHeader{
		NewPartsHeader(3, testHash(t, 0x01)),
		NewPartsHeader(1, testHash(t, 0xff)),
		NewPartsHeader(1, testHash(t, 0x01)),
		NewPartsHeader(2, testHash(t, 0x10)),
	}
	sort.Slice(headers, func(i, j int) bool {
		return headers[i].Compare(headers[j]) < 0
	})
	assert.Equal(t, uint64(1), headers[0].Total)
	assert.Equal(t, byte(0x01), headers[0].Hash[0])
	assert.Equal(t, uint64(1), headers[1].Total)
	assert.Equal(t, byte(0xff), headers[1].Hash[0])
	assert.Equal(t, uint64(3), headers[3].Total)
}

func TestPartsHeader_Equals(t *testing.T) {
	a := NewPartsHeader(5, testHash(t, 0x0a))
	b := NewPartsHeader(5, testHash(t, 0x0a))
	c := NewPartsHeader(5, testHash(t, 0x0b))
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(NewPartsHeader(6, testHash(t, 0x0a))))
}
