package strkey

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// VersionByte prefixes a payload before base58 encoding, so every kind of
// encoded entity gets its own leading character family.
type VersionByte byte

var (
	ErrInvalidVersionByte = errors.New("invalid version byte")
	ErrInvalidChecksum    = errors.New("invalid checksum")
)

// Encode wraps the payload with the version byte and a crc16 checksum and
// returns the base58 form.
func Encode(version VersionByte, src []byte) (string, error) {
	raw := make([]byte, 0, len(src)+3)
	raw = append(raw, byte(version))
	raw = append(raw, src...)
	raw = append(raw, checksum(raw)...)
	return base58.Encode(raw), nil
}

// Decode checks the version byte and checksum of the base58 string and
// returns the payload.
func Decode(expected VersionByte, src string) ([]byte, error) {
	raw, err := base58.Decode(src)
	if err != nil {
		return nil, err
	}
	if len(raw) < 3 {
		return nil, fmt.Errorf("decoded string is too short: %d", len(raw))
	}
	if raw[0] != byte(expected) {
		return nil, fmt.Errorf("%w: expected %x, got %x", ErrInvalidVersionByte, byte(expected), raw[0])
	}
	payload := raw[1 : len(raw)-2]
	if !verifyChecksum(raw[:len(raw)-2], raw[len(raw)-2:]) {
		return nil, ErrInvalidChecksum
	}
	res := make([]byte, len(payload))
	copy(res, payload)
	return res, nil
}

// crc16 xmodem, poly 0x1021
func checksum(data []byte) []byte {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return []byte{byte(crc >> 8), byte(crc)}
}

func verifyChecksum(data, expected []byte) bool {
	sum := checksum(data)
	return sum[0] == expected[0] && sum[1] == expected[1]
}
