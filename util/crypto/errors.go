package crypto

import "errors"

var (
	// ErrInvalidEncoding means the textual form of a key could not be decoded
	ErrInvalidEncoding = errors.New("invalid key encoding")
	// ErrInvalidKeyLength means the decoded bytes are not the scheme's required size
	ErrInvalidKeyLength = errors.New("invalid key length")
	// ErrUnknownScheme means the tagged type name is not a supported key scheme
	ErrUnknownScheme = errors.New("unknown key scheme")
)
