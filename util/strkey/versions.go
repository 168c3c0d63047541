package strkey

const (
	AccountAddressVersionByte VersionByte = 0x5b // Base58-encodes to 'A...'
	NodeAddressVersionByte    VersionByte = 0x91 // Base58-encodes to 'N...'
)
