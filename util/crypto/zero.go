package crypto

// ZeroBytes overwrites b with zero bytes. Secret material must be passed
// through it before the backing memory is released or reused; every holder
// of a copy scrubs its own copy, never assuming another owner did.
func ZeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
