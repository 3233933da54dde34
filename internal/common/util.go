package common

// WipeByteArray overwrites buf with zeros so secrets do not linger in memory
// after use. Safe to call with nil.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
