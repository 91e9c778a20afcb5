package common

// WipeByteArray overwrites buf with zeros. Used to scrub passwords read
// from the terminal once they have been sent to the backend.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
