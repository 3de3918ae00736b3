// utils/random.go
package utils

import "crypto/rand"

const randomCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomString returns a random uppercase alphanumeric string of
// length n, used as the suffix of human-readable bill numbers.
func GenerateRandomString(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic("failed to read random bytes")
	}
	for i := range buf {
		buf[i] = randomCharset[int(buf[i])%len(randomCharset)]
	}
	return string(buf)
}
