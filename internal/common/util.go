package common

import "crypto/rand"

// GenerateRandByteArray returns size bytes read from the system CSPRNG.
// It panics if the random source fails, which on supported platforms
// only happens when the process environment is broken beyond recovery.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}
