// Package credentials implements the password hashing and one-time access
// code primitives used by the user directory.
//
// Digests are Argon2id over (password, salt), rendered as lowercase hex.
// The salt is generated once per user and reused for every later hash of
// that user, so changing a password does not change the salt.
package credentials

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"math/big"

	"golang.org/x/crypto/argon2"

	"github.com/dmitrijs2005/userdir/internal/common"
)

// Argon2id parameters.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// SaltSize is the length in bytes of a freshly generated salt.
const SaltSize = 16

const (
	accessCodeLen     = 6
	accessCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Hash derives a hex digest from password and salt. The same
// (password, salt) pair always yields the same digest.
func Hash(password string, salt []byte) string {
	sum := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(sum)
}

// Verify reports whether candidate hashes to digest under salt.
// The comparison is constant-time.
func Verify(candidate string, salt []byte, digest string) bool {
	sum := Hash(candidate, salt)
	return subtle.ConstantTimeCompare([]byte(sum), []byte(digest)) == 1
}

// GenerateSalt returns a fresh random salt.
func GenerateSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// GenerateAccessCode returns a random 6-character code drawn uniformly
// from [A-Za-z0-9]. The code doubles as the initial password of
// phone-registered accounts.
func GenerateAccessCode() (string, error) {
	max := big.NewInt(int64(len(accessCodeCharset)))
	code := make([]byte, accessCodeLen)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = accessCodeCharset[n.Int64()]
	}
	return string(code), nil
}
