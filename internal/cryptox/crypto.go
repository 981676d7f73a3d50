// Package cryptox hashes and verifies account passwords with argon2id.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	saltLen    = 16
	keyLen     = 32
	iterations = 1
	memory     = 64 * 1024
	threads    = 4
)

var errMalformedHash = errors.New("malformed password hash")

func derive(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, iterations, memory, threads, keyLen)
}

// HashPassword returns an encoded "argon2id$<salt>$<key>" string.
func HashPassword(password []byte) string {
	salt := common.GenerateRandByteArray(saltLen)
	key := derive(password, salt)
	return fmt.Sprintf("argon2id$%s$%s",
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key))
}

// VerifyPassword reports whether password matches an encoded hash produced
// by HashPassword. Comparison is constant time.
func VerifyPassword(encoded string, password []byte) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != "argon2id" {
		return false, errMalformedHash
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false, errMalformedHash
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil {
		return false, errMalformedHash
	}

	got := derive(password, salt)
	defer common.WipeByteArray(got)

	return subtle.ConstantTimeCompare(want, got) == 1, nil
}
