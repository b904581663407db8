// Package pwhash hashes local account passwords with Argon2id. This is
// intentionally a separate code path from the legacy owner ID derivation:
// that one is a fixed compatibility artifact, this one is the actual
// credential protection and can evolve (old hashes keep verifying because
// the encoded form carries its own parameters).
package pwhash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var ErrEmptyPassword = errors.New("password must not be empty")

const (
	saltLength = 16
	keyLength  = 32
)

var (
	memory      uint32 = 64 * 1024
	iterations  uint32 = 4
	parallelism uint8  = 1
)

// InitArgonParams overrides the default cost parameters, typically from the
// service config at startup.
func InitArgonParams(argonMemory uint32, argonIterations uint32, argonParallelism uint8) {
	if argonMemory > 0 {
		memory = argonMemory
	}
	if argonIterations > 0 {
		iterations = argonIterations
	}
	if argonParallelism > 0 {
		parallelism = argonParallelism
	}
}

// HashPassword returns a self-describing encoded hash with a fresh random
// salt. Length policy is enforced by callers, not here.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, keyLength)

	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)

	encodedHash := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, memory, iterations, parallelism, b64Salt, b64Hash)
	return encodedHash, nil
}

// ComparePasswordWithHash checks a password against a stored encoded hash.
// A malformed or truncated stored hash compares as a mismatch instead of an
// error, so corrupted records behave like a wrong password.
func ComparePasswordWithHash(encodedHash string, password string) (bool, error) {
	p, salt, hash, err := decodeHash(encodedHash)
	if err != nil {
		return false, nil
	}

	otherHash := argon2.IDKey([]byte(password), salt, p.iterations, p.memory, p.parallelism, uint32(len(hash)))

	return subtle.ConstantTimeCompare(hash, otherHash) == 1, nil
}

type argonParams struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
}

func decodeHash(encodedHash string) (p argonParams, salt []byte, hash []byte, err error) {
	vals := strings.Split(encodedHash, "$")
	if len(vals) != 6 || vals[1] != "argon2id" {
		err = errors.New("invalid encoded hash format")
		return
	}

	var version int
	if _, err = fmt.Sscanf(vals[2], "v=%d", &version); err != nil {
		return
	}
	if version != argon2.Version {
		err = errors.New("incompatible argon2 version")
		return
	}

	if _, err = fmt.Sscanf(vals[3], "m=%d,t=%d,p=%d", &p.memory, &p.iterations, &p.parallelism); err != nil {
		return
	}

	salt, err = base64.RawStdEncoding.Strict().DecodeString(vals[4])
	if err != nil {
		return
	}

	hash, err = base64.RawStdEncoding.Strict().DecodeString(vals[5])
	if err != nil {
		return
	}
	if len(salt) == 0 || len(hash) == 0 {
		err = errors.New("invalid encoded hash format")
	}
	return
}
