package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt cost parameters. Changing them invalidates stored records, so they
// are fixed rather than configurable.
const (
	scryptN   = 32768
	scryptR   = 8
	scryptP   = 1
	saltLen   = 16
	derivedKL = 64
)

// Hasher derives and verifies password records.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, record string) bool
}

// ScryptHasher stores passwords as "{derivedKeyHex}.{saltHex}" with a fresh
// random salt per record.
type ScryptHasher struct{}

func (ScryptHasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	dk, err := scrypt.Key([]byte(plaintext), salt, scryptN, scryptR, scryptP, derivedKL)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}

	return hex.EncodeToString(dk) + "." + hex.EncodeToString(salt), nil
}

// Verify recomputes the derived key with the stored salt and compares in
// constant time. Malformed records verify false rather than erroring.
func (ScryptHasher) Verify(plaintext, record string) bool {
	dkHex, saltHex, ok := strings.Cut(record, ".")
	if !ok {
		return false
	}

	stored, err := hex.DecodeString(dkHex)
	if err != nil {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	if len(stored) != derivedKL {
		return false
	}

	dk, err := scrypt.Key([]byte(plaintext), salt, scryptN, scryptR, scryptP, derivedKL)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(stored, dk) == 1
}
