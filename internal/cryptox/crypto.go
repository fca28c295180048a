// Package cryptox derives and verifies password credentials for the user
// registry. Credentials are stored as argon2id PHC strings:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// with salt and key in unpadded standard base64.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/travelbook/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16

	// Upper bounds accepted from stored credentials.
	maxTime   = 16
	maxMemory = argonMemory
	maxKeyLen = 64

	phcPrefix = "$argon2id$"
)

var ErrMalformedHash = errors.New("malformed password hash")

// DeriveKey stretches password with salt using the given argon2id parameters.
func DeriveKey(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) []byte {
	return argon2.IDKey(password, salt, time, memory, threads, keyLen)
}

// HashPassword returns a PHC-encoded argon2id credential for password using a
// fresh random salt.
func HashPassword(password []byte) string {
	salt := common.GenerateRandByteArray(saltLen)
	key := DeriveKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		phcPrefix, argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key))
}

// IsHashed reports whether stored looks like a credential produced by HashPassword.
func IsHashed(stored string) bool {
	return strings.HasPrefix(stored, phcPrefix)
}

type params struct {
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	key     []byte
}

func parsePHC(stored string) (*params, error) {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(stored, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, ErrMalformedHash
	}

	p := &params{}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return nil, ErrMalformedHash
	}
	if p.time < 1 || p.time > maxTime || p.threads < 1 ||
		p.memory < 8*uint32(p.threads) || p.memory > maxMemory {
		return nil, ErrMalformedHash
	}

	var err error
	if p.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return nil, ErrMalformedHash
	}
	if p.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil || len(p.key) == 0 || len(p.key) > maxKeyLen {
		return nil, ErrMalformedHash
	}
	return p, nil
}

// VerifyPassword checks password against a stored credential. Hashed
// credentials are re-derived with their own parameters; anything else is a
// legacy plaintext record and is compared as-is. Both comparisons are
// constant-time.
func VerifyPassword(stored string, password []byte) bool {
	if !IsHashed(stored) {
		return subtle.ConstantTimeCompare([]byte(stored), password) == 1
	}

	p, err := parsePHC(stored)
	if err != nil {
		return false
	}
	candidate := DeriveKey(password, p.salt, p.time, p.memory, p.threads, uint32(len(p.key)))
	return subtle.ConstantTimeCompare(candidate, p.key) == 1
}
