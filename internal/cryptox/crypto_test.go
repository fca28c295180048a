package cryptox

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	key2 := DeriveKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}
	if len(key1) != argonKeyLen {
		t.Errorf("expected %d bytes, got %d", argonKeyLen, len(key1))
	}
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	password := []byte("secret-password")

	key1 := DeriveKey(password, []byte("salt-1"), argonTime, argonMemory, argonThreads, argonKeyLen)
	key2 := DeriveKey(password, []byte("salt-2"), argonTime, argonMemory, argonThreads, argonKeyLen)

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestHashPassword_FormatAndVerify(t *testing.T) {
	stored := HashPassword([]byte("pw1"))

	require.True(t, IsHashed(stored))
	require.True(t, strings.HasPrefix(stored, "$argon2id$v=19$m=65536,t=1,p=4$"))
	assert.Len(t, strings.Split(stored, "$"), 6)

	assert.True(t, VerifyPassword(stored, []byte("pw1")))
	assert.False(t, VerifyPassword(stored, []byte("pw2")))
	assert.False(t, VerifyPassword(stored, nil))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	a := HashPassword([]byte("same"))
	b := HashPassword([]byte("same"))
	assert.NotEqual(t, a, b)
	assert.True(t, VerifyPassword(a, []byte("same")))
	assert.True(t, VerifyPassword(b, []byte("same")))
}

func TestVerifyPassword_LegacyPlaintext(t *testing.T) {
	assert.True(t, VerifyPassword("pw1", []byte("pw1")))
	assert.False(t, VerifyPassword("pw1", []byte("PW1")))
	assert.False(t, VerifyPassword("pw1", []byte("pw10")))
	assert.False(t, VerifyPassword("", []byte("x")))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	cases := []string{
		"$argon2id$",
		"$argon2id$v=19$m=65536,t=1,p=4$salt",
		"$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$a2V5",
		"$argon2id$v=19$m=x,t=1,p=4$c2FsdA$a2V5",
		"$argon2id$v=19$m=65536,t=1,p=4$!!!$a2V5",
		"$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$",
		"$argon2id$v=19$m=65536,t=1,p=0$c2FsdHNhbHQ$a2V5a2V5",
		"$argon2id$v=19$m=65536,t=0,p=4$c2FsdHNhbHQ$a2V5a2V5",
		"$argon2id$v=19$m=65536,t=1000000,p=4$c2FsdHNhbHQ$a2V5a2V5",
		"$argon2id$v=19$m=4294967295,t=1,p=4$c2FsdHNhbHQ$a2V5a2V5",
		"$argon2id$v=19$m=16,t=1,p=4$c2FsdHNhbHQ$a2V5a2V5",
		"$argon2id$v=19$m=65536,t=1,p=4$c2FsdHNhbHQ$" + strings.Repeat("A", 100),
	}
	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			require.NotPanics(t, func() {
				assert.False(t, VerifyPassword(c, []byte("anything")))
			})
		})
	}
}
