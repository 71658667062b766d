package crypto

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

const SaltBytes = 16

// Argon2Params are the argon2id tunables recorded alongside every hash.
type Argon2Params struct {
	Memory  uint32 // KiB
	Time    uint32
	Threads uint8
	KeyLen  uint32
}

// DefaultArgon2Params follows the RFC 9106 second recommended option.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{Memory: 64 * 1024, Time: 3, Threads: 4, KeyLen: 32}
}

// HashPassword derives an argon2id hash of password under a fresh salt and
// returns it in PHC string form.
func HashPassword(password []byte, p Argon2Params) (string, error) {
	salt := make([]byte, SaltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := argon2.IDKey(password, salt, p.Time, p.Memory, p.Threads, p.KeyLen)
	defer Wipe(key)
	return encodePHC(p, salt, key), nil
}

// VerifyPassword reports whether password matches a hash from HashPassword.
func VerifyPassword(password []byte, encoded string) (bool, error) {
	p, salt, want, err := decodePHC(encoded)
	if err != nil {
		return false, err
	}
	got := argon2.IDKey(password, salt, p.Time, p.Memory, p.Threads, p.KeyLen)
	defer Wipe(got)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
