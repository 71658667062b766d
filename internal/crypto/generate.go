package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// Character classes available to Generate.
const (
	Lower   = "abcdefghijklmnopqrstuvwxyz"
	Upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits  = "0123456789"
	Symbols = "!@#$%^&*()-_=+[]{};:,.<>?/"
)

var (
	ErrNoClasses = errors.New("at least one character class is required")
	ErrTooShort  = errors.New("length is shorter than the number of required classes")
)

// Generate returns a random string of length n drawn from classes. Every
// class contributes at least one character.
func Generate(n int, classes ...string) ([]byte, error) {
	var pool []byte
	for _, c := range classes {
		pool = append(pool, c...)
	}
	if len(pool) == 0 {
		return nil, ErrNoClasses
	}
	if n < len(classes) {
		return nil, ErrTooShort
	}

	out := make([]byte, n)
	for i, c := range classes {
		ch, err := pick(c)
		if err != nil {
			return nil, err
		}
		out[i] = ch
	}
	for i := len(classes); i < n; i++ {
		ch, err := pick(string(pool))
		if err != nil {
			return nil, err
		}
		out[i] = ch
	}

	// Fisher-Yates so the guaranteed characters are not always in front.
	for i := n - 1; i > 0; i-- {
		j, err := Intn(i + 1)
		if err != nil {
			return nil, err
		}
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// Intn returns a uniform random int in [0, n).
func Intn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

func pick(set string) (byte, error) {
	i, err := Intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}
