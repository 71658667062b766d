package crypto

import (
	"math"
	"unicode"
)

// Strength is a coarse password strength classification.
type Strength string

const (
	Weak     Strength = "weak"
	Moderate Strength = "moderate"
	Strong   Strength = "strong"
)

const (
	// minStrongLength defines the minimum number of characters for a strong password.
	minStrongLength = 12
)

// Classify grades password by length and the character classes it mixes.
func Classify(password []byte) Strength {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range string(password) {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	classes := 0
	for _, ok := range []bool{hasUpper, hasLower, hasDigit, hasSymbol} {
		if ok {
			classes++
		}
	}

	switch {
	case len(password) >= minStrongLength && classes == 4:
		return Strong
	case len(password) >= 8 && classes >= 3:
		return Moderate
	default:
		return Weak
	}
}

// EntropyBits estimates the entropy of a uniformly random string of length n
// drawn from an alphabet of size pool.
func EntropyBits(n, pool int) float64 {
	if n <= 0 || pool <= 1 {
		return 0
	}
	return float64(n) * math.Log2(float64(pool))
}
