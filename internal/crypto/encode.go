package crypto

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var errBadHash = errors.New("malformed password hash")

// b64 returns unpadded standard base64, as used in PHC strings.
func b64(b []byte) string { return base64.RawStdEncoding.EncodeToString(b) }

// encodePHC renders an argon2id hash in the PHC string format.
func encodePHC(p Argon2Params, salt, key []byte) string {
	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		p.Memory, p.Time, p.Threads, b64(salt), b64(key))
}

// decodePHC parses a string produced by encodePHC.
func decodePHC(s string) (p Argon2Params, salt, key []byte, err error) {
	parts := strings.Split(s, "$")
	if len(parts) != 6 || parts[1] != "argon2id" || parts[2] != "v=19" {
		return p, nil, nil, errBadHash
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return p, nil, nil, fmt.Errorf("%w: %v", errBadHash, err)
	}
	if salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return p, nil, nil, fmt.Errorf("%w: %v", errBadHash, err)
	}
	if key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return p, nil, nil, fmt.Errorf("%w: %v", errBadHash, err)
	}
	p.KeyLen = uint32(len(key))
	return p, salt, key, nil
}
