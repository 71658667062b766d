package store

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"toolbox/internal/crypto"
	"toolbox/internal/domain"
)

// sealedVersion is the newest sealed-file layout this package writes.
const sealedVersion = 2

// ErrWrongPassphrase is returned when the passphrase is incorrect or the
// sealed file has been modified.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted file")

// kdfParams are the scrypt cost parameters recorded next to the ciphertext
// so they can be raised without breaking older files.
type kdfParams struct {
	N int `json:"n"`
	R int `json:"r"`
	P int `json:"p"`
}

var defaultKDF = kdfParams{N: 1 << 15, R: 8, P: 1}

// sealedFile is the on-disk layout of a sealed JSON document.
type sealedFile struct {
	Version int       `json:"version"`
	KDF     kdfParams `json:"kdf"`
	Salt    []byte    `json:"salt"`
	Nonce   []byte    `json:"nonce"`
	Payload []byte    `json:"payload"`
}

// aead derives the XChaCha20-Poly1305 key for passphrase and salt.
func (k kdfParams) aead(passphrase string, salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(passphrase), salt, k.N, k.R, k.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(key)
	return chacha20poly1305.NewX(key)
}

// SealJSON encodes v, encrypts it under passphrase with a fresh salt and
// nonce, and atomically writes the result to path.
func SealJSON(path, passphrase string, v any) error {
	const op = "envelope.seal"
	plain, err := json.Marshal(v)
	if err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindMalformed, Path: path, Err: err}
	}
	defer crypto.Wipe(plain)

	sf := sealedFile{
		Version: sealedVersion,
		KDF:     defaultKDF,
		Salt:    make([]byte, 16),
		Nonce:   make([]byte, chacha20poly1305.NonceSizeX),
	}
	if _, err := rand.Read(sf.Salt); err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindIO, Path: path, Err: err}
	}
	if _, err := rand.Read(sf.Nonce); err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindIO, Path: path, Err: err}
	}
	a, err := sf.KDF.aead(passphrase, sf.Salt)
	if err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindIO, Path: path, Err: err}
	}
	sf.Payload = a.Seal(nil, sf.Nonce, plain, sf.Salt)

	if err := writeJSON(path, sf, false, 0o600); err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindIO, Path: path, Err: err}
	}
	return nil
}

// OpenJSON decrypts path into out. ok is false when the file does not exist.
// A wrong passphrase is reported as invalid input wrapping ErrWrongPassphrase.
func OpenJSON(path, passphrase string, out any) (ok bool, err error) {
	const op = "envelope.open"
	var sf sealedFile
	found, err := readJSON(path, &sf)
	if !found && err == nil {
		return false, nil
	}
	if err != nil {
		kind := domain.KindIO
		if found {
			kind = domain.KindMalformed
		}
		return found, &domain.OpError{Op: op, Kind: kind, Path: path, Err: err}
	}
	if sf.Version != sealedVersion || len(sf.Nonce) != chacha20poly1305.NonceSizeX {
		return true, &domain.OpError{Op: op, Kind: domain.KindMalformed, Path: path,
			Err: fmt.Errorf("unsupported sealed file version %d", sf.Version)}
	}

	a, err := sf.KDF.aead(passphrase, sf.Salt)
	if err != nil {
		return true, &domain.OpError{Op: op, Kind: domain.KindMalformed, Path: path, Err: err}
	}
	plain, err := a.Open(nil, sf.Nonce, sf.Payload, sf.Salt)
	if err != nil {
		return true, &domain.OpError{Op: op, Kind: domain.KindInvalidInput, Path: path, Err: ErrWrongPassphrase}
	}
	defer crypto.Wipe(plain)

	if err := json.Unmarshal(plain, out); err != nil {
		return true, &domain.OpError{Op: op, Kind: domain.KindMalformed, Path: path, Err: err}
	}
	return true, nil
}

// Exists reports whether path is present on disk.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
