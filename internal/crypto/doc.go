// Package crypto exposes the small set of primitives toolbox modules need.
//
// Contents
//
//   - Random secrets from character classes (Generate)
//   - Argon2id password hashing and verification (HashPassword, VerifyPassword)
//   - A coarse strength classification for passwords (Classify)
//   - Short fingerprints for display/logging (Fingerprint)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// All randomness comes from crypto/rand. Callers should treat returned
// secrets as sensitive and rely on Wipe when practical.
package crypto
