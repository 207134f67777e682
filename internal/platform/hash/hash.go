// Package hash provides one-way salted hashing for credentials. Passwords
// are hashed with bcrypt directly; refresh tokens are sha256-digested first
// because bcrypt rejects inputs longer than 72 bytes and a signed JWT always
// is.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt cost used when none is configured.
const DefaultCost = 10

// DummyHash is a bcrypt hash of an arbitrary string. Callers compare against
// it when no stored hash exists so that lookup misses take as long as
// password mismatches.
const DummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Hasher hashes and verifies secrets with a fixed bcrypt cost.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the given bcrypt cost. Non-positive costs
// fall back to DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost <= 0 {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt hash of secret.
func (h *Hasher) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether secret matches the stored bcrypt hash. It never
// returns an error detail; any mismatch or malformed hash is false.
func (h *Hasher) Verify(secret, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(secret)) == nil
}

// HashToken hashes a refresh token for storage. The token is digested before
// bcrypt so its length never exceeds bcrypt's input limit.
func (h *Hasher) HashToken(token string) (string, error) {
	return h.Hash(digest(token))
}

// VerifyToken reports whether token matches a hash produced by HashToken.
func (h *Hasher) VerifyToken(token, hashed string) bool {
	return h.Verify(digest(token), hashed)
}

func digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
