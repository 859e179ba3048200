package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// TokenSize384 is 384 bits of entropy before encoding (96 chars hex). This
// is the size used for session refresh tokens.
const TokenSize384 = 48

// GenerateToken creates a cryptographically secure random token of the
// specified byte length, returned as a lowercase hex string. The random
// source is crypto/rand; a math/rand token would be guessable and must
// never be substituted here.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// FingerprintToken returns a deterministic SHA-256 fingerprint of a token,
// hex-encoded (64 chars). Only fingerprints are persisted, never raw tokens;
// determinism makes the fingerprint usable as an equality-searchable
// database key while the digest stays non-invertible.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
