package crypto

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"elevhtn/internal/domain"
)

const fingerprintBytes = 10

// Fingerprint returns the short content digest of p.
func Fingerprint(p domain.Problem) (domain.Fingerprint, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("fingerprint %s: %w", p.Name, err)
	}
	return FingerprintBytes(data), nil
}

// FingerprintBytes digests an already encoded payload.
func FingerprintBytes(b []byte) domain.Fingerprint {
	sum := blake2b.Sum256(b)
	return domain.Fingerprint(hex.EncodeToString(sum[:fingerprintBytes]))
}
