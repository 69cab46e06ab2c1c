package crypto

import (
	"encoding/hex"

	"keyring/internal/domain"
)

// Fingerprint returns a short hex fingerprint of a public key.
//
// It is the first 10 bytes (20 hex chars) of the key's node id.
func Fingerprint(pub domain.VerifyingKey) string {
	id := NodeIDFromPublic(pub)
	return hex.EncodeToString(id[:10])
}
