package crypto

import (
	"encoding/hex"
	"fmt"
	"strings"

	"filippo.io/edwards25519"

	"keyring/internal/domain"
)

// ParseSigningKey copies b into a SigningKey. It does not look at the bytes
// beyond their length.
func ParseSigningKey(b []byte) (domain.SigningKey, error) {
	var k domain.SigningKey
	if len(b) != domain.SigningKeySize {
		return k, fmt.Errorf("%w: signing key must be %d bytes, got %d",
			ErrInvalidKeyLength, domain.SigningKeySize, len(b))
	}
	copy(k[:], b)
	return k, nil
}

// ParseVerifyingKey decodes b as an Ed25519 public key, rejecting encodings
// that are not points on the curve.
func ParseVerifyingKey(b []byte) (domain.VerifyingKey, error) {
	var k domain.VerifyingKey
	if len(b) != domain.VerifyingKeySize {
		return k, fmt.Errorf("%w: verifying key must be %d bytes, got %d",
			ErrInvalidKeyLength, domain.VerifyingKeySize, len(b))
	}
	if _, err := new(edwards25519.Point).SetBytes(b); err != nil {
		return k, ErrInvalidPublicKey
	}
	copy(k[:], b)
	return k, nil
}

// ParseSignature copies b into a Signature.
func ParseSignature(b []byte) (domain.Signature, error) {
	var s domain.Signature
	if len(b) != domain.SignatureSize {
		return s, fmt.Errorf("%w: want %d bytes, got %d",
			ErrInvalidSignatureLength, domain.SignatureSize, len(b))
	}
	copy(s[:], b)
	return s, nil
}

// ParseSigningKeyHex decodes a hex encoded signing key.
func ParseSigningKeyHex(s string) (domain.SigningKey, error) {
	b, err := DecodeHex(s)
	if err != nil {
		return domain.SigningKey{}, fmt.Errorf("signing key: %w", err)
	}
	return ParseSigningKey(b)
}

// ParseVerifyingKeyHex decodes a hex encoded verifying key.
func ParseVerifyingKeyHex(s string) (domain.VerifyingKey, error) {
	b, err := DecodeHex(s)
	if err != nil {
		return domain.VerifyingKey{}, fmt.Errorf("verifying key: %w", err)
	}
	return ParseVerifyingKey(b)
}

// ParseSignatureHex decodes a hex encoded signature.
func ParseSignatureHex(s string) (domain.Signature, error) {
	b, err := DecodeHex(s)
	if err != nil {
		return domain.Signature{}, fmt.Errorf("signature: %w", err)
	}
	return ParseSignature(b)
}

// DecodeHex decodes s as hex after trimming surrounding whitespace. Partial
// output is never returned alongside an error.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return b, nil
}
