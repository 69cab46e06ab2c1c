package crypto

import "errors"

var (
	// ErrInvalidKeyLength is returned when key material is not exactly 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")
	// ErrInvalidPublicKey is returned when 32 bytes do not encode a point on
	// the Ed25519 curve.
	ErrInvalidPublicKey = errors.New("invalid public key")
	// ErrInvalidSignatureLength is returned when a signature is not exactly 64 bytes.
	ErrInvalidSignatureLength = errors.New("invalid signature length")
)
