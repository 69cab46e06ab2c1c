package interfaces

import domaintypes "keyring/internal/domain/types"

// IdentityService is the byte-level call surface a host process uses to
// reach the identity engine. Fixed-width results come back as typed values;
// inputs stay raw so malformed lengths can be rejected explicitly.
type IdentityService interface {
	// GenerateKeyPair draws a fresh identity from the system CSPRNG.
	GenerateKeyPair() domaintypes.KeyPair
	// Sign fails only when secret is not exactly 32 bytes.
	Sign(message, secret []byte) (domaintypes.Signature, error)
	// Verify never fails; every malformed or mismatching input is false.
	Verify(message, signature, public []byte) bool
	Digest(data []byte) domaintypes.Digest
}
