package identity

import (
	"keyring/internal/crypto"
	"keyring/internal/domain"
)

// Service implements domain.IdentityService. It holds no state; the zero
// value is ready to use.
type Service struct{}

// New returns an identity service.
func New() *Service { return &Service{} }

// GenerateKeyPair creates a new identity from the system CSPRNG.
func (s *Service) GenerateKeyPair() domain.KeyPair {
	return crypto.GenerateKeyPair()
}

// Sign signs message with the 32-byte Ed25519 seed in secret.
func (s *Service) Sign(message, secret []byte) (domain.Signature, error) {
	key, err := crypto.ParseSigningKey(secret)
	if err != nil {
		return domain.Signature{}, err
	}
	return crypto.Sign(key, message), nil
}

// Verify reports whether signature is public's signature over message.
// Wrong lengths, a public key that is not a curve point, and a signature
// that does not match all give the same false.
func (s *Service) Verify(message, signature, public []byte) bool {
	if len(signature) != domain.SignatureSize || len(public) != domain.VerifyingKeySize {
		return false
	}
	pub, err := crypto.ParseVerifyingKey(public)
	if err != nil {
		return false
	}
	sig, err := crypto.ParseSignature(signature)
	if err != nil {
		return false
	}
	return crypto.Verify(pub, message, sig)
}

// Digest returns the BLAKE3-256 hash of data.
func (s *Service) Digest(data []byte) domain.Digest {
	return crypto.Digest(data)
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
