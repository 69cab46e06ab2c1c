package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"keyring/internal/domain"
	"keyring/internal/util/memzero"
)

// GenerateKeyPair returns a new Ed25519 identity together with its node id.
//
// A failing entropy source is not something a caller can recover from, so
// it panics instead of returning an error.
func GenerateKeyPair() domain.KeyPair {
	_, sk, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(fmt.Errorf("crypto: entropy source failed: %w", err))
	}
	defer memzero.Zero(sk)

	var secret domain.SigningKey
	copy(secret[:], sk.Seed())
	return KeyPairFromSecret(secret)
}

// KeyPairFromSecret re-derives the public key and node id for secret.
func KeyPairFromSecret(secret domain.SigningKey) domain.KeyPair {
	pub := PublicFromSecret(secret)
	return domain.KeyPair{
		Secret: secret,
		Public: pub,
		NodeID: NodeIDFromPublic(pub),
	}
}

// PublicFromSecret returns the verifying key paired with secret.
func PublicFromSecret(secret domain.SigningKey) domain.VerifyingKey {
	sk := ed25519.NewKeyFromSeed(secret[:])
	defer memzero.Zero(sk)

	var pub domain.VerifyingKey
	copy(pub[:], sk[ed25519.SeedSize:])
	return pub
}

// Sign signs msg with secret and returns the signature.
func Sign(secret domain.SigningKey, msg []byte) domain.Signature {
	sk := ed25519.NewKeyFromSeed(secret[:])
	defer memzero.Zero(sk)

	var sig domain.Signature
	copy(sig[:], ed25519.Sign(sk, msg))
	return sig
}

// Verify reports whether sig is a valid signature of msg by pub.
func Verify(pub domain.VerifyingKey, msg []byte, sig domain.Signature) bool {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), msg, sig[:])
}
