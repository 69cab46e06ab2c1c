package types

import "encoding/hex"

// Sizes of the fixed-width identity values, in bytes.
const (
	SigningKeySize   = 32
	VerifyingKeySize = 32
	NodeIDSize       = 32
	SignatureSize    = 64
	DigestSize       = 32
)

// SigningKey is an Ed25519 private key seed.
//
// It formats as a redacted placeholder so it cannot end up in logs through
// fmt or a structured logger's reflection encoder. Use Slice or Hex when the
// raw bytes are really wanted.
type SigningKey [SigningKeySize]byte

// Slice returns the key as a []byte.
func (k SigningKey) Slice() []byte { return k[:] }

// Hex returns the lowercase hex encoding of the seed.
func (k SigningKey) Hex() string { return hex.EncodeToString(k[:]) }

// String implements fmt.Stringer without revealing the key.
func (k SigningKey) String() string { return "SigningKey(REDACTED)" }

// GoString implements fmt.GoStringer without revealing the key.
func (k SigningKey) GoString() string { return k.String() }

// MarshalText keeps the seed out of encoding/json and friends.
func (k SigningKey) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// VerifyingKey is an Ed25519 public key.
type VerifyingKey [VerifyingKeySize]byte

// Slice returns the key as a []byte.
func (p VerifyingKey) Slice() []byte { return p[:] }

// String returns the lowercase hex encoding of the key.
func (p VerifyingKey) String() string { return hex.EncodeToString(p[:]) }

// Signature is an Ed25519 signature.
type Signature [SignatureSize]byte

// Slice returns the signature as a []byte.
func (s Signature) Slice() []byte { return s[:] }

// String returns the lowercase hex encoding of the signature.
func (s Signature) String() string { return hex.EncodeToString(s[:]) }

// Digest is a BLAKE3-256 hash.
type Digest [DigestSize]byte

// Slice returns the digest as a []byte.
func (d Digest) Slice() []byte { return d[:] }

// String returns the lowercase hex encoding of the digest.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// IsZero reports whether d is the zero value.
func (d Digest) IsZero() bool { return d == Digest{} }
