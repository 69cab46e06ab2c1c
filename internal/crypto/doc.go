// Package crypto is the keyring identity engine.
//
// Contents
//
//   - Ed25519 key generation, signing and verification (GenerateKeyPair,
//     Sign, Verify)
//   - BLAKE3-256 hashing and node id derivation (Digest, NewDigester,
//     DigestReader, NodeIDFromPublic)
//   - Parsing raw and hex encoded key material with length and point checks
//     (ParseSigningKey, ParseVerifyingKey, ParseSignature and the Hex forms)
//   - Display and export encodings (Fingerprint, AuthorizedKey)
//
// # Notes
//
// Every function is a pure function of its arguments, except GenerateKeyPair
// which also reads crypto/rand. Nothing here logs or keeps state, so all of
// it is safe for concurrent use. Typed values come from internal/domain;
// Verify reports failure only as false and never says why.
package crypto
