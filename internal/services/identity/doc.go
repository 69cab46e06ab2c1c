// Package identity is the byte-level call surface over internal/crypto.
//
// Hosts hand in raw byte slices and get typed values back. Length checks
// happen here: Sign rejects a secret that is not 32 bytes with
// crypto.ErrInvalidKeyLength, and Verify folds every malformed input into a
// plain false.
package identity
