// Package domain defines the value types and contracts shared across keyring.
// It contains plain types (keys, signatures, digests, handles) and interfaces
// only; implementations live in internal/crypto, internal/services, and the
// collaborator packages.
package domain
