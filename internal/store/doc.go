// Package store provides the persistent store collaborator for keyring.
//
// Stores hold opaque blobs addressed by their BLAKE3 digest and structured
// documents grouped by the owning node id. No storage backend exists yet:
// Unimplemented satisfies the domain contracts and reports
// domain.ErrNotImplemented from every operation, so callers can be wired
// and tested against the contract today.
package store
