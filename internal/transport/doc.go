// Package transport provides the network transport collaborator for keyring.
//
// A transport opens and accepts connections addressed by host and port and
// moves byte payloads over them; payload authentication uses signatures from
// internal/crypto. No transport exists yet. Unimplemented reports
// domain.ErrNotImplemented from every operation, Close included: it never
// issued a handle, so it cannot honestly report closing one.
package transport
