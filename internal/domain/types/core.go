package types

import (
	"encoding/hex"
	"time"
)

// DocumentID identifies a structured document held by a store.
type DocumentID []byte

// String returns the lowercase hex form of the identifier.
func (id DocumentID) String() string { return hex.EncodeToString(id) }

// Document is a structured record owned by a keyring identity.
type Document struct {
	ID      DocumentID        `json:"id"`
	Keyring NodeID            `json:"keyring"`
	Fields  map[string][]byte `json:"fields,omitempty"`
}

// ConnHandle refers to a transport connection. The zero value is never
// issued by a transport.
type ConnHandle uint64

// ListenerHandle refers to a transport listener. The zero value is never
// issued by a transport.
type ListenerHandle uint64

// ListenOptions configures a transport listener.
type ListenOptions struct {
	// ALPN protocols offered to peers.
	Protocols []string
	// IdleTimeout closes connections with no traffic; zero means the
	// transport default.
	IdleTimeout time.Duration
}
