package interfaces

import (
	"context"

	domaintypes "keyring/internal/domain/types"
)

// BlobStore holds opaque byte blobs addressed by their digest.
type BlobStore interface {
	PutBlob(ctx context.Context, data []byte) (domaintypes.Digest, error)
	GetBlob(ctx context.Context, digest domaintypes.Digest) ([]byte, error)
	HasBlob(ctx context.Context, digest domaintypes.Digest) (bool, error)
}

// DocumentStore holds structured documents keyed by id and grouped by the
// owning keyring identity.
type DocumentStore interface {
	PutDocument(ctx context.Context, doc domaintypes.Document) error
	GetDocument(ctx context.Context, id domaintypes.DocumentID) (domaintypes.Document, error)
	ListDocuments(ctx context.Context, keyring domaintypes.NodeID) ([]domaintypes.Document, error)
	DeleteDocument(ctx context.Context, id domaintypes.DocumentID) error
}

// Store is an open handle on a persistent store.
type Store interface {
	BlobStore
	DocumentStore
	Close() error
}

// StoreBackend opens stores by path.
type StoreBackend interface {
	Open(ctx context.Context, path string) (Store, error)
}
