package store

import (
	"context"
	"fmt"

	"keyring/internal/domain"
)

// Unimplemented is a StoreBackend and Store with no backend behind it.
type Unimplemented struct{}

// NewUnimplemented returns the placeholder backend.
func NewUnimplemented() *Unimplemented { return &Unimplemented{} }

func notImplemented(op string) error {
	return fmt.Errorf("store %s: %w", op, domain.ErrNotImplemented)
}

// Open never yields a store.
func (Unimplemented) Open(_ context.Context, path string) (domain.Store, error) {
	return nil, fmt.Errorf("store open %q: %w", path, domain.ErrNotImplemented)
}

// PutBlob reports domain.ErrNotImplemented.
func (Unimplemented) PutBlob(context.Context, []byte) (domain.Digest, error) {
	return domain.Digest{}, notImplemented("put blob")
}

// GetBlob reports domain.ErrNotImplemented.
func (Unimplemented) GetBlob(context.Context, domain.Digest) ([]byte, error) {
	return nil, notImplemented("get blob")
}

// HasBlob reports domain.ErrNotImplemented; the boolean is meaningless.
func (Unimplemented) HasBlob(context.Context, domain.Digest) (bool, error) {
	return false, notImplemented("has blob")
}

// PutDocument reports domain.ErrNotImplemented.
func (Unimplemented) PutDocument(context.Context, domain.Document) error {
	return notImplemented("put document")
}

// GetDocument reports domain.ErrNotImplemented.
func (Unimplemented) GetDocument(context.Context, domain.DocumentID) (domain.Document, error) {
	return domain.Document{}, notImplemented("get document")
}

// ListDocuments reports domain.ErrNotImplemented.
func (Unimplemented) ListDocuments(context.Context, domain.NodeID) ([]domain.Document, error) {
	return nil, notImplemented("list documents")
}

// DeleteDocument reports domain.ErrNotImplemented.
func (Unimplemented) DeleteDocument(context.Context, domain.DocumentID) error {
	return notImplemented("delete document")
}

// Close reports domain.ErrNotImplemented: there is never an open store to
// release.
func (Unimplemented) Close() error {
	return notImplemented("close")
}

// Compile-time assertions that Unimplemented satisfies the store contracts.
var (
	_ domain.StoreBackend = (*Unimplemented)(nil)
	_ domain.Store        = (*Unimplemented)(nil)
)
