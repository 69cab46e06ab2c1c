package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"keyring/internal/crypto"
	"keyring/internal/domain"
	"keyring/internal/store"
)

func TestUnimplemented_Open(t *testing.T) {
	t.Parallel()
	var backend domain.StoreBackend = store.NewUnimplemented()

	s, err := backend.Open(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	assert.Nil(t, s)
}

func TestUnimplemented_EveryOperation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	var s domain.Store = store.NewUnimplemented()

	data := []byte("blob")
	digest := crypto.Digest(data)
	owner := crypto.GenerateKeyPair().NodeID
	doc := domain.Document{ID: digest.Slice(), Keyring: owner}

	got, err := s.PutBlob(ctx, data)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	assert.True(t, got.IsZero())

	blob, err := s.GetBlob(ctx, digest)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	assert.Nil(t, blob)

	ok, err := s.HasBlob(ctx, digest)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	assert.False(t, ok)

	assert.ErrorIs(t, s.PutDocument(ctx, doc), domain.ErrNotImplemented)

	_, err = s.GetDocument(ctx, doc.ID)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	docs, err := s.ListDocuments(ctx, owner)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	assert.Empty(t, docs)

	assert.ErrorIs(t, s.DeleteDocument(ctx, doc.ID), domain.ErrNotImplemented)
	assert.ErrorIs(t, s.Close(), domain.ErrNotImplemented)
}
