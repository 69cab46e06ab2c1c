package domain

import (
	interfaces "keyring/internal/domain/interfaces"
	types "keyring/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	SigningKey     = types.SigningKey
	VerifyingKey   = types.VerifyingKey
	NodeID         = types.NodeID
	Signature      = types.Signature
	Digest         = types.Digest
	KeyPair        = types.KeyPair
	DocumentID     = types.DocumentID
	Document       = types.Document
	ConnHandle     = types.ConnHandle
	ListenerHandle = types.ListenerHandle
	ListenOptions  = types.ListenOptions
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	IdentityService = interfaces.IdentityService
	BlobStore       = interfaces.BlobStore
	DocumentStore   = interfaces.DocumentStore
	Store           = interfaces.Store
	StoreBackend    = interfaces.StoreBackend
	Transport       = interfaces.Transport
)

// Size constants re-exported from the types subpackage.
const (
	SigningKeySize   = types.SigningKeySize
	VerifyingKeySize = types.VerifyingKeySize
	NodeIDSize       = types.NodeIDSize
	SignatureSize    = types.SignatureSize
	DigestSize       = types.DigestSize
)

// ParseNodeID decodes the base58 text form of a node id.
func ParseNodeID(s string) (NodeID, error) { return types.ParseNodeID(s) }
