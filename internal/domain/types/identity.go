package types

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// ErrInvalidNodeID is returned when a node id string does not decode to
// exactly NodeIDSize bytes.
var ErrInvalidNodeID = errors.New("invalid node id")

// NodeID is the stable identifier of a keyring identity: the digest of its
// verifying key.
type NodeID [NodeIDSize]byte

// Slice returns the id as a []byte.
func (id NodeID) Slice() []byte { return id[:] }

// String returns the base58 form of the id.
func (id NodeID) String() string { return base58.Encode(id[:]) }

// Hex returns the lowercase hex form of the id.
func (id NodeID) Hex() string { return hex.EncodeToString(id[:]) }

// ParseNodeID decodes the base58 form produced by NodeID.String.
func ParseNodeID(s string) (NodeID, error) {
	var id NodeID
	b, err := base58.Decode(s)
	if err != nil {
		return id, fmt.Errorf("%w: %v", ErrInvalidNodeID, err)
	}
	if len(b) != NodeIDSize {
		return id, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidNodeID, NodeIDSize, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// KeyPair is the result of generating an identity.
type KeyPair struct {
	Secret SigningKey   `json:"-"`
	Public VerifyingKey `json:"public"`
	NodeID NodeID       `json:"node_id"`
}
