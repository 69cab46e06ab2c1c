package domain

import (
	"errors"

	types "keyring/internal/domain/types"
)

// ErrNotImplemented is returned by collaborators (store, transport) that have
// no working backend yet.
var ErrNotImplemented = errors.New("not implemented")

// ErrInvalidNodeID is returned by ParseNodeID.
var ErrInvalidNodeID = types.ErrInvalidNodeID
