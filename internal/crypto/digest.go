package crypto

import (
	"hash"
	"io"

	"lukechampine.com/blake3"

	"keyring/internal/domain"
)

// Digest returns the BLAKE3-256 hash of data.
func Digest(data []byte) domain.Digest {
	return domain.Digest(blake3.Sum256(data))
}

// NewDigester returns a streaming BLAKE3-256 hash. Its Sum matches Digest
// over the same bytes.
func NewDigester() hash.Hash {
	return blake3.New(domain.DigestSize, nil)
}

// DigestReader hashes everything read from r.
func DigestReader(r io.Reader) (domain.Digest, error) {
	var out domain.Digest
	h := NewDigester()
	if _, err := io.Copy(h, r); err != nil {
		return out, err
	}
	copy(out[:], h.Sum(nil))
	return out, nil
}

// NodeIDFromPublic derives the node id of pub: the digest of its canonical
// 32-byte encoding.
func NodeIDFromPublic(pub domain.VerifyingKey) domain.NodeID {
	return domain.NodeID(Digest(pub[:]))
}
