package crypto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyring/internal/crypto"
)

func TestAuthorizedKey_RoundTrip(t *testing.T) {
	t.Parallel()
	kp := crypto.GenerateKeyPair()

	line, err := crypto.AuthorizedKey(kp.Public, "node@"+kp.NodeID.String())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(line, "ssh-ed25519 "))
	assert.False(t, strings.HasSuffix(line, "\n"))

	pub, comment, err := crypto.ParseAuthorizedKey(line)
	require.NoError(t, err)
	assert.Equal(t, kp.Public, pub)
	assert.Equal(t, "node@"+kp.NodeID.String(), comment)
}

func TestAuthorizedKey_RFC8032Key(t *testing.T) {
	t.Parallel()
	pub, err := crypto.ParseVerifyingKeyHex("d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a")
	require.NoError(t, err)

	line, err := crypto.AuthorizedKey(pub, "")
	require.NoError(t, err)
	assert.Len(t, strings.Fields(line), 2)
}

func TestParseAuthorizedKey_Invalid(t *testing.T) {
	t.Parallel()

	_, _, err := crypto.ParseAuthorizedKey("not a key")
	assert.Error(t, err)
	_, _, err = crypto.ParseAuthorizedKey("")
	assert.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	t.Parallel()
	kp := crypto.GenerateKeyPair()

	fp := crypto.Fingerprint(kp.Public)
	assert.Len(t, fp, 20)
	assert.True(t, strings.HasPrefix(kp.NodeID.Hex(), fp))

	sshFP, err := crypto.SSHFingerprint(kp.Public)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sshFP, "SHA256:"))
}
