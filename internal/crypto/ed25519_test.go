package crypto_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"keyring/internal/crypto"
	"keyring/internal/domain"
)

// RFC 8032 section 7.1, TEST 1 and TEST 2.
var rfc8032Vectors = []struct {
	name   string
	secret string
	public string
	msg    string
	sig    string
}{
	{
		name:   "test 1",
		secret: "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60",
		public: "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a",
		msg:    "",
		sig: "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e06522490155" +
			"5fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b",
	},
	{
		name:   "test 2",
		secret: "4ccd089b28ff96da9db6c346ec114e0f5b8a319f35aba624da8cf6ed4fb8a6fb",
		public: "3d4017c3e843895a92b70aa74d1b7ebc9c982ccf2ec4968cc0cd55f12af4660c",
		msg:    "72",
		sig: "92a009a9f0d4cab8720e820b5f642540a2b27b5416503f8fb3762223ebdb69da" +
			"085ac1e43e15996e458f3613d0f11d8c387b2eaeb4302aeeb00d291612bb0c00",
	},
}

func TestSign_RFC8032Vectors(t *testing.T) {
	t.Parallel()

	for _, tc := range rfc8032Vectors {
		t.Run(tc.name, func(t *testing.T) {
			secret, err := crypto.ParseSigningKeyHex(tc.secret)
			require.NoError(t, err)
			msg, err := hex.DecodeString(tc.msg)
			require.NoError(t, err)

			pub := crypto.PublicFromSecret(secret)
			assert.Equal(t, tc.public, pub.String())

			sig := crypto.Sign(secret, msg)
			assert.Equal(t, tc.sig, sig.String())
			assert.True(t, crypto.Verify(pub, msg, sig))
		})
	}
}

func TestSignVerify_RoundTrip(t *testing.T) {
	t.Parallel()
	kp := crypto.GenerateKeyPair()

	messages := [][]byte{
		nil,
		{},
		[]byte("hello keyring"),
		bytes.Repeat([]byte{0xab}, 1<<20),
	}
	for _, msg := range messages {
		sig := crypto.Sign(kp.Secret, msg)
		assert.True(t, crypto.Verify(kp.Public, msg, sig), "len=%d", len(msg))
	}
}

func TestSign_Deterministic(t *testing.T) {
	t.Parallel()
	kp := crypto.GenerateKeyPair()
	msg := []byte("same input, same signature")

	assert.Equal(t, crypto.Sign(kp.Secret, msg), crypto.Sign(kp.Secret, msg))
}

func TestSign_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()
	kp := crypto.GenerateKeyPair()
	secret := kp.Secret
	msg := []byte("leave me alone")
	orig := append([]byte(nil), msg...)

	_ = crypto.Sign(secret, msg)

	assert.Equal(t, orig, msg)
	assert.Equal(t, kp.Secret, secret)
}

func TestVerify_TamperedMessage(t *testing.T) {
	t.Parallel()
	kp := crypto.GenerateKeyPair()
	sig := crypto.Sign(kp.Secret, []byte("message 1"))

	assert.False(t, crypto.Verify(kp.Public, []byte("message 2"), sig))
	assert.False(t, crypto.Verify(kp.Public, []byte("message 1 "), sig))
	assert.False(t, crypto.Verify(kp.Public, nil, sig))
}

func TestVerify_TamperedSignature(t *testing.T) {
	t.Parallel()
	kp := crypto.GenerateKeyPair()
	msg := []byte("payload")
	sig := crypto.Sign(kp.Secret, msg)

	for _, i := range []int{0, 31, 32, 63} {
		bad := sig
		bad[i] ^= 0x01
		assert.False(t, crypto.Verify(kp.Public, msg, bad), "flipped byte %d", i)
	}
	assert.False(t, crypto.Verify(kp.Public, msg, domain.Signature{}))
}

func TestVerify_WrongKey(t *testing.T) {
	t.Parallel()
	kp1 := crypto.GenerateKeyPair()
	kp2 := crypto.GenerateKeyPair()
	msg := []byte("signed by one")

	sig := crypto.Sign(kp1.Secret, msg)
	assert.False(t, crypto.Verify(kp2.Public, msg, sig))
}

func TestVerify_PublicKeyNotOnCurve(t *testing.T) {
	t.Parallel()
	kp := crypto.GenerateKeyPair()
	msg := []byte("payload")
	sig := crypto.Sign(kp.Secret, msg)

	// y = 2 has no matching x on the curve.
	var offCurve domain.VerifyingKey
	offCurve[0] = 2

	assert.NotPanics(t, func() {
		assert.False(t, crypto.Verify(offCurve, msg, sig))
	})
}

func TestGenerateKeyPair_Derivation(t *testing.T) {
	t.Parallel()
	kp := crypto.GenerateKeyPair()

	assert.Equal(t, crypto.PublicFromSecret(kp.Secret), kp.Public)
	assert.Equal(t, domain.NodeID(crypto.Digest(kp.Public[:])), kp.NodeID)
	assert.Equal(t, kp, crypto.KeyPairFromSecret(kp.Secret))
}

func TestGenerateKeyPair_Unique(t *testing.T) {
	t.Parallel()
	const n = 10000

	secrets := make(map[domain.SigningKey]struct{}, n)
	ids := make(map[domain.NodeID]struct{}, n)
	for i := 0; i < n; i++ {
		kp := crypto.GenerateKeyPair()
		secrets[kp.Secret] = struct{}{}
		ids[kp.NodeID] = struct{}{}
	}
	assert.Len(t, secrets, n)
	assert.Len(t, ids, n)
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		msg := []byte{byte(i), 'k', 'r'}
		g.Go(func() error {
			for j := 0; j < 50; j++ {
				kp := crypto.GenerateKeyPair()
				sig := crypto.Sign(kp.Secret, msg)
				if !crypto.Verify(kp.Public, msg, sig) {
					t.Errorf("round trip failed for node %s", kp.NodeID)
				}
				if crypto.Digest(msg) != crypto.Digest(msg) {
					t.Errorf("digest changed between calls")
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func BenchmarkSign(b *testing.B) {
	kp := crypto.GenerateKeyPair()
	msg := make([]byte, 256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		crypto.Sign(kp.Secret, msg)
	}
}

func BenchmarkVerify(b *testing.B) {
	kp := crypto.GenerateKeyPair()
	msg := make([]byte, 256)
	sig := crypto.Sign(kp.Secret, msg)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		crypto.Verify(kp.Public, msg, sig)
	}
}
