package crypto

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/ssh"

	"keyring/internal/domain"
)

var errNotEd25519 = errors.New("authorized key is not ssh-ed25519")

// AuthorizedKey renders pub as a single OpenSSH authorized_keys line. A
// non-empty comment is appended after the key.
func AuthorizedKey(pub domain.VerifyingKey, comment string) (string, error) {
	sshPub, err := ssh.NewPublicKey(ed25519.PublicKey(pub[:]))
	if err != nil {
		return "", err
	}
	line := strings.TrimSuffix(string(ssh.MarshalAuthorizedKey(sshPub)), "\n")
	if comment != "" {
		line += " " + comment
	}
	return line, nil
}

// ParseAuthorizedKey is the inverse of AuthorizedKey. It returns the key and
// the trailing comment, if any.
func ParseAuthorizedKey(line string) (domain.VerifyingKey, string, error) {
	sshPub, comment, _, _, err := ssh.ParseAuthorizedKey([]byte(line))
	if err != nil {
		return domain.VerifyingKey{}, "", fmt.Errorf("parse authorized key: %w", err)
	}
	if sshPub.Type() != ssh.KeyAlgoED25519 {
		return domain.VerifyingKey{}, "", errNotEd25519
	}
	cpk, ok := sshPub.(ssh.CryptoPublicKey)
	if !ok {
		return domain.VerifyingKey{}, "", errNotEd25519
	}
	edPub, ok := cpk.CryptoPublicKey().(ed25519.PublicKey)
	if !ok {
		return domain.VerifyingKey{}, "", errNotEd25519
	}
	pub, err := ParseVerifyingKey(edPub)
	if err != nil {
		return domain.VerifyingKey{}, "", err
	}
	return pub, comment, nil
}

// SSHFingerprint returns the OpenSSH SHA256 fingerprint of pub, as printed
// by ssh-keygen -l.
func SSHFingerprint(pub domain.VerifyingKey) (string, error) {
	sshPub, err := ssh.NewPublicKey(ed25519.PublicKey(pub[:]))
	if err != nil {
		return "", err
	}
	return ssh.FingerprintSHA256(sshPub), nil
}
