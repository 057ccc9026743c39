// Package gpg provides OpenPGP signing-key handling using ProtonMail's go-crypto
// A maintained, modern fork of golang.org/x/crypto/openpgp
// This is in external-adapters to isolate the external dependency
package gpg

import (
	"fmt"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
)

// PassphraseChecker verifies that a publishing passphrase unlocks a local
// armored OpenPGP secret key
type PassphraseChecker struct{}

// NewPassphraseChecker creates a new passphrase checker
func NewPassphraseChecker() *PassphraseChecker {
	return &PassphraseChecker{}
}

// Check reads the armored keyring at keyPath and attempts to decrypt the first
// private key with the passphrase. An unencrypted private key passes without a
// decryption attempt.
func (c *PassphraseChecker) Check(keyPath, passphrase string) error {
	//nolint:gosec // G304: keyPath comes from the generator configuration
	f, err := os.Open(keyPath)
	if err != nil {
		return fmt.Errorf("failed to open signing key: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	keyring, err := openpgp.ReadArmoredKeyRing(f)
	if err != nil {
		return fmt.Errorf("failed to read signing key %s: %w", keyPath, err)
	}

	for _, entity := range keyring {
		if entity.PrivateKey == nil {
			continue
		}
		if !entity.PrivateKey.Encrypted {
			return nil
		}
		if err := entity.PrivateKey.Decrypt([]byte(passphrase)); err != nil {
			return fmt.Errorf("passphrase does not unlock key %X: %w", entity.PrimaryKey.Fingerprint, err)
		}
		return nil
	}

	return fmt.Errorf("no private key found in %s", keyPath)
}
