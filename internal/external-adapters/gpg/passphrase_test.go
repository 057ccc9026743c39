package gpg

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
)

func writeArmoredKey(t *testing.T, passphrase string) string {
	t.Helper()

	entity, err := openpgp.NewEntity("decant test", "", "ci@decant.build", nil)
	if err != nil {
		t.Fatalf("Failed to create test key: %v", err)
	}
	if passphrase != "" {
		if err := entity.PrivateKey.Encrypt([]byte(passphrase)); err != nil {
			t.Fatalf("Failed to encrypt test key: %v", err)
		}
	}

	var buf bytes.Buffer
	w, err := armor.Encode(&buf, openpgp.PrivateKeyType, nil)
	if err != nil {
		t.Fatalf("Failed to create armor encoder: %v", err)
	}
	if err := entity.SerializePrivateWithoutSigning(w, nil); err != nil {
		t.Fatalf("Failed to serialize test key: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close armor encoder: %v", err)
	}

	path := filepath.Join(t.TempDir(), "release.asc")
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		t.Fatalf("Failed to write test key: %v", err)
	}
	return path
}

// TestCheck tests passphrase verification against a local armored key
func TestCheck(t *testing.T) {
	checker := NewPassphraseChecker()

	t.Run("matching passphrase", func(t *testing.T) {
		path := writeArmoredKey(t, "correct horse")
		if err := checker.Check(path, "correct horse"); err != nil {
			t.Errorf("Check() with matching passphrase error = %v", err)
		}
	})

	t.Run("wrong passphrase", func(t *testing.T) {
		path := writeArmoredKey(t, "correct horse")
		if err := checker.Check(path, "battery staple"); err == nil {
			t.Error("Check() with wrong passphrase should return error")
		}
	})

	t.Run("unencrypted key passes", func(t *testing.T) {
		path := writeArmoredKey(t, "")
		if err := checker.Check(path, "anything"); err != nil {
			t.Errorf("Check() with unencrypted key error = %v", err)
		}
	})

	t.Run("missing key file", func(t *testing.T) {
		if err := checker.Check(filepath.Join(t.TempDir(), "nope.asc"), "x"); err == nil {
			t.Error("Check() with missing file should return error")
		}
	})

	t.Run("garbage key material", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "junk.asc")
		if err := os.WriteFile(path, []byte("not a key"), 0600); err != nil {
			t.Fatalf("Failed to write junk file: %v", err)
		}
		if err := checker.Check(path, "x"); err == nil {
			t.Error("Check() with garbage key material should return error")
		}
	})
}
