package gateways

import (
	"encoding/xml"
	"os"
	"strings"
	"testing"

	"github.com/decant-tools/decant/internal/domain/entities"
	"github.com/decant-tools/decant/internal/domain/services"
)

// TestMavenSettingsWrite tests serialization and overwrite semantics
func TestMavenSettingsWrite(t *testing.T) {
	mavenDir := t.TempDir()
	writer := NewMavenSettingsWriter()

	creds := entities.CredentialSet{Username: "ci-user", Password: "ci-pass", Passphrase: "ci-secret"}
	settings := services.BuildMavenSettings(entities.Invocation{}, creds)

	if err := writer.Write(mavenDir, settings); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(writer.SettingsPath(mavenDir))
	if err != nil {
		t.Fatalf("Failed to read settings file: %v", err)
	}
	doc := string(data)

	if !strings.HasPrefix(doc, xml.Header) {
		t.Error("settings file should start with the XML declaration")
	}
	for _, want := range []string{
		"<mirrors>",
		"<blocked>true</blocked>",
		"<username>ci-user</username>",
		"<password>ci-pass</password>",
		"<gpg.passphrase>ci-secret</gpg.passphrase>",
		"<activeProfile>" + entities.ProfileID + "</activeProfile>",
		entities.ReleaseRepoURL,
		entities.SnapshotRepoURL,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("settings file missing %q", want)
		}
	}

	// Overwrite: a credential-less NO_MIRROR run must fully replace the file
	inv := entities.Invocation{MirrorControl: entities.NoMirror}
	if err := writer.Write(mavenDir, services.BuildMavenSettings(inv, entities.CredentialSet{})); err != nil {
		t.Fatalf("Write() second run error = %v", err)
	}

	data, err = os.ReadFile(writer.SettingsPath(mavenDir))
	if err != nil {
		t.Fatalf("Failed to re-read settings file: %v", err)
	}
	doc = string(data)

	for _, absent := range []string{"<mirrors>", "<servers>", "<gpg.passphrase>", "ci-user"} {
		if strings.Contains(doc, absent) {
			t.Errorf("settings file still contains %q after overwrite", absent)
		}
	}
	if !strings.Contains(doc, "<profiles>") {
		t.Error("settings file should always contain the profiles block")
	}
}

// TestMavenSettingsRoundTrip tests that the emitted document parses back
func TestMavenSettingsRoundTrip(t *testing.T) {
	mavenDir := t.TempDir()
	writer := NewMavenSettingsWriter()

	settings := services.BuildMavenSettings(entities.Invocation{}, entities.CredentialSet{})
	if err := writer.Write(mavenDir, settings); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(writer.SettingsPath(mavenDir))
	if err != nil {
		t.Fatalf("Failed to read settings file: %v", err)
	}

	var parsed entities.MavenSettings
	if err := xml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("generated settings.xml does not parse: %v", err)
	}
	if parsed.Mirrors == nil || len(parsed.Mirrors.Mirrors) != 3 {
		t.Errorf("parsed mirrors = %+v, want 3 entries", parsed.Mirrors)
	}
	if len(parsed.Profiles.Profiles) != 1 {
		t.Errorf("parsed profile count = %d, want 1", len(parsed.Profiles.Profiles))
	}
}
