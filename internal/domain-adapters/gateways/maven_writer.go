package gateways

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/decant-tools/decant/internal/domain/entities"
)

// SettingsFileName is the Maven settings file written under the .m2 directory
const SettingsFileName = "settings.xml"

// MavenSettingsWriter serializes the settings document to disk
type MavenSettingsWriter struct{}

// NewMavenSettingsWriter creates a new Maven settings writer
func NewMavenSettingsWriter() *MavenSettingsWriter {
	return &MavenSettingsWriter{}
}

// SettingsPath returns the settings file location under mavenDir
func (w *MavenSettingsWriter) SettingsPath(mavenDir string) string {
	return filepath.Join(mavenDir, SettingsFileName)
}

// Write replaces the settings file in full. The replacement is atomic so a
// concurrent Maven invocation never observes a half-written document.
func (w *MavenSettingsWriter) Write(mavenDir string, settings entities.MavenSettings) error {
	if err := os.MkdirAll(mavenDir, 0750); err != nil {
		return fmt.Errorf("failed to create maven config directory: %w", err)
	}

	body, err := xml.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	data := append([]byte(xml.Header), body...)
	data = append(data, '\n')

	if err := renameio.WriteFile(w.SettingsPath(mavenDir), data, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
