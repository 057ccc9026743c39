// Package gateways contains filesystem and process adapters for the generator.
package gateways

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"

	"github.com/decant-tools/decant/internal/domain/entities"
)

// sbt resolver file layout
const (
	SbtVersionDir    = "1.0"
	ResolverFileName = "resolvers.sbt"
	TestGlobalDir    = "global"
)

// SbtResolverWriter writes sbt resolver declaration files
type SbtResolverWriter struct{}

// NewSbtResolverWriter creates a new sbt resolver writer
func NewSbtResolverWriter() *SbtResolverWriter {
	return &SbtResolverWriter{}
}

// GlobalResolverPath returns the global resolver file location under sbtDir
func (w *SbtResolverWriter) GlobalResolverPath(sbtDir string) string {
	return filepath.Join(sbtDir, SbtVersionDir, ResolverFileName)
}

// AppendGlobal appends the resolver declarations to the global resolver file,
// creating parent directories as needed. Append semantics are intentional:
// repeated runs accumulate duplicate lines.
func (w *SbtResolverWriter) AppendGlobal(sbtDir string, entries []entities.ResolverEntry) error {
	path := w.GlobalResolverPath(sbtDir)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create sbt config directory: %w", err)
	}

	//nolint:gosec // G304: path is derived from the injected config root
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open global resolver file: %w", err)
	}

	if _, err := f.WriteString(renderResolvers(entries)); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to append resolvers: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close global resolver file: %w", err)
	}
	return nil
}

// WriteTestCase overwrites the resolver file of a single scripted-test case,
// creating the test case's global subdirectory first
func (w *SbtResolverWriter) WriteTestCase(testCaseDir string, entries []entities.ResolverEntry) error {
	globalDir := filepath.Join(testCaseDir, TestGlobalDir)
	if err := os.MkdirAll(globalDir, 0750); err != nil {
		return fmt.Errorf("failed to create test-case global directory: %w", err)
	}

	path := filepath.Join(globalDir, ResolverFileName)
	if err := renameio.WriteFile(path, []byte(renderResolvers(entries)), 0600); err != nil {
		return fmt.Errorf("failed to write test-case resolvers: %w", err)
	}
	return nil
}

func renderResolvers(entries []entities.ResolverEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.SbtLine())
	}
	return strings.Join(lines, "\n") + "\n"
}
