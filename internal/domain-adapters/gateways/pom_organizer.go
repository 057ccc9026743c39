package gateways

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
)

// PomsDirName is the canonical directory organized poms are collected into
const PomsDirName = "poms"

// PomOrganizer relocates generated pom files into a per-artifact layout and
// strips their repository-list sections so downstream analysis tooling sees
// only dependency data
type PomOrganizer struct{}

// NewPomOrganizer creates a new pom organizer
func NewPomOrganizer() *PomOrganizer {
	return &PomOrganizer{}
}

// pomProject captures just enough of a pom to name its artifact. The parent
// artifactId is nested one level deeper and is deliberately not matched.
type pomProject struct {
	ArtifactID string `xml:"artifactId"`
}

// Organize walks the workspace for generated pom files under target directories
// and copies each into <pomsDir>/<artifactId>/pom.xml with the repository
// sections removed. Returns the organized artifact ids.
func (o *PomOrganizer) Organize(workspace, pomsDir string) ([]string, error) {
	var organized []string

	err := filepath.Walk(workspace, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			// Never rescan our own output
			if path == pomsDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !isGeneratedPom(path) {
			return nil
		}

		artifactID, err := o.organizePom(path, pomsDir)
		if err != nil {
			return err
		}
		organized = append(organized, artifactID)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to organize poms: %w", err)
	}

	return organized, nil
}

// isGeneratedPom matches build output (anything under a target directory that
// looks like a pom), never hand-written project poms
func isGeneratedPom(path string) bool {
	underTarget := false
	for _, part := range strings.Split(filepath.Dir(path), string(filepath.Separator)) {
		if part == "target" {
			underTarget = true
			break
		}
	}
	if !underTarget {
		return false
	}

	base := filepath.Base(path)
	return strings.HasSuffix(base, ".pom") || base == "pom.xml"
}

func (o *PomOrganizer) organizePom(path, pomsDir string) (string, error) {
	//nolint:gosec // G304: path was discovered by the workspace walk above
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read pom %s: %w", path, err)
	}

	var project pomProject
	if err := xml.Unmarshal(data, &project); err != nil {
		return "", fmt.Errorf("failed to parse pom %s: %w", path, err)
	}
	if project.ArtifactID == "" {
		return "", fmt.Errorf("pom %s has no artifactId", path)
	}

	destDir := filepath.Join(pomsDir, project.ArtifactID)
	if err := os.MkdirAll(destDir, 0750); err != nil {
		return "", fmt.Errorf("failed to create pom directory: %w", err)
	}

	trimmed := stripRepositorySections(string(data))
	dest := filepath.Join(destDir, "pom.xml")
	if err := renameio.WriteFile(dest, []byte(trimmed), 0600); err != nil {
		return "", fmt.Errorf("failed to write organized pom: %w", err)
	}

	return project.ArtifactID, nil
}

// stripRepositorySections removes the <repositories> and <pluginRepositories>
// blocks line by line. Generated poms put these elements on their own lines, so
// a line-level strip preserves the rest of the document byte for byte. Lines
// are read unbounded; generated poms can carry very long single lines.
func stripRepositorySections(pom string) string {
	var out strings.Builder
	skipping := ""

	reader := bufio.NewReader(strings.NewReader(pom))
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			trimmed := strings.TrimSpace(line)
			switch {
			case skipping != "":
				if trimmed == "</"+skipping+">" {
					skipping = ""
				}
			case trimmed == "<repositories>":
				skipping = "repositories"
			case trimmed == "<pluginRepositories>":
				skipping = "pluginRepositories"
			default:
				out.WriteString(line)
			}
		}
		if err != nil {
			break
		}
	}

	return out.String()
}
