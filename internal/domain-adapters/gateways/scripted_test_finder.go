package gateways

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// BuildDescriptorName is the file that marks a scripted-test case root
const BuildDescriptorName = "build.sbt"

// ErrBaseDirMissing signals that the project has no scripted-test directory.
// Callers treat this as a non-fatal skip.
var ErrBaseDirMissing = errors.New("scripted-test base directory does not exist")

// ScriptedTestFinder locates scripted-test cases of an sbt plugin project
type ScriptedTestFinder struct{}

// NewScriptedTestFinder creates a new scripted-test finder
func NewScriptedTestFinder() *ScriptedTestFinder {
	return &ScriptedTestFinder{}
}

// BaseDir returns the conventional scripted-test root of a project
func (f *ScriptedTestFinder) BaseDir(workspace, projectName string) string {
	return filepath.Join(workspace, projectName, "src", "sbt-test")
}

// FindTestCases searches baseDir recursively for build descriptors and returns
// the directory of each one found. Every match is an independent test case;
// nested descriptors yield nested test-case roots without deduplication.
func (f *ScriptedTestFinder) FindTestCases(baseDir string) ([]string, error) {
	if _, err := os.Stat(baseDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrBaseDirMissing, baseDir)
	}

	var testCases []string
	err := filepath.Walk(baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if filepath.Base(path) == BuildDescriptorName {
			testCases = append(testCases, filepath.Dir(path))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan scripted tests: %w", err)
	}

	return testCases, nil
}
