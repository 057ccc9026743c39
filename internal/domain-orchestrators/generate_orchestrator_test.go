package orchestrators

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decant-tools/decant/internal/domain-adapters/gateways"
	"github.com/decant-tools/decant/internal/domain/entities"
	"github.com/decant-tools/decant/internal/domain/interfaces"
)

func newTestOrchestrator(t *testing.T, workspace string) (*GenerateOrchestrator, GenerateConfig) {
	t.Helper()
	root := t.TempDir()
	config := GenerateConfig{
		SbtDir:    filepath.Join(root, ".sbt"),
		MavenDir:  filepath.Join(root, ".m2"),
		Workspace: workspace,
	}
	orch := NewGenerateOrchestrator(
		gateways.NewSbtResolverWriter(),
		gateways.NewScriptedTestFinder(),
		gateways.NewMavenSettingsWriter(),
		nil,
		&interfaces.NoOpLogger{},
		config,
	)
	return orch, config
}

// TestGenerateFullWorkflow tests the fixed three-step sequence
func TestGenerateFullWorkflow(t *testing.T) {
	workspace := t.TempDir()
	testCase := filepath.Join(workspace, "my-plugin", "src", "sbt-test", "group", "simple")
	if err := os.MkdirAll(testCase, 0750); err != nil {
		t.Fatalf("Failed to create fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(testCase, gateways.BuildDescriptorName), []byte("name := \"t\"\n"), 0600); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	orch, config := newTestOrchestrator(t, workspace)
	inv := entities.Invocation{ProjectName: "my-plugin"}
	creds := entities.CredentialSet{Username: "u", Password: "p", Passphrase: "s"}

	result, err := orch.Generate(context.Background(), inv, creds)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(config.SbtDir, gateways.SbtVersionDir, gateways.ResolverFileName)); err != nil {
		t.Errorf("global resolver file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(testCase, gateways.TestGlobalDir, gateways.ResolverFileName)); err != nil {
		t.Errorf("test-case resolver file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(config.MavenDir, gateways.SettingsFileName)); err != nil {
		t.Errorf("maven settings file missing: %v", err)
	}

	if len(result.TestCases) != 1 {
		t.Errorf("TestCases = %v, want exactly the fixture case", result.TestCases)
	}
	if result.ScriptedTestsSkipped {
		t.Error("ScriptedTestsSkipped = true, want false")
	}
	if !result.CredentialsEmitted {
		t.Error("CredentialsEmitted = false, want true")
	}
}

// TestGenerateMissingScriptedTestDir tests the non-fatal skip
func TestGenerateMissingScriptedTestDir(t *testing.T) {
	orch, config := newTestOrchestrator(t, t.TempDir())
	inv := entities.Invocation{ProjectName: "absent-plugin"}

	result, err := orch.Generate(context.Background(), inv, entities.CredentialSet{})
	if err != nil {
		t.Fatalf("Generate() error = %v, want non-fatal skip", err)
	}
	if !result.ScriptedTestsSkipped {
		t.Error("ScriptedTestsSkipped = false, want true")
	}

	// The run must still reach the Maven step
	if _, err := os.Stat(filepath.Join(config.MavenDir, gateways.SettingsFileName)); err != nil {
		t.Errorf("maven settings file missing after skip: %v", err)
	}
}

// TestGenerateNoProjectName tests that the scripted-test step is bypassed
func TestGenerateNoProjectName(t *testing.T) {
	orch, config := newTestOrchestrator(t, t.TempDir())

	result, err := orch.Generate(context.Background(), entities.Invocation{MirrorControl: entities.NoMirror}, entities.CredentialSet{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if result.ScriptedTestsSkipped || len(result.TestCases) != 0 {
		t.Errorf("scripted-test step ran without a project name: %+v", result)
	}

	data, err := os.ReadFile(filepath.Join(config.MavenDir, gateways.SettingsFileName))
	if err != nil {
		t.Fatalf("Failed to read settings: %v", err)
	}
	if strings.Contains(string(data), "<mirrors>") {
		t.Error("NO_MIRROR settings contain a mirrors block")
	}
}

// TestGeneratePartialCredentials tests that partial sets are treated as absent
func TestGeneratePartialCredentials(t *testing.T) {
	orch, config := newTestOrchestrator(t, t.TempDir())
	creds := entities.CredentialSet{Username: "u", Password: "p"}

	result, err := orch.Generate(context.Background(), entities.Invocation{}, creds)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if result.CredentialsEmitted {
		t.Error("CredentialsEmitted = true for a partial credential set")
	}

	data, err := os.ReadFile(filepath.Join(config.MavenDir, gateways.SettingsFileName))
	if err != nil {
		t.Fatalf("Failed to read settings: %v", err)
	}
	if strings.Contains(string(data), "<servers>") {
		t.Error("settings contain a servers block for a partial credential set")
	}
}

// TestGenerateSummary tests the human-readable run summary
func TestGenerateSummary(t *testing.T) {
	result := &GenerateResult{
		Invocation:           entities.Invocation{ProjectName: "my-plugin", MirrorControl: entities.NoMirror},
		ScriptedTestsSkipped: true,
	}

	summary := result.Summary()
	for _, want := range []string{"skipped", "Mirrors: disabled", "Credentials: omitted"} {
		if !strings.Contains(summary, want) {
			t.Errorf("Summary() = %q, missing %q", summary, want)
		}
	}
}
