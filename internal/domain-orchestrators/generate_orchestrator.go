// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/decant-tools/decant/internal/domain-adapters/gateways"
	"github.com/decant-tools/decant/internal/domain/entities"
	"github.com/decant-tools/decant/internal/domain/interfaces"
	"github.com/decant-tools/decant/internal/domain/services"
)

// ResolverWriter interface for writing sbt resolver files
type ResolverWriter interface {
	AppendGlobal(sbtDir string, entries []entities.ResolverEntry) error
	WriteTestCase(testCaseDir string, entries []entities.ResolverEntry) error
}

// TestFinder interface for locating scripted-test cases
type TestFinder interface {
	BaseDir(workspace, projectName string) string
	FindTestCases(baseDir string) ([]string, error)
}

// SettingsWriter interface for writing the Maven settings file
type SettingsWriter interface {
	Write(mavenDir string, settings entities.MavenSettings) error
}

// PassphraseChecker interface for the optional signing-key preflight
type PassphraseChecker interface {
	Check(keyPath, passphrase string) error
}

// GenerateConfig holds the filesystem roots the generator writes under
type GenerateConfig struct {
	SbtDir         string
	MavenDir       string
	Workspace      string
	SigningKeyPath string
}

// GenerateOrchestrator sequences the three configuration steps: global sbt
// resolvers, per-scripted-test resolvers, Maven settings. The order is fixed
// and every step is attempted exactly once; the first failing step aborts the
// whole run.
type GenerateOrchestrator struct {
	resolvers  ResolverWriter
	finder     TestFinder
	settings   SettingsWriter
	passphrase PassphraseChecker
	logger     interfaces.Logger
	config     GenerateConfig
}

// NewGenerateOrchestrator creates a new generate orchestrator. passphrase may
// be nil when no signing-key preflight is configured.
func NewGenerateOrchestrator(
	resolvers ResolverWriter,
	finder TestFinder,
	settings SettingsWriter,
	passphrase PassphraseChecker,
	logger interfaces.Logger,
	config GenerateConfig,
) *GenerateOrchestrator {
	return &GenerateOrchestrator{
		resolvers:  resolvers,
		finder:     finder,
		settings:   settings,
		passphrase: passphrase,
		logger:     logger,
		config:     config,
	}
}

// GenerateResult contains the outcome of one generate run
type GenerateResult struct {
	Invocation           entities.Invocation
	TestCases            []string
	ScriptedTestsSkipped bool
	CredentialsEmitted   bool
	Duration             time.Duration
}

// Generate executes the complete configuration workflow
func (o *GenerateOrchestrator) Generate(ctx context.Context, inv entities.Invocation, creds entities.CredentialSet) (*GenerateResult, error) {
	start := time.Now()
	result := &GenerateResult{Invocation: inv}
	entries := entities.DefaultResolvers()

	// Step 1: global sbt resolvers (append, non-idempotent)
	if err := o.resolvers.AppendGlobal(o.config.SbtDir, entries); err != nil {
		return result, fmt.Errorf("global resolver step failed: %w", err)
	}
	o.logger.Info("appended global sbt resolvers", interfaces.F("sbtDir", o.config.SbtDir))

	// Step 2: scripted-test resolvers (only with a project name)
	if inv.ProjectName != "" {
		if err := o.writeScriptedTestResolvers(inv.ProjectName, entries, result); err != nil {
			return result, err
		}
	}

	// Step 3: Maven settings (always, overwrite in full)
	if creds.Complete() {
		result.CredentialsEmitted = true
		o.checkSigningKey(ctx, creds)
	} else if creds != (entities.CredentialSet{}) {
		o.logger.Warn("partial credential set in environment, omitting credentials")
	}

	settings := services.BuildMavenSettings(inv, creds)
	if err := o.settings.Write(o.config.MavenDir, settings); err != nil {
		return result, fmt.Errorf("maven settings step failed: %w", err)
	}
	o.logger.Info("wrote maven settings",
		interfaces.F("mavenDir", o.config.MavenDir),
		interfaces.F("mirrors", inv.UseMirrors()),
		interfaces.F("credentials", result.CredentialsEmitted),
	)

	result.Duration = time.Since(start)
	return result, nil
}

func (o *GenerateOrchestrator) writeScriptedTestResolvers(projectName string, entries []entities.ResolverEntry, result *GenerateResult) error {
	baseDir := o.finder.BaseDir(o.config.Workspace, projectName)

	testCases, err := o.finder.FindTestCases(baseDir)
	if err != nil {
		if errors.Is(err, gateways.ErrBaseDirMissing) {
			// Non-fatal: projects without scripted tests are legitimate
			o.logger.Warn("no scripted-test directory, skipping", interfaces.F("baseDir", baseDir))
			result.ScriptedTestsSkipped = true
			return nil
		}
		return fmt.Errorf("scripted-test step failed: %w", err)
	}

	for _, testCase := range testCases {
		if err := o.resolvers.WriteTestCase(testCase, entries); err != nil {
			return fmt.Errorf("scripted-test step failed for %s: %w", testCase, err)
		}
	}

	result.TestCases = testCases
	o.logger.Info("wrote scripted-test resolvers", interfaces.F("testCases", len(testCases)))
	return nil
}

// checkSigningKey verifies the passphrase against the configured signing key.
// A mismatch is logged and ignored: the generator's contract is to emit the
// credentials it was given, not to validate them.
func (o *GenerateOrchestrator) checkSigningKey(_ context.Context, creds entities.CredentialSet) {
	if o.passphrase == nil || o.config.SigningKeyPath == "" {
		return
	}
	if err := o.passphrase.Check(o.config.SigningKeyPath, creds.Passphrase); err != nil {
		o.logger.Warn("signing-key passphrase preflight failed", interfaces.F("error", err.Error()))
	}
}

// Summary returns a human-readable summary of the run
func (r *GenerateResult) Summary() string {
	summary := fmt.Sprintf("Configuration generated in %v", r.Duration.Round(time.Millisecond))
	if r.Invocation.ProjectName != "" {
		if r.ScriptedTestsSkipped {
			summary += fmt.Sprintf("\nScripted tests: skipped (%s has no sbt-test directory)", r.Invocation.ProjectName)
		} else {
			summary += fmt.Sprintf("\nScripted tests: %d test case(s) configured", len(r.TestCases))
		}
	}
	if !r.Invocation.UseMirrors() {
		summary += "\nMirrors: disabled"
	}
	if r.CredentialsEmitted {
		summary += "\nCredentials: emitted"
	} else {
		summary += "\nCredentials: omitted"
	}
	return summary
}
