package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decant-tools/decant/internal/domain/entities"
	yamladapter "github.com/decant-tools/decant/internal/external-adapters/yaml"
	zapadapter "github.com/decant-tools/decant/internal/external-adapters/zap"
)

// EnvWorkspace is the CI workspace-root variable consulted when no explicit
// workspace is configured
const EnvWorkspace = "GITHUB_WORKSPACE"

// EnvSigningKey optionally points at an armored secret key for the
// passphrase preflight
const EnvSigningKey = "DECANT_SIGNING_KEY"

// rootOptions holds the persistent flags shared by all commands
type rootOptions struct {
	configFile string
	configRoot string
	workspace  string
	logLevel   string
}

// newLogger builds the zap-backed logger for one command run
func (o *rootOptions) newLogger() (*zapadapter.Logger, error) {
	return zapadapter.NewLogger(o.logLevel)
}

// resolveConfig merges flags over the optional config file over environment
// defaults, and derives the concrete output directories
func (o *rootOptions) resolveConfig() (*entities.GeneratorConfig, error) {
	cfg, err := yamladapter.NewConfigRepository().Load(o.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if o.configRoot != "" {
		cfg.ConfigRoot = o.configRoot
	}
	if cfg.ConfigRoot == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		cfg.ConfigRoot = home
	}

	if o.workspace != "" {
		cfg.Workspace = o.workspace
	}
	if cfg.Workspace == "" {
		cfg.Workspace = os.Getenv(EnvWorkspace)
	}
	if cfg.Workspace == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		cfg.Workspace = wd
	}

	if cfg.SbtDir == "" {
		cfg.SbtDir = filepath.Join(cfg.ConfigRoot, ".sbt")
	}
	if cfg.MavenDir == "" {
		cfg.MavenDir = filepath.Join(cfg.ConfigRoot, ".m2")
	}

	switch {
	case cfg.PomsDir == "":
		cfg.PomsDir = filepath.Join(cfg.Workspace, "poms")
	case !filepath.IsAbs(cfg.PomsDir):
		cfg.PomsDir = filepath.Join(cfg.Workspace, cfg.PomsDir)
	}

	if cfg.SigningKey == "" {
		cfg.SigningKey = os.Getenv(EnvSigningKey)
	}

	return cfg, nil
}
