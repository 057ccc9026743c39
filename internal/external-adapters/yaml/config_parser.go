// Package yaml provides YAML-based generator configuration parsing.
package yaml

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decant-tools/decant/internal/domain/entities"
)

// yamlConfig represents the raw YAML structure of a .decant.yml file
type yamlConfig struct {
	ConfigRoot string `yaml:"config_root"`
	Workspace  string `yaml:"workspace"`
	SbtDir     string `yaml:"sbt_dir"`
	MavenDir   string `yaml:"maven_dir"`
	PomsDir    string `yaml:"poms_dir"`
	SigningKey string `yaml:"signing_key"`
}

// ConfigParser parses YAML generator configuration files
type ConfigParser struct{}

// NewConfigParser creates a new YAML parser
func NewConfigParser() *ConfigParser {
	return &ConfigParser{}
}

// ParseFile parses a YAML configuration file into a GeneratorConfig entity
func (p *ConfigParser) ParseFile(filePath string) (*entities.GeneratorConfig, error) {
	//nolint:gosec // G304: filePath is the config path the caller chose
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data)
}

// Parse parses raw YAML configuration data
func (p *ConfigParser) Parse(data []byte) (*entities.GeneratorConfig, error) {
	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &entities.GeneratorConfig{
		ConfigRoot: raw.ConfigRoot,
		Workspace:  raw.Workspace,
		SbtDir:     raw.SbtDir,
		MavenDir:   raw.MavenDir,
		PomsDir:    raw.PomsDir,
		SigningKey: raw.SigningKey,
	}, nil
}
