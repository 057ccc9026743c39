package yaml

import (
	"os"

	"github.com/decant-tools/decant/internal/domain/entities"
)

// DefaultConfigFileName is looked up in the current directory when no explicit
// config path is given
const DefaultConfigFileName = ".decant.yml"

// ConfigRepository loads the optional generator configuration file
type ConfigRepository struct {
	parser *ConfigParser
}

// NewConfigRepository creates a new YAML-based config repository
func NewConfigRepository() *ConfigRepository {
	return &ConfigRepository{parser: NewConfigParser()}
}

// Load reads the configuration at path. An empty path falls back to
// .decant.yml in the current directory; a missing file is not an error and
// yields an empty configuration.
func (r *ConfigRepository) Load(path string) (*entities.GeneratorConfig, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFileName
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, err
		}
		return &entities.GeneratorConfig{}, nil
	}

	return r.parser.ParseFile(path)
}
