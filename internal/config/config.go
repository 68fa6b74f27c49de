package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zhe.chen/hyprompt/pkg/types"
)

// DefaultPath is where the CLI looks for its configuration file
const DefaultPath = "configs/hyprompt.yaml"

// Load reads and parses the YAML configuration file.
// A missing file yields the defaults; values present in the file override them.
func Load(path string) (*types.Config, error) {
	cfg := types.Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the config file
	expandedData := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
